package mongo

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Locator addresses a session collection as "host:port/database/collection".
type Locator struct {
	Host       string
	Port       int
	Database   string
	Collection string
}

// ParseLocator parses a server locator. The string must have exactly three
// "/"-separated segments and the first one exactly two ":"-separated parts.
func ParseLocator(s string) (Locator, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Locator{}, fmt.Errorf("%w: %q, want host:port/database_name/collection_name", ErrInvalidServer, s)
	}

	hostPort := strings.Split(parts[0], ":")
	if len(hostPort) != 2 {
		return Locator{}, fmt.Errorf("%w: %q, want host:port", ErrInvalidHostPort, parts[0])
	}

	port, err := strconv.Atoi(hostPort[1])
	if err != nil || port < 1 || port > 65535 {
		return Locator{}, fmt.Errorf("%w: bad port %q", ErrInvalidHostPort, hostPort[1])
	}

	loc := Locator{
		Host:       hostPort[0],
		Port:       port,
		Database:   parts[1],
		Collection: parts[2],
	}
	if loc.Host == "" || loc.Database == "" || loc.Collection == "" {
		return Locator{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidServer, s)
	}
	return loc, nil
}

// Address returns "host:port".
func (l Locator) Address() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// URI returns the connection string of the server.
func (l Locator) URI() string {
	return "mongodb://" + l.Address()
}

func (l Locator) String() string {
	return l.Address() + "/" + l.Database + "/" + l.Collection
}
