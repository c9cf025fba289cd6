package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport carries the session id in a request/response header,
// for API clients that do not keep cookies.
type HeaderTransport struct {
	headerName string
	prefix     string
	now        func() time.Time
}

// HeaderOption is a functional option for HeaderTransport
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets the prefix in front of the id, "Bearer " by default.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) {
		t.prefix = prefix
	}
}

// NewHeaderTransport creates a header transport using headerName.
func NewHeaderTransport(headerName string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		headerName: headerName,
		prefix:     "Bearer ",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetID extracts the session id from the header
func (t *HeaderTransport) GetID(r *http.Request) (string, error) {
	value := strings.TrimPrefix(r.Header.Get(t.headerName), t.prefix)
	if value == "" {
		return "", ErrNoSessionID
	}
	return value, nil
}

// SetID sets the id header and, with a ttl, an "-Expires" companion header.
func (t *HeaderTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) error {
	w.Header().Set(t.headerName, t.prefix+id)
	if ttl > 0 {
		w.Header().Set(t.headerName+"-Expires", t.now().Add(ttl).UTC().Format(time.RFC3339))
	}
	return nil
}

// ClearID removes the session headers from the response
func (t *HeaderTransport) ClearID(w http.ResponseWriter) error {
	w.Header().Del(t.headerName)
	w.Header().Del(t.headerName + "-Expires")
	return nil
}
