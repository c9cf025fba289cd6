package session

import (
	"net/http"
	"time"
)

// Transport carries the session id between client and server.
type Transport interface {
	// GetID extracts the session id from the request. It returns
	// ErrNoSessionID when the request carries none or it cannot be trusted.
	GetID(r *http.Request) (string, error)

	// SetID sends the session id in the response. A zero ttl means the id
	// lives as long as the client keeps it.
	SetID(w http.ResponseWriter, id string, ttl time.Duration) error

	// ClearID tells the client to forget the session id.
	ClearID(w http.ResponseWriter) error
}
