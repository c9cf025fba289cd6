package session

import (
	"errors"
	"net/http"
	"time"
)

// CompositeTransport reads the id from the first transport that has one and
// writes it through all of them.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a transport over transports, tried in order.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

func (t *CompositeTransport) GetID(r *http.Request) (string, error) {
	for _, tr := range t.transports {
		if id, err := tr.GetID(r); err == nil && id != "" {
			return id, nil
		}
	}
	return "", ErrNoSessionID
}

func (t *CompositeTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) error {
	var errs []error
	for _, tr := range t.transports {
		errs = append(errs, tr.SetID(w, id, ttl))
	}
	return errors.Join(errs...)
}

func (t *CompositeTransport) ClearID(w http.ResponseWriter) error {
	var errs []error
	for _, tr := range t.transports {
		errs = append(errs, tr.ClearID(w))
	}
	return errors.Join(errs...)
}
