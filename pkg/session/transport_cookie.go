package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/mongosession/pkg/cookie"
)

// CookieTransport carries the session id in a signed cookie.
type CookieTransport struct {
	cookieMgr  *cookie.Manager
	cookieName string
	options    []cookie.Option
}

// NewCookieTransport creates a cookie transport writing cookieName through cookieMgr.
func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:  cookieMgr,
		cookieName: cookieName,
		options:    opts,
	}
}

// GetID returns the id from the cookie if its signature is valid.
func (t *CookieTransport) GetID(r *http.Request) (string, error) {
	id, err := t.cookieMgr.GetSigned(r, t.cookieName)
	if err != nil || id == "" {
		return "", ErrNoSessionID
	}
	return id, nil
}

// SetID writes the signed id cookie.
func (t *CookieTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) error {
	opts := make([]cookie.Option, 0, len(t.options)+1)
	if ttl > 0 {
		opts = append(opts, cookie.WithMaxAge(int(ttl.Seconds())))
	}
	opts = append(opts, t.options...)

	t.cookieMgr.SetSigned(w, t.cookieName, id, opts...)
	return nil
}

// ClearID removes the session cookie
func (t *CookieTransport) ClearID(w http.ResponseWriter) error {
	t.cookieMgr.Delete(w, t.cookieName)
	return nil
}
