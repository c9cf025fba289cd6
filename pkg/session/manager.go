package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/mongosession/pkg/cookie"
	"github.com/dmitrymomot/mongosession/pkg/logger"
)

// Manager binds a Store to HTTP: it loads the session before the handler
// runs and saves it right before the response is written.
type Manager struct {
	store         *Store
	transport     Transport
	cookieManager *cookie.Manager
	cookieName    string
	cookieOptions []cookie.Option
	secure        bool
	mode          Mode
	logger        *slog.Logger
}

// ManagerOption is a functional option for configuring the Manager
type ManagerOption func(*Manager)

// WithTransport sets the transport carrying the session id.
func WithTransport(t Transport) ManagerOption {
	return func(m *Manager) {
		m.transport = t
	}
}

// WithCookieManager sets the cookie manager of the default cookie transport.
func WithCookieManager(cm *cookie.Manager, opts ...cookie.Option) ManagerOption {
	return func(m *Manager) {
		m.cookieManager = cm
		m.cookieOptions = opts
	}
}

// WithCookieName sets the session cookie name, "rack.session" by default.
func WithCookieName(name string) ManagerOption {
	return func(m *Manager) {
		if name != "" {
			m.cookieName = name
		}
	}
}

// WithSecureCookies forces the Secure flag on the session cookie. False keeps
// whatever the cookie manager is configured with.
func WithSecureCookies(secure bool) ManagerOption {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithMode sets the locking mode used for every request.
func WithMode(mode Mode) ManagerOption {
	return func(m *Manager) {
		m.mode = mode
	}
}

// WithManagerLogger sets the logger. Nil loggers are ignored.
func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a Manager over store. Without WithTransport a cookie
// transport is built, which requires WithCookieManager.
func NewManager(store *Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:      store,
		cookieName: DefaultCookieName,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.transport == nil {
		if m.cookieManager == nil {
			panic("session: cookie manager is required when using default cookie transport")
		}
		var cookieOpts []cookie.Option
		if m.secure {
			cookieOpts = append(cookieOpts, cookie.WithSecure(true))
		}
		m.transport = NewCookieTransport(m.cookieManager, m.cookieName, append(cookieOpts, m.cookieOptions...)...)
	}
	m.logger = m.logger.With(logger.Component("session.manager"))

	return m
}

// Store returns the underlying store.
func (m *Manager) Store() *Store {
	return m.store
}

// Middleware loads the session of every request and puts its handle and
// save options in the request context. The session is saved before the
// first header is written, or after the handler returns if it writes nothing.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID, _ := m.transport.GetID(r)
		h, err := m.store.Load(ctx, m.mode, requestID)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		opts := &SaveOptions{}
		ctx = WithOptions(WithHandle(ctx, h), opts)

		cw := &commitWriter{ResponseWriter: w}
		cw.commit = func() { m.commit(ctx, w, h, opts, requestID) }

		next.ServeHTTP(cw, r.WithContext(ctx))
		cw.flushCommit()
	})
}

// commit saves h and updates the id sent to the client.
func (m *Manager) commit(ctx context.Context, w http.ResponseWriter, h *Handle, opts *SaveOptions, requestID string) {
	if !h.Available() {
		return
	}

	id, err := m.store.Save(ctx, m.mode, h, *opts)
	switch {
	case errors.Is(err, ErrSessionDropped):
		if requestID != "" {
			if err := m.transport.ClearID(w); err != nil {
				m.logger.WarnContext(ctx, "failed to clear session id", logger.Error(err))
			}
		}
		return
	case err != nil && !errors.Is(err, ErrEditsDiscarded):
		m.logger.WarnContext(ctx, "session not saved, id not sent", logger.SessionID(h.ID), logger.Error(err))
		return
	}

	if opts.Defer && !opts.Renew {
		return
	}

	ttl := m.store.TTL(*opts)
	if id == requestID && opts.ExpireAfter == 0 && ttl == 0 {
		return
	}

	if err := m.transport.SetID(w, id, ttl); err != nil {
		m.logger.WarnContext(ctx, "failed to send session id", logger.SessionID(id), logger.Error(err))
	}
}

// Renew marks the session of ctx to move to a new id when saved.
func Renew(ctx context.Context) {
	if opts, ok := OptionsFromContext(ctx); ok {
		opts.Renew = true
	}
}

// Drop marks the session of ctx to be deleted when saved.
func Drop(ctx context.Context) {
	if opts, ok := OptionsFromContext(ctx); ok {
		opts.Drop = true
	}
}

// Defer keeps the session id out of the response. The session is still saved.
func Defer(ctx context.Context) {
	if opts, ok := OptionsFromContext(ctx); ok {
		opts.Defer = true
	}
}

// ExpireAfter sets the lifetime the session of ctx gets when saved.
func ExpireAfter(ctx context.Context, d time.Duration) {
	if opts, ok := OptionsFromContext(ctx); ok {
		opts.ExpireAfter = d
	}
}
