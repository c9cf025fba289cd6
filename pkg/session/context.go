package session

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/mongosession/pkg/logger"
)

type (
	handleContextKey  struct{}
	optionsContextKey struct{}
)

// WithHandle adds a session handle to the context
func WithHandle(ctx context.Context, h *Handle) context.Context {
	return context.WithValue(ctx, handleContextKey{}, h)
}

// FromContext retrieves the session handle from the context
func FromContext(ctx context.Context) (*Handle, bool) {
	h, ok := ctx.Value(handleContextKey{}).(*Handle)
	return h, ok
}

// MustFromContext retrieves the session handle from the context or panics
func MustFromContext(ctx context.Context) *Handle {
	h, ok := FromContext(ctx)
	if !ok {
		panic("session: not found in context")
	}
	return h
}

// WithOptions adds the request's save options to the context
func WithOptions(ctx context.Context, opts *SaveOptions) context.Context {
	return context.WithValue(ctx, optionsContextKey{}, opts)
}

// OptionsFromContext returns the save options of the current request.
// Handlers set Drop, Renew, Defer or ExpireAfter on the returned value; the
// middleware applies them when it saves the session.
func OptionsFromContext(ctx context.Context) (*SaveOptions, bool) {
	opts, ok := ctx.Value(optionsContextKey{}).(*SaveOptions)
	return opts, ok && opts != nil
}

// LogExtractor logs the id of the session in context as "session_id".
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		h, ok := FromContext(ctx)
		if !ok || !h.Available() {
			return slog.Attr{}, false
		}
		return logger.SessionID(h.ID), true
	}
}
