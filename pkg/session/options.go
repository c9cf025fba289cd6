package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Store
type Option func(*Store)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDSource sets the random source of session ids.
func WithIDSource(src IDSource) Option {
	return func(s *Store) {
		if src != nil {
			s.idSource = src
		}
	}
}

// WithMaxGenerateAttempts bounds how many candidate ids are tried per generation.
func WithMaxGenerateAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithClock sets the time source used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithExpireAfter sets the lifetime applied when SaveOptions.ExpireAfter is zero.
// Zero keeps sessions forever.
func WithExpireAfter(d time.Duration) Option {
	return func(s *Store) {
		s.expireAfter = d
	}
}

// WithObserver registers an observer for store events.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// SaveOptions are the per-request options of Save.
type SaveOptions struct {
	// Renew moves the session to a freshly generated id.
	Renew bool
	// Drop deletes the session. It takes precedence over Renew.
	Drop bool
	// ExpireAfter is the lifetime from now. Zero applies the store default,
	// a negative value means never.
	ExpireAfter time.Duration
	// Defer asks transports not to send the id back. The record is still written.
	Defer bool
}

// Mode selects whether an operation takes the store lock.
type Mode int

const (
	// Concurrent serializes the operation with every other Concurrent one.
	Concurrent Mode = iota
	// SingleThreaded skips the lock. Use it only when no other caller runs.
	SingleThreaded
)
