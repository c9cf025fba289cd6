// Package logger builds the *slog.Logger used across the session store, with
// functional options, verbosity parsing, attribute helpers and transparent
// injection of values stored in context.Context.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it in a handler that runs the registered
// ContextExtractor callbacks before delegating each record. The
// session middleware uses an extractor to stamp the current session id on
// every record logged with the request context.
//
// # Verbosity
//
// ParseLevel accepts the names fatal, error, warn, info and debug. Anything
// else falls back to info. LevelFatal is one step above slog.LevelError and
// is printed as FATAL.
//
// # Usage
//
//	import "github.com/dmitrymomot/mongosession/pkg/logger"
//
//	log := logger.New(
//	    logger.WithVerbosity(cfg.LogLevel),
//	    logger.WithService("sessions"),
//	)
//	log.InfoContext(ctx, "session saved", logger.SessionID(id))
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no surrounding nil check.
package logger
