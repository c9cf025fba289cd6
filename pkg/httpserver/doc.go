// Package httpserver runs an HTTP server with graceful shutdown and serves
// health probes for the session backends.
//
//	srv := httpserver.New(cfg, log)
//	err := srv.Run(ctx, router)
//
// Run returns once ctx is done or the process receives SIGINT or SIGTERM and
// in-flight requests have finished, bounded by ShutdownTimeout.
package httpserver
