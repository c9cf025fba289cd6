package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/mongosession"
	"github.com/dmitrymomot/mongosession/pkg/httpserver"
	"github.com/dmitrymomot/mongosession/pkg/logger"
	"github.com/dmitrymomot/mongosession/pkg/metrics"
	"github.com/dmitrymomot/mongosession/pkg/session"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a session counter demo with health and metrics endpoints",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Override the configured listen address",
			},
		},
		Action: func(c *cli.Context) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			cfg, _ := c.App.Metadata[configKey].(mongosession.Config)
			log, err := mongosession.NewLogger(cfg, requestIDExtractor)
			if err != nil {
				return err
			}

			svc, err := openService(c, mongosession.WithRegisterer(reg), mongosession.WithLogger(log))
			if err != nil {
				return err
			}
			defer svc.Close(context.WithoutCancel(c.Context))

			manager, err := svc.Manager()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(c.Context)
			defer cancel()

			go func() {
				if err := svc.RunCleanup(ctx); err != nil && !errors.Is(err, context.Canceled) {
					svc.Logger.ErrorContext(ctx, "session cleanup stopped", logger.Error(err))
				}
			}()

			httpCfg := svc.Config.HTTP
			if addr := c.String("addr"); addr != "" {
				httpCfg.Addr = addr
			}

			return httpserver.New(httpCfg, svc.Logger).Run(ctx, newRouter(svc, manager, reg))
		},
	}
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// newRouter mounts the demo routes behind the session middleware and the
// probes and metrics outside of it.
func newRouter(svc *mongosession.Service, manager *session.Manager, g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(svc.Logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(svc.Logger, svc.Checks...))
	r.Handle("/metrics", metrics.Handler(g))

	r.Group(func(r chi.Router) {
		r.Use(manager.Middleware)

		r.Get("/", counterHandler(svc.Logger))
		r.Post("/renew", func(w http.ResponseWriter, r *http.Request) {
			session.Renew(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})
		r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
			session.Drop(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})
	})

	return r
}

func counterHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := session.MustFromContext(r.Context())
		if !h.Available() {
			http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
			return
		}

		n, _ := h.Data.Fetch("counter", 0).(int)
		n++
		h.Data.Set("counter", n)
		log.DebugContext(r.Context(), "counter incremented", slog.Int("counter", n))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "counter: %d\n", n)
	}
}
