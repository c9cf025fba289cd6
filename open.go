package mongosession

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/mongosession/pkg/cookie"
	"github.com/dmitrymomot/mongosession/pkg/httpserver"
	"github.com/dmitrymomot/mongosession/pkg/logger"
	"github.com/dmitrymomot/mongosession/pkg/metrics"
	"github.com/dmitrymomot/mongosession/pkg/mongo"
	"github.com/dmitrymomot/mongosession/pkg/redis"
	"github.com/dmitrymomot/mongosession/pkg/session"
)

// Service is an opened session store with its collaborators.
type Service struct {
	Config     Config
	Store      *session.Store
	Collection session.Collection
	Logger     *slog.Logger
	// Checks probe the backend, for readiness endpoints.
	Checks []httpserver.Check

	close func(context.Context) error
}

// Option is a functional option for Open
type Option func(*openOptions)

type openOptions struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	storeOpts  []session.Option
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *openOptions) { o.logger = l }
}

// WithRegisterer exports store metrics to reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *openOptions) { o.registerer = reg }
}

// WithStoreOptions passes extra options to session.New.
func WithStoreOptions(opts ...session.Option) Option {
	return func(o *openOptions) { o.storeOpts = append(o.storeOpts, opts...) }
}

// NewLogger builds the logger described by cfg. Records carry the session id
// of the request context, plus whatever extra extractors find.
func NewLogger(cfg Config, extra ...logger.ContextExtractor) (*slog.Logger, error) {
	format := cfg.LogFormat
	if format == "" {
		format = logger.FormatJSON
	}
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, format)
	}

	return logger.New(
		logger.WithVerbosity(cfg.LogLevel),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
		logger.WithService("mongosession"),
		logger.WithContextExtractors(session.LogExtractor()),
		logger.WithContextExtractors(extra...),
	), nil
}

// Open connects the configured backend and builds the session store on it.
// A malformed server locator or an unknown backend fails immediately.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Service, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		var err error
		if log, err = NewLogger(cfg); err != nil {
			return nil, err
		}
	}

	svc := &Service{Config: cfg, Logger: log}

	switch cfg.Backend {
	case BackendMongo, "":
		coll, err := mongo.Open(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		svc.Collection = coll
		svc.Checks = []httpserver.Check{{Name: "mongo", Fn: coll.Healthcheck}}
		svc.close = coll.Close
	case BackendRedis:
		coll, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		svc.Collection = coll
		svc.Checks = []httpserver.Check{{Name: "redis", Fn: coll.Healthcheck}}
		svc.close = func(context.Context) error { return coll.Close() }
	case BackendMemory:
		svc.Collection = session.NewMemoryCollection()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	storeOpts := []session.Option{session.WithLogger(log)}
	if o.registerer != nil {
		storeOpts = append(storeOpts, session.WithObserver(metrics.New(o.registerer)))
	}
	storeOpts = append(storeOpts, o.storeOpts...)

	svc.Store = session.NewFromConfig(svc.Collection, cfg.Session, storeOpts...)

	log.InfoContext(ctx, "session store opened", logger.Backend(cfg.Backend))
	return svc, nil
}

// Manager builds the HTTP session manager with a signed cookie transport
// from the cookie and session configuration.
func (s *Service) Manager(opts ...session.ManagerOption) (*session.Manager, error) {
	cookieMgr, err := cookie.NewFromConfig(s.Config.Cookie)
	if err != nil {
		return nil, err
	}

	base := append(s.Config.Session.ManagerOptions(),
		session.WithCookieManager(cookieMgr),
		session.WithManagerLogger(s.Logger),
	)
	return session.NewManager(s.Store, append(base, opts...)...), nil
}

// RunCleanup purges expired sessions every Session.CleanupInterval until
// ctx is done. It returns at once when the interval is zero.
func (s *Service) RunCleanup(ctx context.Context) error {
	return session.RunCleanup(ctx, s.Store, s.Config.Session.CleanupInterval)
}

// Close releases the backend connection.
func (s *Service) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
