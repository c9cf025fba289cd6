package mongosession

import (
	"github.com/dmitrymomot/mongosession/pkg/config"
	"github.com/dmitrymomot/mongosession/pkg/cookie"
	"github.com/dmitrymomot/mongosession/pkg/httpserver"
	"github.com/dmitrymomot/mongosession/pkg/logger"
	"github.com/dmitrymomot/mongosession/pkg/mongo"
	"github.com/dmitrymomot/mongosession/pkg/redis"
	"github.com/dmitrymomot/mongosession/pkg/session"
)

// EnvPrefix is prepended to every configuration variable.
const EnvPrefix = "MONGO_SESSION_"

// Backends accepted by Config.Backend.
const (
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config aggregates the configuration of every component.
type Config struct {
	Backend   string        `env:"BACKEND" envDefault:"mongo"`   // Backend is one of mongo, redis or memory.
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`  // LogLevel is fatal, error, warn, info or debug; anything else means info.
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"` // LogFormat is json or text.

	Mongo   mongo.Config
	Redis   redis.Config `envPrefix:"REDIS_"`
	Session session.Config
	Cookie  cookie.Config
	HTTP    httpserver.Config `envPrefix:"HTTP_"`
}

// LoadConfig reads Config from the environment and the optional .env file.
// opts are applied after the prefix.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
