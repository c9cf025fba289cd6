package mongo

import "time"

// Config represents the configuration of the session collection.
type Config struct {
	Server         string        `env:"SERVER" envDefault:"localhost:27017/mongo_session/sessions"` // Server is the locator host:port/database/collection.
	ConnectionURL  string        `env:"URL"`                                                        // ConnectionURL replaces the host:port of Server, e.g. to pass credentials or a replica set.
	PoolSize       uint64        `env:"POOL_SIZE" envDefault:"1"`                                   // PoolSize is the maximum number of connections in the connection pool.
	PoolTimeout    time.Duration `env:"POOL_TIMEOUT" envDefault:"1s"`                               // PoolTimeout is how long an operation waits for a usable server connection.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`                           // ConnectTimeout is the timeout for connecting to the database.
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`                              // RetryAttempts is the number of attempts to connect to the database.
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"1s"`                             // RetryInterval is the pause between connection attempts.
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Server:         "localhost:27017/mongo_session/sessions",
		PoolSize:       1,
		PoolTimeout:    time.Second,
		ConnectTimeout: 10 * time.Second,
		RetryAttempts:  3,
		RetryInterval:  time.Second,
	}
}
