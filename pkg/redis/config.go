package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database. It should be in the format "redis://:password@localhost:6379/0"
	KeyPrefix      string        `env:"KEY_PREFIX" envDefault:"session:"`          // KeyPrefix namespaces every key the collection writes.
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of attempts to connect to the database.
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval is the interval between retry attempts. It should be in the format "5s" for 5 seconds.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds all connection attempts together.
}
