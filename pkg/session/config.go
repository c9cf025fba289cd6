package session

import "time"

// DefaultCookieName is the session cookie name used when none is configured.
const DefaultCookieName = "rack.session"

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie
	CookieName string `env:"COOKIE_NAME" envDefault:"rack.session"`

	// ExpireAfter is the default session lifetime (0 keeps sessions forever)
	ExpireAfter time.Duration `env:"EXPIRE_AFTER" envDefault:"0"`

	// CleanupInterval for expired sessions (0 to disable)
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"0"`

	// MaxGenerateAttempts bounds the id generation retries
	MaxGenerateAttempts int `env:"MAX_GENERATE_ATTEMPTS" envDefault:"64"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:          DefaultCookieName,
		MaxGenerateAttempts: DefaultMaxGenerateAttempts,
	}
}

// NewFromConfig creates a Store over coll from cfg. opts are applied after
// the configured ones.
func NewFromConfig(coll Collection, cfg Config, opts ...Option) *Store {
	configOpts := []Option{
		WithExpireAfter(cfg.ExpireAfter),
		WithMaxGenerateAttempts(cfg.MaxGenerateAttempts),
	}
	return New(coll, append(configOpts, opts...)...)
}

// ManagerOptions returns the manager options carried by cfg.
func (c Config) ManagerOptions() []ManagerOption {
	return []ManagerOption{
		WithCookieName(c.CookieName),
		WithSecureCookies(c.SecureCookies),
	}
}
