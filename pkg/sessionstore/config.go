package sessionstore

import "time"

// Config holds store configuration shared by all implementations.
type Config struct {
	// Key is the name of the storage entry (default: "session-jwt")
	Key string `env:"SESSION_STORAGE_KEY" envDefault:"session-jwt"`

	// TTL bounds how long a persisted token may live in stores that support
	// expiry (0 disables expiry). The in-memory store ignores it.
	TTL time.Duration `env:"SESSION_STORE_TTL" envDefault:"12h"`
}

// RedisConfig extends Config with Redis connection settings.
type RedisConfig struct {
	Config

	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns default store configuration.
func DefaultConfig() Config {
	return Config{
		Key: "session-jwt",
		TTL: 12 * time.Hour,
	}
}
