package session

import "time"

// Config holds session manager configuration.
type Config struct {
	// StorageKey is the name of the persisted token entry (default: "session-jwt")
	StorageKey string `env:"SESSION_STORAGE_KEY" envDefault:"session-jwt"`

	// ExpiryLeeway is subtracted from "now" when checking the exp claim,
	// absorbing clock skew between client and issuing server
	ExpiryLeeway time.Duration `env:"SESSION_EXPIRY_LEEWAY" envDefault:"0s"`
}

// DefaultConfig returns default session manager configuration.
func DefaultConfig() Config {
	return Config{
		StorageKey:   "session-jwt",
		ExpiryLeeway: 0,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// A credential transport must still be supplied via options for Create to work.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{WithConfig(cfg)}
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
