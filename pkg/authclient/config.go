package authclient

import "time"

// Config holds credential transport configuration.
type Config struct {
	// LoginURL is the authentication endpoint credentials are posted to
	LoginURL string `env:"AUTH_LOGIN_URL,required"`

	// RequestTimeout bounds a single login round-trip
	RequestTimeout time.Duration `env:"AUTH_REQUEST_TIMEOUT" envDefault:"15s"`
}

// NewFromConfig creates a Client from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := []Option{WithTimeout(cfg.RequestTimeout)}
	configOpts = append(configOpts, opts...)

	return New(cfg.LoginURL, configOpts...)
}
