package session

import (
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the token store.
func WithStore(store sessionstore.Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithTransport sets the credential transport used by Create.
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithCodec replaces the token decoder. Nil decoders are ignored.
func WithCodec(decode DecodeFunc) Option {
	return func(m *Manager) {
		if decode != nil {
			m.decode = decode
		}
	}
}

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithStorageKey sets the name of the persisted token entry, used when the
// manager constructs its default in-memory store.
func WithStorageKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.config.StorageKey = key
		}
	}
}

// WithExpiryLeeway sets the clock-skew allowance for the expiration check.
func WithExpiryLeeway(leeway time.Duration) Option {
	return func(m *Manager) {
		m.config.ExpiryLeeway = leeway
	}
}

// WithClock replaces the wall-clock source, letting tests pin "now" when
// asserting the expiration policy. Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
