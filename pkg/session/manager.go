package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/authclient"
	"github.com/dmitrymomot/sessionkit/pkg/jwt"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
)

// Transport exchanges user credentials for a token string. Implemented by
// *authclient.Client and by test doubles.
type Transport interface {
	Login(ctx context.Context, creds authclient.Credentials) (string, error)
}

// DecodeFunc turns a compact token string into its claims payload.
type DecodeFunc func(token string) (jwt.Claims, error)

// Manager handles the session lifecycle: Load, Create, Destroy.
//
// It is stateless between calls — no in-memory token cache — so concurrent
// or overlapping calls are safe: the store's write/clear are
// last-writer-wins, and every Load re-reads whatever is currently
// persisted.
type Manager struct {
	store     sessionstore.Store
	transport Transport
	decode    DecodeFunc
	config    Config
	now       func() time.Time
}

// New creates a session manager with the given options. The store defaults
// to an in-memory store on the configured storage key; the credential
// transport has no default and must be provided before Create is called.
func New(opts ...Option) *Manager {
	m := &Manager{
		decode: jwt.Decode,
		config: DefaultConfig(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = sessionstore.NewMemoryStore(m.config.StorageKey)
	}

	return m
}

// Load restores the session from the persisted token.
//
// It fails with ErrNoTokenFound when the store is empty, and with
// ErrInvalidToken when the token does not decode or fails the expiration
// check. The store is never mutated on failure: an invalid token stays
// persisted until an explicit Destroy.
func (m *Manager) Load(ctx context.Context) (jwt.Claims, error) {
	token, err := m.store.Read(ctx)
	if err != nil {
		if errors.Is(err, sessionstore.ErrTokenNotFound) {
			return nil, ErrNoTokenFound
		}
		return nil, errors.Join(ErrStorage, err)
	}

	claims, err := m.decode(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if err := m.checkExpiry(claims); err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	return claims, nil
}

// Create establishes a new session from the supplied credentials.
//
// The credentials are sent over the transport; on success the returned
// token is persisted and its decoded claims returned. On transport failure
// nothing is written, so the store's prior value (including absence)
// survives a rejected login.
func (m *Manager) Create(ctx context.Context, creds authclient.Credentials) (jwt.Claims, error) {
	if m.transport == nil {
		return nil, ErrNoTransport
	}

	token, err := m.transport.Login(ctx, creds)
	if err != nil {
		return nil, errors.Join(ErrAuthenticationFailed, err)
	}

	if err := m.store.Write(ctx, token); err != nil {
		return nil, errors.Join(ErrStorage, err)
	}

	claims, err := m.decode(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	return claims, nil
}

// Destroy terminates the session by removing the persisted token.
// Destroying an absent session is not an error, so the call is idempotent.
func (m *Manager) Destroy(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// checkExpiry applies the "valid while not yet expired" policy: a token is
// rejected when the exp claim is missing, non-numeric, or not later than
// the current time (minus the configured leeway).
func (m *Manager) checkExpiry(claims jwt.Claims) error {
	exp, ok := claims.ExpiresAt()
	if !ok {
		return errors.New("exp claim missing or not numeric")
	}

	now := m.now().Add(-m.config.ExpiryLeeway)
	if !exp.After(now) {
		return fmt.Errorf("token expired at %s", exp.UTC().Format(time.RFC3339))
	}

	return nil
}
