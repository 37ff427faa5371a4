package sessionstore

import (
	"context"
	"sync"
)

// memoryBacking is the shared medium behind one or more MemoryStore scopes.
type memoryBacking struct {
	mu      sync.RWMutex
	entries map[string]string
}

// MemoryStore implements Store using process memory. Values live for the
// lifetime of the process, the closest Go analogue of session-scoped
// browser storage.
type MemoryStore struct {
	key     string
	backing *memoryBacking
}

// NewMemoryStore creates an in-memory store for the given storage key.
func NewMemoryStore(key string) *MemoryStore {
	if key == "" {
		key = DefaultConfig().Key
	}
	return &MemoryStore{
		key: key,
		backing: &memoryBacking{
			entries: make(map[string]string),
		},
	}
}

// SharedWith returns a store scoped to a different key on the same backing
// medium. Scopes with distinct keys never observe each other's values.
func (m *MemoryStore) SharedWith(key string) *MemoryStore {
	return &MemoryStore{
		key:     key,
		backing: m.backing,
	}
}

// Read returns the persisted token or ErrTokenNotFound.
func (m *MemoryStore) Read(ctx context.Context) (string, error) {
	m.backing.mu.RLock()
	defer m.backing.mu.RUnlock()

	token, ok := m.backing.entries[m.key]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// Write persists the token, overwriting any prior value. Last writer wins.
func (m *MemoryStore) Write(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	m.backing.mu.Lock()
	defer m.backing.mu.Unlock()

	m.backing.entries[m.key] = token
	return nil
}

// Clear removes the persisted token. Clearing an empty store is a no-op.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.backing.mu.Lock()
	defer m.backing.mu.Unlock()

	delete(m.backing.entries, m.key)
	return nil
}
