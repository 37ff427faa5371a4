package sessionstore

import "context"

// Store defines the interface for token persistence.
// A Store holds at most one value; Write overwrites any prior token.
type Store interface {
	// Read returns the persisted token, or ErrTokenNotFound when absent
	Read(ctx context.Context) (string, error)

	// Write persists the token, overwriting any prior value
	Write(ctx context.Context, token string) error

	// Clear removes the persisted token; calling it on an empty store is not an error
	Clear(ctx context.Context) error
}
