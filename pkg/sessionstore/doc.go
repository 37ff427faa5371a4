// Package sessionstore persists a single named token string for the
// lifetime of a session scope.
//
// The abstraction is deliberately minimal: one value, read/write/clear,
// synchronous semantics. The storage key is injected at construction rather
// than hidden in a package constant, so independent session scopes (and
// tests) never collide on the same entry.
//
// Two implementations are provided:
//
//   - MemoryStore keeps the value in process memory. Values die with the
//     process, mirroring session-scoped browser storage.
//   - RedisStore keeps the value under a single Redis key with a TTL, for
//     clients that outlive a single process but still want session-scoped
//     expiry. Built on github.com/redis/go-redis/v9.
//
// Both are safe for concurrent use; writes are last-writer-wins.
package sessionstore
