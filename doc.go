// Package sessionkit manages client-side authentication sessions backed by
// bearer tokens (JWTs).
//
// It answers three questions for an application: is there a valid session
// right now, how is a new session established from user credentials, and
// how is a session terminated. The library is deliberately small and
// reactive — it never initiates calls on its own, never refreshes tokens,
// and never retries.
//
// Packages:
//
//   - pkg/session — the lifecycle manager: Load, Create, Destroy
//   - pkg/jwt — decode-only claims codec for compact tokens
//   - pkg/sessionstore — single-value token persistence (memory, Redis)
//   - pkg/authclient — HTTP credential transport
//   - pkg/config — env-based configuration loading
//   - pkg/logger — slog factory for application edges
//
// See pkg/session for the composition entry point and cmd/sessionctl for a
// complete working client.
package sessionkit
