// Package session manages a client-side authentication session backed by a
// bearer token.
//
// The Manager answers three questions for a calling application: is there a
// valid session right now (Load), how is a new session established from
// user credentials (Create), and how is a session terminated (Destroy). It
// composes three injected collaborators — a token codec, a token store, and
// a credential transport — and holds no state of its own between calls:
// Load always re-reads the store, so the claims returned always reflect the
// most recently persisted token.
//
// # Lifecycle
//
//	mgr := session.New(
//	    session.WithStore(sessionstore.NewMemoryStore("session-jwt")),
//	    session.WithTransport(client),
//	)
//
//	// application bootstrap
//	claims, err := mgr.Load(ctx)
//	switch {
//	case errors.Is(err, session.ErrNoTokenFound):
//	    // redirect to sign-in
//	case errors.Is(err, session.ErrInvalidToken):
//	    // token malformed or expired; redirect to sign-in
//	}
//
//	// sign-in flow
//	claims, err = mgr.Create(ctx, authclient.Credentials{Username: u, Password: p})
//
//	// sign-out flow
//	_ = mgr.Destroy(ctx)
//
// # Error Handling
//
// Every failure is returned to the immediate caller as a sentinel testable
// with errors.Is, with the underlying cause joined in for diagnostics. The
// Manager never logs, never retries, and never recovers silently: Load does
// not clear an invalid token from the store, only an explicit Destroy does.
package session
