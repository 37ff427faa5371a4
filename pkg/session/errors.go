package session

import "errors"

var (
	// ErrNoTokenFound indicates no token is persisted at Load time
	ErrNoTokenFound = errors.New("session: no token found")

	// ErrInvalidToken indicates the persisted token is malformed or has expired
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrAuthenticationFailed indicates the credential transport rejected
	// the credentials or could not complete the request
	ErrAuthenticationFailed = errors.New("session: authentication failed")

	// ErrStorage indicates the persistence medium could not be read or written
	ErrStorage = errors.New("session: storage failure")

	// ErrNoStore indicates no store is configured
	ErrNoStore = errors.New("session: no store configured")

	// ErrNoTransport indicates no credential transport is configured
	ErrNoTransport = errors.New("session: no transport configured")
)
