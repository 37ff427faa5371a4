package authclient

import "errors"

var (
	// ErrMissingLoginURL indicates the client was constructed without an endpoint
	ErrMissingLoginURL = errors.New("authclient: missing login URL")

	// ErrMissingCredentials indicates Login was called with an empty username
	ErrMissingCredentials = errors.New("authclient: missing credentials")

	// ErrAuthenticationFailed indicates the server rejected the credentials
	// or the request could not complete
	ErrAuthenticationFailed = errors.New("authclient: authentication failed")

	// ErrEmptyResponse indicates the server returned 2xx with no token body
	ErrEmptyResponse = errors.New("authclient: empty token response")
)
