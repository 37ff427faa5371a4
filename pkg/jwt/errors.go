package jwt

import "errors"

var (
	// ErrMalformedToken indicates the string is not a structurally valid JWT
	ErrMalformedToken = errors.New("jwt: malformed token")

	// ErrEmptyToken indicates an empty string was passed to Decode
	ErrEmptyToken = errors.New("jwt: empty token")
)
