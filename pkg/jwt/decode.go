package jwt

import (
	"errors"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// parser is shared by all Decode calls; it carries no per-token state.
var parser = gojwt.NewParser()

// Decode splits a compact token string and unmarshals its claims segment.
// It performs NO signature verification: tokens are opaque bearer
// credentials whose integrity is guaranteed by the issuing server.
// Pure function, no I/O.
func Decode(token string) (Claims, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	mapClaims := gojwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mapClaims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	return Claims(mapClaims), nil
}
