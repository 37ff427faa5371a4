// Package jwt decodes compact JWT strings into their claims payload.
//
// The package is intentionally one-way: tokens are issued by a remote
// authentication server and treated as opaque bearer credentials on the
// client, so there is no Generate counterpart and no signature
// verification. Decode only inspects the claims segment; integrity is the
// issuing server's responsibility.
//
// # Usage
//
//	claims, err := jwt.Decode(token)
//	if err != nil {
//	    // token is not a well-formed JWT
//	}
//	if exp, ok := claims.ExpiresAt(); ok {
//	    // exp is the token expiry as time.Time
//	}
//
// Claims is a plain map with typed accessors for the registered claims this
// library cares about. Unknown claims pass through untouched.
//
// # Error Handling
//
// Decode returns ErrMalformedToken (joined with the underlying parser error
// for diagnostics) for anything that is not a structurally valid JWT. Use
// errors.Is to test for it.
package jwt
