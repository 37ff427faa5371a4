package jwt

import "time"

// Claims is the decoded body of a token: a mapping of claim names to values.
// It is derived data, recomputed from the token string on every Decode, and
// is never persisted on its own.
type Claims map[string]any

// Get retrieves a raw claim value.
func (c Claims) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c[key]
	return v, ok
}

// String retrieves a claim as a string.
func (c Claims) String(key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Subject returns the registered "sub" claim.
func (c Claims) Subject() (string, bool) {
	return c.String("sub")
}

// ExpiresAt returns the registered "exp" claim as wall-clock time.
// JSON unmarshals numbers into float64; integer and string forms issued by
// some servers are tolerated as well.
func (c Claims) ExpiresAt() (time.Time, bool) {
	sec, ok := c.numeric("exp")
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, int64(sec*float64(time.Second))), true
}

// IssuedAt returns the registered "iat" claim as wall-clock time.
func (c Claims) IssuedAt() (time.Time, bool) {
	sec, ok := c.numeric("iat")
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, int64(sec*float64(time.Second))), true
}

func (c Claims) numeric(key string) (float64, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
