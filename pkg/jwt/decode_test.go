package jwt_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/jwt"
)

// makeToken builds an unsigned compact JWT for the given claims. The codec
// never verifies signatures, so a fixed placeholder signature is enough.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"typ": "JWT", "alg": "HS256"})
	require.NoError(t, err)

	body, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(body) + "." + enc.EncodeToString([]byte("sig"))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("well-formed token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		token := makeToken(t, map[string]any{
			"sub":  "user123",
			"exp":  exp,
			"name": "John Doe",
		})

		claims, err := jwt.Decode(token)
		require.NoError(t, err)

		sub, ok := claims.Subject()
		assert.True(t, ok)
		assert.Equal(t, "user123", sub)

		expiry, ok := claims.ExpiresAt()
		assert.True(t, ok)
		assert.Equal(t, exp, expiry.Unix())

		// Unknown claims pass through untouched.
		name, ok := claims.String("name")
		assert.True(t, ok)
		assert.Equal(t, "John Doe", name)
	})

	t.Run("empty string", func(t *testing.T) {
		claims, err := jwt.Decode("")
		require.ErrorIs(t, err, jwt.ErrEmptyToken)
		require.Nil(t, claims)
	})

	t.Run("wrong segment count", func(t *testing.T) {
		claims, err := jwt.Decode("only.two")
		require.ErrorIs(t, err, jwt.ErrMalformedToken)
		require.Nil(t, claims)
	})

	t.Run("invalid base64 body", func(t *testing.T) {
		claims, err := jwt.Decode("abc.!!!not-base64!!!.ghi")
		require.ErrorIs(t, err, jwt.ErrMalformedToken)
		require.Nil(t, claims)
	})

	t.Run("non-JSON body", func(t *testing.T) {
		enc := base64.RawURLEncoding
		token := enc.EncodeToString([]byte(`{"alg":"HS256"}`)) + "." +
			enc.EncodeToString([]byte("not json at all")) + "." +
			enc.EncodeToString([]byte("sig"))

		claims, err := jwt.Decode(token)
		require.ErrorIs(t, err, jwt.ErrMalformedToken)
		require.Nil(t, claims)
	})

	t.Run("garbage string", func(t *testing.T) {
		claims, err := jwt.Decode("not-a-token")
		require.ErrorIs(t, err, jwt.ErrMalformedToken)
		require.Nil(t, claims)
	})
}

func TestClaims(t *testing.T) {
	t.Parallel()

	t.Run("missing exp", func(t *testing.T) {
		claims, err := jwt.Decode(makeToken(t, map[string]any{"sub": "user123"}))
		require.NoError(t, err)

		_, ok := claims.ExpiresAt()
		assert.False(t, ok)
	})

	t.Run("non-numeric exp", func(t *testing.T) {
		claims, err := jwt.Decode(makeToken(t, map[string]any{"exp": "tomorrow"}))
		require.NoError(t, err)

		_, ok := claims.ExpiresAt()
		assert.False(t, ok)
	})

	t.Run("fractional exp", func(t *testing.T) {
		claims, err := jwt.Decode(makeToken(t, map[string]any{"exp": 1735689600.5}))
		require.NoError(t, err)

		expiry, ok := claims.ExpiresAt()
		require.True(t, ok)
		assert.Equal(t, int64(1735689600), expiry.Unix())
	})

	t.Run("iat accessor", func(t *testing.T) {
		claims, err := jwt.Decode(makeToken(t, map[string]any{"iat": 1700000000}))
		require.NoError(t, err)

		issued, ok := claims.IssuedAt()
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), issued.Unix())
	})

	t.Run("nil map accessors", func(t *testing.T) {
		var claims jwt.Claims

		_, ok := claims.Get("anything")
		assert.False(t, ok)
		_, ok = claims.Subject()
		assert.False(t, ok)
	})
}
