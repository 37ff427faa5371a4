package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
)

type testConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
	Token   string        `env:"CONFIG_TEST_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and explicit values", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_TOKEN", "secret")
		t.Setenv("CONFIG_TEST_TIMEOUT", "30s")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "secret", cfg.Token)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("fresh parse per call", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_TOKEN", "first")

		var first testConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Token)

		t.Setenv("CONFIG_TEST_TOKEN", "second")

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "second", second.Token)
	})
}

func TestLoad_PackageConfigs(t *testing.T) {
	t.Run("session config defaults", func(t *testing.T) {
		var cfg session.Config
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "session-jwt", cfg.StorageKey)
		assert.Equal(t, time.Duration(0), cfg.ExpiryLeeway)
	})

	t.Run("store config override", func(t *testing.T) {
		t.Setenv("SESSION_STORAGE_KEY", "admin-session")

		var cfg sessionstore.Config
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "admin-session", cfg.Key)
		assert.Equal(t, 12*time.Hour, cfg.TTL)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
