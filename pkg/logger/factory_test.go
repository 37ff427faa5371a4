package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("hello", slog.String("key", "value"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "value", record["key"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")

		assert.True(t, strings.Contains(buf.String(), "msg=hello"))
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.NotEmpty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "sessionctl")),
		)

		log.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "sessionctl", record["service"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})

	t.Run("development preset", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("sessionctl"), logger.WithOutput(&buf))

		log.Debug("visible at debug level")
		assert.True(t, strings.Contains(buf.String(), "service=sessionctl"))
	})
}
