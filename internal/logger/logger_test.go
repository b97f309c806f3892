package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json console output", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Level: "info"}, &buf)
		require.NoError(t, err)
		defer l.Close()

		z := l.Zerolog()
		z.Info().Str("round", "1").Msg("committed")
		z.Debug().Msg("hidden")

		assert.Contains(t, buf.String(), `"message":"committed"`)
		assert.Contains(t, buf.String(), `"round":"1"`)
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("pretty console output", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Level: "debug", Pretty: true}, &buf)
		require.NoError(t, err)

		z := l.Zerolog()
		z.Debug().Msg("attempt")
		assert.Contains(t, buf.String(), "attempt")
		assert.NotContains(t, buf.String(), `"message"`)
	})

	t.Run("unknown level falls back to warn", func(t *testing.T) {
		l, err := New(Config{Level: "loud"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
	})

	t.Run("file output", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "nested", "roundpair.log")

		l, err := New(Config{Level: "info", File: logFile}, &bytes.Buffer{})
		require.NoError(t, err)
		z := l.Zerolog()
		z.Warn().Msg("round exhausted")
		require.NoError(t, l.Close())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "round exhausted")
	})
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
	assert.NoError(t, l.Close())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.True(t, cfg.Pretty)
	assert.Empty(t, cfg.File)
}
