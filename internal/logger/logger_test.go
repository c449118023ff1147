package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("create logger with console output", func(t *testing.T) {
		var out bytes.Buffer
		cfg := Config{
			Level:   "info",
			Console: true,
			Pretty:  false,
			Out:     &out,
		}

		logger, err := New(cfg)
		require.NoError(t, err)
		defer logger.Close()

		zl := logger.GetZerolog()
		zl.Info().Str("op", "show").Msg("console message")
		assert.Contains(t, out.String(), `"message":"console message"`)
		assert.Contains(t, out.String(), `"op":"show"`)
	})

	t.Run("create logger with file output", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "logs", "test.log")

		cfg := Config{
			Level:   "debug",
			File:    logFile,
			Console: false,
		}

		logger, err := New(cfg)
		require.NoError(t, err)

		zl := logger.GetZerolog()
		zl.Info().Msg("test message")
		logger.Close()

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "test message")
	})

	t.Run("level filtering", func(t *testing.T) {
		var out bytes.Buffer
		logger, err := New(Config{Level: "warn", Console: true, Out: &out})
		require.NoError(t, err)
		defer logger.Close()

		zl := logger.GetZerolog()
		zl.Info().Msg("hidden")
		zl.Warn().Msg("shown")
		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), "shown")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger, err := New(Config{Level: "loud"})
		require.NoError(t, err)
		defer logger.Close()
		assert.Equal(t, zerolog.InfoLevel, logger.GetZerolog().GetLevel())
	})
}

func TestNewInstallsGlobalLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(Config{Level: "info", Console: true, Out: &out})
	require.NoError(t, err)
	defer logger.Close()

	log.Info().Msg("via global")
	assert.Contains(t, out.String(), "via global")
}

func TestNoWritersDiscards(t *testing.T) {
	logger, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	defer logger.Close()

	assert.NotPanics(t, func() {
		zl := logger.GetZerolog()
		zl.Debug().Msg("dropped")
	})
}
