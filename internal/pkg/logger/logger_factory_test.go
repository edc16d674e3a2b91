//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsa_cipher_service/internal/pkg/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("ConsoleLogger", func(t *testing.T) {
		settings := &config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		}

		logger, err := newLogger(settings)
		require.NoError(t, err)
		assert.IsType(t, &ConsoleLogger{}, logger)
	})

	t.Run("FileLogger", func(t *testing.T) {
		settings := &config.LoggerSettings{
			LogLevel:   config.LogLevelDebug,
			LogType:    config.LogTypeFile,
			FilePath:   filepath.Join(t.TempDir(), "app.log"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		}

		logger, err := newLogger(settings)
		require.NoError(t, err)
		assert.IsType(t, &FileLogger{}, logger)
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		settings := &config.LoggerSettings{
			LogLevel: "verbose",
			LogType:  config.LogTypeConsole,
		}

		_, err := newLogger(settings)
		assert.Error(t, err)
	})
}

func TestInitAndGetLogger(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))

	logger, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	// Subsequent calls return the same instance.
	again, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, logger, again)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelInfo, parseLevel(config.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelError))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}
