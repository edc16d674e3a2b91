//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSettings_Validate(t *testing.T) {
	t.Run("ValidConsoleSettings", func(t *testing.T) {
		settings := &LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		}
		require.NoError(t, settings.Validate())
	})

	t.Run("ValidFileSettings", func(t *testing.T) {
		settings := &LoggerSettings{
			LogLevel:   LogLevelDebug,
			LogType:    LogTypeFile,
			FilePath:   "app.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		}
		require.NoError(t, settings.Validate())
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		settings := &LoggerSettings{
			LogLevel: "verbose",
			LogType:  LogTypeConsole,
		}
		assert.Error(t, settings.Validate())
	})

	t.Run("UnknownType", func(t *testing.T) {
		settings := &LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  "syslog",
		}
		assert.Error(t, settings.Validate())
	})

	t.Run("FileTypeWithoutPath", func(t *testing.T) {
		settings := &LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeFile,
		}
		assert.Error(t, settings.Validate())
	})

	t.Run("RotationBoundsEnforced", func(t *testing.T) {
		settings := &LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeFile,
			FilePath:   "app.log",
			MaxSize:    500,
			MaxBackups: 3,
			MaxAge:     30,
		}
		assert.Error(t, settings.Validate())
	})
}
