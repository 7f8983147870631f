package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "ERROR", expected: slog.LevelError},
		{input: "Info", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
		{input: "nonsense", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestInitLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "debug", Format: "json"})
		require.NotNil(t, logger)
		logger.Info("test message", "key", "value")
	})

	t.Run("defaults to text format", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "warn"})
		require.NotNil(t, logger)
		logger.Warn("warning message")
	})

	t.Run("installs the default logger", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "info", Format: "json"})
		assert.Equal(t, logger, slog.Default())
	})
}
