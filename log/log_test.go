package log_test

import (
	"log/slog"
	"strings"
	"testing"

	"maragu.dev/is"

	"github.com/pricenotifier/web/log"
)

func TestNewLogger(t *testing.T) {
	t.Run("should log json without time", func(t *testing.T) {
		var b strings.Builder
		l := log.NewLogger(log.NewLoggerOptions{JSON: true, NoTime: true, Output: &b})
		l.Info("Starting server", "port", 8080)
		is.Equal(t, `{"level":"INFO","msg":"Starting server","port":8080}`+"\n", b.String())
	})

	t.Run("should log text without time", func(t *testing.T) {
		var b strings.Builder
		l := log.NewLogger(log.NewLoggerOptions{NoTime: true, Output: &b})
		l.Info("Starting server", "port", 8080)
		is.Equal(t, "level=INFO msg=\"Starting server\" port=8080\n", b.String())
	})

	t.Run("should not log below the level", func(t *testing.T) {
		var b strings.Builder
		l := log.NewLogger(log.NewLoggerOptions{Level: slog.LevelWarn, Output: &b})
		l.Info("Starting server")
		is.Equal(t, "", b.String())
	})
}

func TestStringToLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, test := range tests {
		t.Run("should parse "+test.input, func(t *testing.T) {
			is.Equal(t, test.expected, log.StringToLevel(test.input))
		})
	}
}
