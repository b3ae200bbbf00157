package slogobs

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"  DEBUG  ", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"UNKNOWN", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ParseLogLevel(tt.input); result != tt.expected {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("OAIKIT_LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_LEVEL", "ERROR")
	if got := LogLevelFromEnv(); got != slog.LevelDebug {
		t.Errorf("LogLevelFromEnv() = %v, want DEBUG", got)
	}

	t.Setenv("OAIKIT_LOG_LEVEL", "")
	if got := LogLevelFromEnv(); got != slog.LevelError {
		t.Errorf("LogLevelFromEnv() fallback = %v, want ERROR", got)
	}
}
