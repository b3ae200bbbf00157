package slogobs

import (
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	// FormatText uses slog.TextHandler (key=value pairs). Default.
	FormatText Format = "text"

	// FormatJSON uses slog.JSONHandler, one object per record.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name. Unknown names give FormatText.
func ParseFormat(s string) Format {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// FormatFromEnv reads OAIKIT_LOG_FORMAT, then LOG_FORMAT.
func FormatFromEnv() Format {
	if format := os.Getenv("OAIKIT_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return ParseFormat(os.Getenv("LOG_FORMAT"))
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}
