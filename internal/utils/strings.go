package utils

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	// DefaultMaxStringLength applies when TruncateString gets no usable limit.
	DefaultMaxStringLength = 500

	// MaxLoggedBodyLength bounds request bodies written to diagnostic logs.
	MaxLoggedBodyLength = 10000
)

// JSONToString serialises object for log or terminal output. An optional true
// argument indents with two spaces. A marshalling failure yields a JSON error
// document instead of an error.
func JSONToString(object any, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// TruncateString keeps the first maxLen characters of s and appends the
// original length. A maxLen of zero or less means DefaultMaxStringLength.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	total := utf8.RuneCountInString(s)
	if total <= maxLen {
		return s
	}

	cut := 0
	for i := 0; i < maxLen; i++ {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:cut], total)
}
