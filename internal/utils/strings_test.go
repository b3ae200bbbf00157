package utils

import (
	"strings"
	"testing"
)

// TestJSONToString_Compact verifies that JSONToString produces compact JSON by default.
func TestJSONToString_Compact(t *testing.T) {
	result := JSONToString(map[string]int{"a": 1, "b": 2})

	if strings.Contains(result, "\n") {
		t.Errorf("JSONToString() compact mode should not contain newlines, got: %q", result)
	}
	if result != `{"a":1,"b":2}` {
		t.Errorf("JSONToString() = %q", result)
	}
}

// TestJSONToString_Indented verifies that passing indent=true produces
// pretty-printed JSON.
func TestJSONToString_Indented(t *testing.T) {
	result := JSONToString(map[string]int{"x": 42}, true)

	if !strings.Contains(result, "\n  \"x\"") {
		t.Errorf("JSONToString(indent=true) should indent with two spaces, got: %q", result)
	}
}

// TestJSONToString_MarshalError verifies that an unmarshalable value yields an
// error document rather than a panic.
func TestJSONToString_MarshalError(t *testing.T) {
	result := JSONToString(make(chan int))

	if !strings.HasPrefix(result, `{"error":`) {
		t.Errorf("JSONToString() on unmarshalable value should return error JSON, got: %q", result)
	}
}

// TestTruncateString covers the limit boundaries and the default limit.
func TestTruncateString(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		maxLen        int
		want          string
		wantTruncated bool
	}{
		{
			name:   "shorter than maxLen returns unchanged",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exactly at maxLen returns unchanged",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:          "longer than maxLen gets truncated",
			input:         "hello world",
			maxLen:        5,
			want:          "hello... (truncated, total: 11 chars)",
			wantTruncated: true,
		},
		{
			name:   "zero maxLen keeps short input",
			input:  "abc",
			maxLen: 0,
			want:   "abc",
		},
		{
			name:          "negative maxLen uses DefaultMaxStringLength",
			input:         strings.Repeat("b", DefaultMaxStringLength+1),
			maxLen:        -1,
			want:          strings.Repeat("b", DefaultMaxStringLength) + "... (truncated, total: 501 chars)",
			wantTruncated: true,
		},
		{
			name:          "counts characters not bytes",
			input:         "héllo wörld",
			maxLen:        4,
			want:          "héll... (truncated, total: 11 chars)",
			wantTruncated: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := TruncateString(testCase.input, testCase.maxLen)
			if got != testCase.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", testCase.input, testCase.maxLen, got, testCase.want)
			}
			if strings.Contains(got, "(truncated") != testCase.wantTruncated {
				t.Errorf("truncation marker mismatch in %q", got)
			}
		})
	}
}
