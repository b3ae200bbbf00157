package wirepatch

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

const base = 2147482647

var roles = Mapping{base: "system", base + 1: "assistant", base + 2: "user"}

// TestPatch_SingleField verifies the basic substitution keeps the rest of the
// body intact.
func TestPatch_SingleField(t *testing.T) {
	got := PatchString(`{"model": 2147482647, "n": 1}`, "model", Mapping{base: "gpt-4"})
	want := `{"model": "gpt-4", "n": 1}`
	if got != want {
		t.Errorf("PatchString() = %s, want %s", got, want)
	}
}

// TestPatch_Cases covers whitespace variants and the values that must be left
// alone.
func TestPatch_Cases(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no whitespace after colon",
			input: `{"model":2147482647}`,
			want:  `{"model":"gpt-4"}`,
		},
		{
			name:  "newline after colon",
			input: "{\"model\":\n  2147482647}",
			want:  "{\"model\":\n  \"gpt-4\"}",
		},
		{
			name:  "field absent",
			input: `{"prompt": "hello", "n": 2147482647}`,
			want:  `{"prompt": "hello", "n": 2147482647}`,
		},
		{
			name:  "unmapped ordinal",
			input: `{"model": 42}`,
			want:  `{"model": 42}`,
		},
		{
			name:  "integer overflow",
			input: `{"model": 99999999999999999999999}`,
			want:  `{"model": 99999999999999999999999}`,
		},
		{
			name:  "already a string",
			input: `{"model": "gpt-4"}`,
			want:  `{"model": "gpt-4"}`,
		},
		{
			name:  "fractional number",
			input: `{"model": 2147482647.5}`,
			want:  `{"model": 2147482647.5}`,
		},
		{
			name:  "longer field name sharing a suffix",
			input: `{"base_model": 2147482647, "model": 2147482647}`,
			want:  `{"base_model": 2147482647, "model": "gpt-4"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PatchString(tc.input, "model", Mapping{base: "gpt-4"})
			if got != tc.want {
				t.Errorf("PatchString() = %s, want %s", got, tc.want)
			}
		})
	}
}

// TestPatchAll_ChatBody verifies that the model and every message role are
// rewritten in one body.
func TestPatchAll_ChatBody(t *testing.T) {
	body := []byte(`{"model": 2147482649, "messages": [` +
		`{"role": 2147482647, "content": "be brief"},` +
		`{"role": 2147482649, "content": "hi"},` +
		`{"role": 2147482648, "content": "hello"}], "n": 1}`)

	got := PatchAll(body,
		Rule{Field: "model", Mapping: Mapping{base + 2: "gpt-4"}},
		Rule{Field: "role", Mapping: roles},
	)

	var decoded struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		N int `json:"n"`
	}
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("patched body is not valid JSON: %v\n%s", err, got)
	}
	if decoded.Model != "gpt-4" {
		t.Errorf("model = %q, want gpt-4", decoded.Model)
	}
	wantRoles := []string{"system", "user", "assistant"}
	for i, msg := range decoded.Messages {
		if msg.Role != wantRoles[i] {
			t.Errorf("messages[%d].role = %q, want %q", i, msg.Role, wantRoles[i])
		}
	}
	if decoded.Messages[2].Content != "hello" || decoded.N != 1 {
		t.Errorf("surrounding values changed: %+v", decoded)
	}
}

// TestPatch_DoesNotMutateInput verifies the caller's buffer is left alone.
func TestPatch_DoesNotMutateInput(t *testing.T) {
	body := []byte(`{"role": 2147482647}`)
	original := string(body)
	_ = Patch(body, "role", roles)
	if string(body) != original {
		t.Errorf("input mutated to %s", body)
	}
}

// TestPatch_Property checks random message lists: every mapped role becomes
// its wire string, unmapped ones keep their number and the body stays valid
// JSON.
func TestPatch_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 20).Draw(rt, "count")
		ordinals := make([]int, count)
		parts := make([]string, count)
		for i := range ordinals {
			ordinals[i] = rapid.IntRange(base-2, base+4).Draw(rt, "ordinal")
			content := rapid.StringMatching(`[a-z ]{0,12}`).Draw(rt, "content")
			space := rapid.SampledFrom([]string{"", " ", "  ", "\n"}).Draw(rt, "space")
			parts[i] = fmt.Sprintf(`{"role":%s%d,"content":%q}`, space, ordinals[i], content)
		}
		body := fmt.Sprintf(`{"messages":[%s]}`, strings.Join(parts, ","))

		patched := Patch([]byte(body), "role", roles)

		var decoded struct {
			Messages []struct {
				Role any `json:"role"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(patched, &decoded); err != nil {
			rt.Fatalf("patched body is not valid JSON: %v\n%s", err, patched)
		}
		if len(decoded.Messages) != count {
			rt.Fatalf("got %d messages, want %d", len(decoded.Messages), count)
		}
		for i, msg := range decoded.Messages {
			wire, mapped := roles[ordinals[i]]
			switch role := msg.Role.(type) {
			case string:
				if !mapped || role != wire {
					rt.Fatalf("messages[%d].role = %q, ordinal %d", i, role, ordinals[i])
				}
			case float64:
				if mapped || int(role) != ordinals[i] {
					rt.Fatalf("messages[%d].role = %v, ordinal %d", i, role, ordinals[i])
				}
			default:
				rt.Fatalf("messages[%d].role has type %T", i, msg.Role)
			}
		}
	})
}

// TestPatch_PropertyNoField checks that a body without the field is returned
// unchanged.
func TestPatch_PropertyNoField(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(base-5, base+5).Draw(rt, "n")
		prompt := rapid.StringMatching(`[A-Za-z0-9 ]{0,30}`).Draw(rt, "prompt")
		body := fmt.Sprintf(`{"prompt": %q, "n": %d}`, prompt, n)

		if got := PatchString(body, "model", Mapping{n: "gpt-4"}); got != body {
			rt.Fatalf("PatchString() = %s, want unchanged %s", got, body)
		}
	})
}
