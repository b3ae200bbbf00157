// Package wirepatch rewrites integer enum ordinals inside an already
// serialized JSON body into the quoted wire strings the API expects.
//
// It is purely textual: no JSON parsing takes place, so a body is never
// re-encoded and everything outside the rewritten values is preserved byte
// for byte. Values without a mapping are left as they are.
package wirepatch

import (
	"encoding/json"
	"regexp"
	"strconv"
	"sync"
)

// Mapping associates an ordinal with its wire string.
type Mapping map[int]string

// Rule patches every occurrence of Field with Mapping.
type Rule struct {
	Field   string
	Mapping Mapping
}

var patterns sync.Map // field name -> *regexp.Regexp

func patternFor(field string) *regexp.Regexp {
	if re, ok := patterns.Load(field); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(field) + `":\s*(\d+)`)
	actual, _ := patterns.LoadOrStore(field, re)
	return actual.(*regexp.Regexp)
}

// Patch replaces the integer value of every `"field": <int>` occurrence in body
// with the quoted string mapping holds for it. Matches are collected in one
// pass and replaced from the last to the first, so the offsets of earlier
// matches stay valid while later ones are rewritten.
func Patch(body []byte, field string, mapping Mapping) []byte {
	if len(mapping) == 0 || len(body) == 0 {
		return body
	}

	matches := patternFor(field).FindAllSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return body
	}

	out := append([]byte(nil), body...)
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][2], matches[i][3]
		if end < len(out) && (out[end] == '.' || out[end] == 'e' || out[end] == 'E') {
			// fractional or exponent number, not an ordinal
			continue
		}

		ordinal, err := strconv.Atoi(string(out[start:end]))
		if err != nil {
			// overflow
			continue
		}
		wire, ok := mapping[ordinal]
		if !ok {
			continue
		}

		quoted, err := json.Marshal(wire)
		if err != nil {
			continue
		}
		patched := make([]byte, 0, len(out)-(end-start)+len(quoted))
		patched = append(patched, out[:start]...)
		patched = append(patched, quoted...)
		patched = append(patched, out[end:]...)
		out = patched
	}
	return out
}

// PatchAll applies rules in order.
func PatchAll(body []byte, rules ...Rule) []byte {
	for _, rule := range rules {
		body = Patch(body, rule.Field, rule.Mapping)
	}
	return body
}

// PatchString is Patch for string bodies.
func PatchString(body, field string, mapping Mapping) string {
	return string(Patch([]byte(body), field, mapping))
}
