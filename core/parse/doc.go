// Package parse decodes JSON response bodies leniently: a document that fails
// strict decoding is repaired with jsonrepair and decoded again before the
// caller sees an error. Documents that end early are not repaired.
//
// [Unmarshal] mirrors encoding/json.Unmarshal; [As] is the generic form.
package parse
