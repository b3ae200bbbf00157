package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/kaptinlin/jsonrepair"
)

// ErrMalformed is wrapped by every error of this package.
var ErrMalformed = errors.New("malformed JSON document")

// ErrTruncated is wrapped, together with ErrMalformed, when the document ends
// before it is complete. Such documents are never repaired.
var ErrTruncated = errors.New("document ends early")

// Unmarshal decodes data into v, which must be a non-nil pointer. When the
// strict decode fails the document is run through jsonrepair and decoded once
// more into a zeroed v, so a failed first attempt leaves nothing behind.
//
// Repair covers what servers and proxies occasionally emit: trailing commas,
// comments and Python style constants. A body cut short fails with
// ErrTruncated instead, since completing it would invent content.
func Unmarshal(data []byte, v any) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrMalformed, v)
	}

	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Offset >= int64(len(data)) {
		target.Elem().SetZero()
		return fmt.Errorf("%w: %w after %d bytes", ErrMalformed, ErrTruncated, len(data))
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return fmt.Errorf("%w: %v (repair failed: %v)", ErrMalformed, err, repairErr)
	}

	target.Elem().SetZero()
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		target.Elem().SetZero()
		return fmt.Errorf("%w: decoding repaired document as %T: %v", ErrMalformed, v, err)
	}
	return nil
}

// As decodes data into a new T with the same repair fallback as Unmarshal.
//
//	type Person struct {
//	    Name string `json:"name"`
//	}
//	person, err := parse.As[Person]([]byte(`{"name": "John",}`))
func As[T any](data []byte) (T, error) {
	var result T
	err := Unmarshal(data, &result)
	return result, err
}
