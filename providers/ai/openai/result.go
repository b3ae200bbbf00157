package openai

import "fmt"

// Result is the transport outcome of one request.
type Result int

const (
	// Pending is the status of a response that has not been sent yet.
	Pending Result = iota
	Success
	// ConnectionError means the request never got an answer.
	ConnectionError
	// ProtocolError means the server answered with a non-2xx status.
	ProtocolError
	// DataProcessingError means the answer could not be read or decoded.
	DataProcessingError
)

var resultNames = map[Result]string{
	Pending:             "pending",
	Success:             "success",
	ConnectionError:     "connection_error",
	ProtocolError:       "protocol_error",
	DataProcessingError: "data_processing_error",
}

// String returns the snake_case name of the result.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("result(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Result) UnmarshalText(text []byte) error {
	for result, name := range resultNames {
		if name == string(text) {
			*r = result
			return nil
		}
	}
	return fmt.Errorf("unknown result %q", text)
}
