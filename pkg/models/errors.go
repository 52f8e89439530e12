package models

import "fmt"

// TransportError is returned when the request never produced a complete response:
// connection refused, DNS failure, timeout or a broken body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to reach models endpoint: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Status     string

	// Message is the server's own explanation, when it sent one.
	Message string
}

func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %s: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("server returned %s", e.Status)
}

// DecodeError is returned when the response body is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SchemaError is returned when the body is valid JSON but does not have the shape
// of a model list.
type SchemaError struct {
	// Field is the path of the offending value, e.g. "data" or "data[2].id".
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected response: %s: %s", e.Field, e.Reason)
}
