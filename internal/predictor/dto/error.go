package dto

import "fmt"

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationFailureError rejects a request before anything is attempted.
type ValidationFailureError struct {
	Field  string
	Reason string
}

func (e *ValidationFailureError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NetworkFailureError means the upstream request could not be sent,
// timed out, or came back with a failure status.
type NetworkFailureError struct {
	Err error
}

func (e *NetworkFailureError) Error() string {
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *NetworkFailureError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means a response was received but a mandatory
// field was absent or of the wrong type.
type MalformedResponseError struct {
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed upstream response: field %s", e.Field)
	}
	return fmt.Sprintf("malformed upstream response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
