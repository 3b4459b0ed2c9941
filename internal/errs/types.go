package errs

import (
	"fmt"
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It is serialized directly to JSON. Only the message and the optional
// field errors reach the client:
//
//	{ "error": "Missing data", "errors": [{ "field": "phone", "error": "is required" }] }
//
// Code and Status stay server-side and feed logs and tracing.
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Status  int    `json:"-"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does not compare Code or Status; use errors.As for that.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// StorageError wraps a failure of the underlying store: connectivity loss,
// a rejected statement, a constraint violation.
//
// It is deliberately distinct from validation and not-found outcomes.
// Callers that need the driver detail unwrap it (see sqlerr.ErrCode).
type StorageError struct {
	// Op names the repository operation, e.g. "members.create".
	Op string

	// Err is the underlying driver or mapped sqlerr error.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
