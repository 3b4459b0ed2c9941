package errs

import (
	"net/http"
)

// MessageMissingData is the client message for any request that fails field-presence checks.
const MessageMissingData = "Missing data"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional (defaults to "BAD_REQUEST"); errors carries per-field detail.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewValidationError creates the 400 returned when required fields are missing or empty.
func NewValidationError(fieldErrors []FieldError) *HTTPError {
	code := "VALIDATION_FAILED"
	return NewBadRequestError(MessageMissingData, &code, fieldErrors)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports an optional custom code similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewConflictError creates a 409 Conflict HTTPError.
func NewConflictError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusConflict))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text; the real cause only goes to logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
