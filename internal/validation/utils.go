package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required"`)
// - Implement Validate() error that calls validation.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// MessageInvalidRequest is the client message for bodies or path
// parameters that cannot be decoded into the request type.
const MessageInvalidRequest = "Invalid request"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Struct validates v against its `validate` tags using a shared validator.
//
// Field names in the resulting errors come from the `json` tag, or the
// `param` tag for path parameters.
func Struct(v any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
	})

	return validate.Struct(v)
}

func fieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		name = fld.Tag.Get("param")
	}
	return name
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates the request struct from path params and the JSON body.
// 2) payload.Validate() applies validation rules.
// 3) Returns *errs.HTTPError (400) if either step fails. Bind failures
//    carry MessageInvalidRequest; the decoder detail is logged at Warn.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		zerolog.Ctx(c.Request().Context()).Warn().
			Err(err).
			Str("detail", bindErrorDetail(err)).
			Msg("request binding failed")

		return errs.NewBadRequestError(MessageInvalidRequest, nil, nil)
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(fieldErrors)
	}

	return nil
}

// bindErrorDetail extracts echo's description of a bind failure for logs.
// It names Go types and parser internals, so it never reaches the client.
func bindErrorDetail(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return err.Error()
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, e := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "datetime":
			msg = "must be a date in YYYY-MM-DD format"

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
