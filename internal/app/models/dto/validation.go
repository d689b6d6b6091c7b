package dto

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// HandleValidationErrors converts a binding error into the full ordered list
// of field-level error details. All violations are reported together so the
// caller can fix every field in one round trip.
func HandleValidationErrors(err error) []ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Code:     ErrorCodeValidationFailed,
				Message:  formatFieldError(fieldErr),
				Field:    jsonFieldName(fieldErr.Field()),
				Severity: ErrorSeverityError,
			})
		}
		return details
	}

	// Malformed JSON or a type mismatch; no per-field detail available
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
	detail = detail.WithDetails(err.Error())
	return []ErrorDetail{*detail}
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	field := jsonFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "trimmin":
		return field + " must be at least " + e.Param() + " characters"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if e.Kind().String() == "string" {
			return field + " must be at least " + e.Param() + " characters"
		}
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// jsonFieldName lowers the first rune so struct field names line up with
// their JSON counterparts
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
