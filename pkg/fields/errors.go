package fields

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("fields: validation failed")

// ErrLegacyClassMissing is returned by LegacyDescriptor when the field has no
// legacy class configured.
var ErrLegacyClassMissing = fmt.Errorf("fields: legacy field class must be set to describe this field: %w", errors.ErrUnsupported)

// Validation error codes.
const (
	CodeRequired      = "required"
	CodeInvalid       = "invalid"
	CodeInvalidChoice = "invalid_choice"
	CodeMaxLength     = "max_length"
	CodeMinValue      = "min_value"
	CodeMaxValue      = "max_value"
	CodeExcludedKey   = "excluded_key"
)

// ValidationError reports a user-correctable problem with one field value.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is reports true for ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, code, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Code: code, Message: fmt.Sprintf(format, args...)}
}

// ValidationErrors gathers the problems of several fields.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, err := range v {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the individual errors to errors.Is / errors.As.
func (v ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(v))
	for _, err := range v {
		out = append(out, err)
	}
	return out
}

// ByField groups messages by field name. Errors without a field are keyed by
// the empty string.
func (v ValidationErrors) ByField() map[string][]string {
	if len(v) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, err := range v {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// OrNil returns nil when v is empty so callers can return it as an error.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
