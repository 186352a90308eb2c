package validate

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel every *ValidationError unwraps to.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a value that fails a type, range or enum constraint.
type ValidationError struct {
	// Value is the raw input that was rejected.
	Value any
	// Reason is the human-readable constraint that was violated.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %#v: %s", e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(value any, format string, args ...any) error {
	return &ValidationError{Value: value, Reason: fmt.Sprintf(format, args...)}
}
