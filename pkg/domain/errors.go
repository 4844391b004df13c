// Package domain defines the error taxonomy shared by the service and
// persistence layers.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrAccountNotFound is returned when no account exists for a requested id
	ErrAccountNotFound = errors.New("account not found")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
)

// FieldError reports a single invalid or missing attribute in an input
// payload. It matches ErrValidation under errors.Is.
type FieldError struct {
	Field  string
	Reason string
}

// NewFieldError builds a FieldError for the given field.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid account data: %s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation, so callers can branch on the
// error class without knowing the field.
func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}
