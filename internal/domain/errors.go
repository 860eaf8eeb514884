package domain

import (
	"errors"
	"fmt"
)

// NotFoundError represents a missing resource. Records owned by another
// user answer with the same error as absent ones.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError carries field-level validation failures. No mutation is
// performed when one is returned.
type ValidationError struct {
	Fields map[string][]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// Is enables errors.Is matching on ValidationError.
func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, message string) ValidationError {
	return ValidationError{Fields: map[string][]string{field: {message}}}
}

// ErrInvalidCredentials is returned for unknown tokens or failed logins.
var ErrInvalidCredentials = errors.New("invalid credentials")
