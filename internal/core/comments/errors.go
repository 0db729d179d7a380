package comments

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a comment does not exist
	ErrNotFound = errors.New("comment not found")

	// ErrMissingUser is returned when a write arrives without a user identity
	ErrMissingUser = errors.New("user id is required")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
