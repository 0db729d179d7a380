package feed

import (
	"errors"
	"fmt"
)

// ErrInvalidCursor is the one feed failure that is the caller's fault and
// must surface as a bad request. Everything else degrades to a well-formed
// empty or fallback-filled page.
var ErrInvalidCursor = errors.New("invalid cursor")

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
