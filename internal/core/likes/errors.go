package likes

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when userId or blogId is absent
var ErrMissingField = errors.New("userId and blogId are required")

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
