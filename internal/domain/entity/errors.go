package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrQuizNotInProgress indicates an answer was submitted while the
	// session was not in the InProgress state
	ErrQuizNotInProgress = errors.New("quiz is not in progress")

	// ErrQuestionIndex indicates a question index outside the quiz bounds
	ErrQuestionIndex = errors.New("question index out of range")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
