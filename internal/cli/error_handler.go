package cli

import (
	"fmt"

	"schedule/internal/errors"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages, keeping the original error wrapped
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return &handledError{
			message: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)),
			cause:   err,
		}
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// handledError shows the user message but still unwraps to the AppError
type handledError struct {
	message string
	cause   error
}

func (e *handledError) Error() string { return e.message }

func (e *handledError) Unwrap() error { return e.cause }
