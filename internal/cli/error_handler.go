package cli

import (
	"fmt"

	"todo-api/internal/errors"
)

// ErrorHandler turns command failures into messages for the operator
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes err with the failed operation. Client errors are reduced
// to their message; anything else keeps its cause, since the operator needs it.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.IsClient(err) {
		return fmt.Errorf("failed to %s: %s", operation, errors.UserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple reduces a bare client error to its message and returns
// everything else unchanged.
func (eh *ErrorHandler) HandleSimple(err error) error {
	if appErr, ok := err.(*errors.AppError); ok && appErr.Kind.Client() {
		return fmt.Errorf("%s", appErr.Message)
	}
	return err
}
