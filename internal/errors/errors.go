package errors

import (
	stderrors "errors"
	"fmt"
)

// Codes reported to API clients.
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeNotFound     = "NOT_FOUND"
	CodeDatabase     = "DATABASE_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnknown      = "UNKNOWN_ERROR"
)

const (
	databaseMessage   = "A database error occurred. Please try again."
	unexpectedMessage = "An unexpected error occurred. Please try again."
)

// NewValidationError reports a rejected request body. The cause holds the
// per-field detail, usually a *validation.ValidationError.
func NewValidationError(message string, cause error) *AppError {
	return &AppError{Kind: KindValidation, Code: CodeValidation, Message: message, Cause: cause}
}

// NewNotFoundError reports that no entity with id exists.
func NewNotFoundError(entity, id string) *AppError {
	err := &AppError{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s doesn't exist", entity, id),
	}
	return err.With("entity", entity).With("id", id)
}

// NewDatabaseError wraps a driver failure during operation.
func NewDatabaseError(operation string, cause error) *AppError {
	err := &AppError{
		Kind:    KindDatabase,
		Code:    CodeDatabase,
		Message: "database operation failed: " + operation,
		Cause:   cause,
	}
	return err.With("operation", operation)
}

// NewInvalidInputError reports a bad command-line or request value.
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	err := &AppError{
		Kind:    KindInvalidInput,
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
	}
	return err.With("field", field).With("value", value)
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of the AppError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindUnknown
}

// IsClient reports whether err was caused by the caller.
func IsClient(err error) bool {
	return KindOf(err).Client()
}

// Code returns the client-facing code for err.
func Code(err error) string {
	if appErr, ok := As(err); ok && appErr.Code != "" {
		return appErr.Code
	}
	return CodeUnknown
}

// UserMessage returns text safe to show a client. Only client errors keep
// their own message; storage details never leak.
func UserMessage(err error) string {
	appErr, ok := As(err)
	switch {
	case ok && appErr.Kind.Client():
		return appErr.Message
	case ok && appErr.Kind == KindDatabase:
		return databaseMessage
	default:
		return unexpectedMessage
	}
}
