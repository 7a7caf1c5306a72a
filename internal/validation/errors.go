package validation

import (
	"fmt"
	"strings"
)

// Rule names the check a field failed.
type Rule string

const (
	RuleRequired Rule = "required"
	RuleFormat   Rule = "invalid_format"
	RuleValue    Rule = "invalid_value"
)

// FieldError is one failed check on one property of a request body.
type FieldError struct {
	Field   string
	Rule    Rule
	Message string
	Value   interface{}
}

func (fe FieldError) Error() string {
	return fe.Message
}

// ValidationError collects every FieldError found in one request body.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Error joins the field messages in the order they were found.
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Has reports whether field already failed a check.
func (ve *ValidationError) Has(field string) bool {
	for _, fe := range ve.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (ve *ValidationError) Required(field string) {
	ve.add(field, RuleRequired, nil, "%s is required", field)
}

func (ve *ValidationError) InvalidFormat(field string, value interface{}, expected string) {
	ve.add(field, RuleFormat, value, "%s has invalid format, expected: %s", field, expected)
}

func (ve *ValidationError) InvalidValue(field string, value interface{}, reason string) {
	ve.add(field, RuleValue, value, "%s has invalid value: %s", field, reason)
}

func (ve *ValidationError) add(field string, rule Rule, value interface{}, format string, args ...interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	})
}

// FieldMessages returns the first message recorded for each field. It is
// the "errors" object of a 400 response.
func (ve *ValidationError) FieldMessages() map[string]string {
	messages := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		if _, seen := messages[fe.Field]; !seen {
			messages[fe.Field] = fe.Message
		}
	}
	return messages
}
