// Package errors classifies the failures that cross layer boundaries.
// Storage reports them; the HTTP API and the command line turn them into
// responses.
package errors

// Kind says who caused an AppError and how it is answered.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindDatabase
	KindInvalidInput
)

var kindNames = map[Kind]string{
	KindValidation:   "validation",
	KindNotFound:     "not_found",
	KindDatabase:     "database",
	KindInvalidInput: "invalid_input",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Client reports whether the caller is at fault. Client errors are answered
// with their own message and are not logged.
func (k Kind) Client() bool {
	switch k {
	case KindValidation, KindNotFound, KindInvalidInput:
		return true
	}
	return false
}

// AppError is a classified error carrying a stable code and a message for
// the caller. Fields holds structured data for the log line.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
	Fields  map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// With records a log field on e and returns e.
func (e *AppError) With(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}
