// Package errors provides typed errors for the serving surfaces.
// The engine core is total over its input domain and never returns
// errors; these types cover the boundary around it: document parsing,
// request decoding, configuration.
package errors

import "fmt"

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a request validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeDocument indicates a brief-document parse error
	TypeDocument Type = "DOCUMENT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a missing resource (e.g. unknown table)
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a domain error with a category and optional cause
type Error struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new error
func New(t Type, message string) *Error {
	return &Error{Type: t, Message: message}
}

// Newf creates a new formatted error
func Newf(t Type, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with context
func Wrap(t Type, message string, cause error) *Error {
	return &Error{Type: t, Message: message, Cause: cause}
}

// IsType reports whether err is a domain error of the given type
func IsType(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}
