// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with error codes, causes, and
//              metadata. This provides structured error handling that stays
//              compatible with Go's standard error interface while letting
//              callers classify failures by code.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with coded errors

package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a structured error with a code and optional metadata
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
// The code of a wrapped *Error is preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	code := CodeUnknown
	var wrapped *Error
	if errors.As(err, &wrapped) {
		code = wrapped.code
	}

	return &Error{
		message: message,
		cause:   err,
		code:    code,
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithOperation records the operation in which the error occurred
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key/value pair to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Operation returns the recorded operation, if any
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the attached metadata; the map must not be mutated
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// String returns a human-readable representation including code and operation
func (e *Error) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(e.code.String())
	b.WriteString("]")
	if e.operation != "" {
		b.WriteString(" ")
		b.WriteString(e.operation)
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(e.Error())
	return b.String()
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.code == code
	}
	return false
}

// GetCode returns the code of err, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}
