// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the dynstr library. The codes mirror the
//              two failure families of the string core (invalid arguments and
//              resource failures) plus the conversion and tooling concerns.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with library error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the dynstr library
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Invalid-argument codes
	CodeNilInstance   Code = "NIL_INSTANCE"
	CodeNilArgument   Code = "NIL_ARGUMENT"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeAliasedResult Code = "ALIASED_RESULT"
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Conversion codes
	CodeNoDigits        Code = "NO_DIGITS"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Resource codes
	CodeAllocationFailed Code = "ALLOCATION_FAILED"
	CodeIOError          Code = "IO_ERROR"

	// Tooling codes
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeNilInstance, CodeNilArgument, CodeInvalidInput, CodeAliasedResult, CodeInvalidFormat,
		CodeNoDigits, CodeValueOutOfRange,
		CodeAllocationFailed, CodeIOError,
		CodeConfigError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNilInstance, CodeNilArgument, CodeInvalidInput, CodeAliasedResult, CodeInvalidFormat:
		return "argument"
	case CodeNoDigits, CodeValueOutOfRange:
		return "conversion"
	case CodeAllocationFailed, CodeIOError:
		return "resource"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}
