// File: codes_test.go
// Title: Unit Tests for Error Codes
// Description: Tests for the Code taxonomy covering validity checks and
//              category mapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial test implementation

package error

import "testing"

func TestCodeString(t *testing.T) {
	if CodeNilInstance.String() != "NIL_INSTANCE" {
		t.Errorf("String() = %q; want %q", CodeNilInstance.String(), "NIL_INSTANCE")
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected bool
	}{
		{"known generic code", CodeUnknown, true},
		{"known argument code", CodeAliasedResult, true},
		{"known conversion code", CodeNoDigits, true},
		{"known resource code", CodeIOError, true},
		{"unknown code", Code("NOPE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.expected {
				t.Errorf("IsValid(%v) = %v; want %v", tt.code, got, tt.expected)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected string
	}{
		{"nil instance", CodeNilInstance, "argument"},
		{"aliased result", CodeAliasedResult, "argument"},
		{"no digits", CodeNoDigits, "conversion"},
		{"out of range", CodeValueOutOfRange, "conversion"},
		{"allocation", CodeAllocationFailed, "resource"},
		{"io", CodeIOError, "resource"},
		{"config", CodeConfigError, "configuration"},
		{"unknown", CodeUnknown, "generic"},
		{"foreign", Code("NOPE"), "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Category(); got != tt.expected {
				t.Errorf("Category(%v) = %q; want %q", tt.code, got, tt.expected)
			}
		})
	}
}
