// File: level_test.go
// Title: Unit Tests for Log Levels
// Description: Tests for Level string conversion, parsing, and validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial test implementation

package log

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected string
		short    string
	}{
		{"debug", LevelDebug, "debug", "DBG"},
		{"info", LevelInfo, "info", "INF"},
		{"warn", LevelWarn, "warn", "WRN"},
		{"error", LevelError, "error", "ERR"},
		{"unknown", Level(99), "unknown", "UNK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("String() = %q; want %q", got, tt.expected)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %q; want %q", got, tt.short)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"debug lowercase", "debug", LevelDebug},
		{"debug short", "dbg", LevelDebug},
		{"info", "info", LevelInfo},
		{"warn", "warn", LevelWarn},
		{"warning alias", "warning", LevelWarn},
		{"error uppercase", "ERROR", LevelError},
		{"padded", "  info  ", LevelInfo},
		{"unknown falls back to info", "verbose", LevelInfo},
		{"empty falls back to info", "", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelIsValid(t *testing.T) {
	if !LevelDebug.IsValid() || !LevelError.IsValid() {
		t.Error("bounds of valid levels reported invalid")
	}
	if Level(-1).IsValid() || Level(99).IsValid() {
		t.Error("out-of-range level reported valid")
	}
}
