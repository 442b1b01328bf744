// File: logger.go
// Title: Core Logger Implementation
// Description: Implements a small leveled logger with named instances and
//              timestamped plain-text output. Used by the dynstr command-line
//              tooling; the library itself stays silent.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with leveled text logging

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a leveled logger writing timestamped text lines
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	name   string
}

// New creates a logger with the given name, logging at LevelInfo to stderr
func New(name string) *Logger {
	return &Logger{
		level:  LevelInfo,
		output: os.Stderr,
		name:   name,
	}
}

// WithLevel returns the logger with its minimum level set
func (l *Logger) WithLevel(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	return l
}

// WithOutput returns the logger with its output writer set
func (l *Logger) WithOutput(output io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if output != nil {
		l.output = output
	}
	return l
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel sets the minimum level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// IsLevelEnabled reports whether messages at the given level are emitted
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// Debugf logs a formatted message at LevelDebug
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs a formatted message at LevelInfo
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs a formatted message at LevelWarn
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs a formatted message at LevelError
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// logf is the single emission point for all levels
func (l *Logger) logf(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.output, "%s [%s] %s: %s\n", timestamp, level.ShortString(), l.name, message)
}
