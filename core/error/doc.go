// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured, code-classified errors for
//              the dynstr library while remaining fully compatible with Go's
//              standard error handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial package documentation

// Package error provides structured error handling for the dynstr library.
//
// Overview
//
// The package defines an Error type that carries a message, an optional
// cause, a classification Code, and optional metadata. It implements the
// standard error interface and supports errors.Is/errors.As unwrapping, so
// callers can treat dynstr errors like any other Go error while still being
// able to branch on the failure class.
//
// The Code taxonomy mirrors the failure families of the string core:
//
//   - argument errors: nil instances, nil predicates or comparators,
//     aliased concatenation targets, malformed input
//   - conversion errors: no parseable digits, values outside the native
//     integer range
//   - resource errors: allocation and I/O failures
//
// Usage
//
//	err := dserror.New("instance must not be nil").
//	    WithCode(dserror.CodeNilInstance).
//	    WithOperation("dynstring.Compare")
//
//	if dserror.HasCode(err, dserror.CodeNilInstance) {
//	    // handle absent instance
//	}
//
// Wrapping preserves the code of the inner error:
//
//	if err := s.SetInt(n); err != nil {
//	    return dserror.Wrap(err, "formatting failed")
//	}
//
// Thread Safety
//
// Error values are not safe for concurrent mutation through the With*
// builders; build an error completely before sharing it. Reading a finished
// error from multiple goroutines is safe.
//
// The package name shadows the predeclared error identifier, therefore it is
// conventionally imported with an alias:
//
//	import dserror "github.com/msto63/dynstr/core/error"
//
package error
