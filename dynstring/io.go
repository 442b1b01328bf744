// File: io.go
// Title: Stream Export Operations
// Description: Implements writing a DynString's content to an output stream.
//              The writer's lifetime stays with the caller; the write never
//              closes the stream.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with WriteTo

package dynstring

import (
	"io"

	dserror "github.com/msto63/dynstr/core/error"
)

// WriteTo writes the content of s to w and returns the number of bytes
// written. It implements io.WriterTo. The stream is left open: closing it is
// the caller's responsibility, never a side effect of a write.
func (s *DynString) WriteTo(w io.Writer) (int64, error) {
	if s == nil {
		return 0, dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.WriteTo")
	}
	if w == nil {
		return 0, dserror.New("writer must not be nil").
			WithCode(dserror.CodeNilArgument).
			WithOperation("dynstring.WriteTo")
	}

	n, err := w.Write(s.chars)
	if err != nil {
		return int64(n), dserror.Wrap(err, "writing string content").
			WithCode(dserror.CodeIOError).
			WithOperation("dynstring.WriteTo")
	}
	return int64(n), nil
}
