// File: dynstring.go
// Title: Dynamic String Core Implementation
// Description: Implements the DynString handle type, an owned byte buffer
//              with explicit length tracking and an exact-fit allocation
//              policy, together with its lifecycle and mutation operations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with lifecycle and mutators

package dynstring

import (
	"unsafe"

	dserror "github.com/msto63/dynstr/core/error"
)

// DynString is an opaque handle owning a contiguous byte buffer and its
// logical length. The backing store is kept at exactly the logical length
// (no slack capacity); every mutation funnels through resize so that buffer
// and length are always updated as a pair.
type DynString struct {
	chars  []byte
	length int
}

// ===============================
// Lifecycle Operations
// ===============================

// New allocates a new empty DynString. The returned instance holds a valid
// zero-length backing store, so even an empty string has a live buffer.
func New() *DynString {
	return &DynString{chars: make([]byte, 0)}
}

// Release drops the instance's backing store. It is a no-op on a nil
// instance. A released instance must not be used afterwards; re-use is not
// detected.
func (s *DynString) Release() {
	if s == nil {
		return
	}
	s.chars = nil
	s.length = 0
}

// Clone allocates a new DynString with the same content as s. The copy is
// fully independent: mutating either instance never affects the other.
// Cloning a nil instance yields nil.
func (s *DynString) Clone() *DynString {
	if s == nil {
		return nil
	}
	clone := New()
	if err := clone.Set(s); err != nil {
		return nil
	}
	return clone
}

// ===============================
// Mutation Operations
// ===============================

// resize reallocates the backing store to exactly n bytes and updates the
// length. Content up to the smaller of the old and new lengths is
// preserved. All public mutators funnel through this primitive.
func (s *DynString) resize(n int) error {
	if s == nil {
		return dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.resize")
	}
	if n < 0 {
		return dserror.Newf("cannot resize to negative length %d", n).
			WithCode(dserror.CodeAllocationFailed).
			WithOperation("dynstring.resize")
	}

	next := make([]byte, n)
	copy(next, s.chars)
	s.chars = next
	s.length = n
	return nil
}

// SetBytes sets the content of s to a copy of b. A nil or empty slice is a
// valid, explicit zero-length input; Go slices carry their length, so no
// terminator validation applies.
func (s *DynString) SetBytes(b []byte) error {
	if s == nil {
		return dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.SetBytes")
	}

	if err := s.resize(len(b)); err != nil {
		return err
	}
	copy(s.chars, b)
	return nil
}

// SetString sets the content of s to the bytes of str.
func (s *DynString) SetString(str string) error {
	if s == nil {
		return dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.SetString")
	}

	if err := s.resize(len(str)); err != nil {
		return err
	}
	copy(s.chars, str)
	return nil
}

// Set sets the content of s to the content of other without affecting other.
// An empty source resets the receiver to the empty string.
func (s *DynString) Set(other *DynString) error {
	if s == nil {
		return dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.Set")
	}
	if other == nil {
		return dserror.New("source instance must not be nil").
			WithCode(dserror.CodeNilArgument).
			WithOperation("dynstring.Set")
	}

	if other.length == 0 {
		return s.resize(0)
	}
	if err := s.resize(other.length); err != nil {
		return err
	}
	copy(s.chars, other.chars)
	return nil
}

// Filter removes from s every byte for which keep returns false, preserving
// the order of the remaining bytes. The filtered content is built in a
// temporary instance sized by a counting pass, then adopted by the receiver.
// An empty instance is a no-op.
func (s *DynString) Filter(keep func(byte) bool) error {
	if s == nil {
		return dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.Filter")
	}
	if keep == nil {
		return dserror.New("predicate must not be nil").
			WithCode(dserror.CodeNilArgument).
			WithOperation("dynstring.Filter")
	}
	if s.length == 0 {
		return nil
	}

	kept := 0
	for _, c := range s.chars {
		if keep(c) {
			kept++
		}
	}

	filtered := New()
	if err := filtered.resize(kept); err != nil {
		return err
	}
	i := 0
	for _, c := range s.chars {
		if keep(c) {
			filtered.chars[i] = c
			i++
		}
	}

	// Adopt the temporary's buffer, then release its shell.
	s.chars = filtered.chars
	s.length = filtered.length
	filtered.Release()
	return nil
}

// Append appends a copy of src's content to s in place. The destination
// length is snapshotted before the resize and used as the copy offset, so
// self-append is well defined. An empty source is a no-op.
func (s *DynString) Append(src *DynString) error {
	if s == nil {
		return dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.Append")
	}
	if src == nil {
		return dserror.New("source instance must not be nil").
			WithCode(dserror.CodeNilArgument).
			WithOperation("dynstring.Append")
	}
	if src.length == 0 {
		return nil
	}

	// Snapshot both lengths before resizing; resize moves the buffer and,
	// on self-append, mutates src through the shared handle.
	destLen := s.length
	srcLen := src.length
	if err := s.resize(destLen + srcLen); err != nil {
		return err
	}
	copy(s.chars[destLen:], src.chars[:srcLen])
	return nil
}

// Concat writes the concatenation of a and b into result. The result must
// be a distinct, already-allocated instance; aliasing it with either source
// is rejected. Two empty sources explicitly produce an empty result.
func Concat(a, b, result *DynString) error {
	if a == nil || b == nil {
		return dserror.New("source instances must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.Concat")
	}
	if result == nil {
		return dserror.New("result instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.Concat")
	}
	if result == a || result == b {
		return dserror.New("result must not alias a source instance").
			WithCode(dserror.CodeAliasedResult).
			WithOperation("dynstring.Concat")
	}

	if a.length == 0 && b.length == 0 {
		return result.resize(0)
	}
	if err := result.resize(a.length + b.length); err != nil {
		return err
	}
	copy(result.chars, a.chars)
	copy(result.chars[a.length:], b.chars)
	return nil
}

// ===============================
// Introspection and Export
// ===============================

// Len returns the logical length of s in O(1). An absent (nil) instance
// yields the sentinel -1.
func (s *DynString) Len() int {
	if s == nil {
		return -1
	}
	return s.length
}

// MemUsage returns the storage footprint of s: the fixed struct overhead
// plus the byte count of the backing store. An absent instance uses no
// memory and yields 0.
func (s *DynString) MemUsage() int {
	if s == nil {
		return 0
	}
	return int(unsafe.Sizeof(DynString{})) + s.length
}

// Bytes returns an independent copy of the content. The caller owns the
// returned slice; mutating it never affects s. A nil instance yields nil.
// No terminator is appended: Go slices carry an explicit length.
func (s *DynString) Bytes() []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, s.length)
	copy(out, s.chars)
	return out
}

// String implements fmt.Stringer. A nil instance renders as the empty
// string.
func (s *DynString) String() string {
	if s == nil {
		return ""
	}
	return string(s.chars)
}
