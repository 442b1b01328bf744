// File: compare.go
// Title: Comparison, Equality, and Sorting Operations
// Description: Implements three-way comparison with shorter-prefix semantics,
//              comparator-driven custom comparison, equality wrappers, and
//              in-place sorting of DynString handle slices.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with compare and sort

package dynstring

import (
	"bytes"
	"slices"

	dserror "github.com/msto63/dynstr/core/error"
)

// Comparator compares two single bytes and returns a negative, zero, or
// positive value when a orders before, equal to, or after b. Custom
// comparison and sorting delegate the per-position decision to it; the
// length tiebreak always stays with the library.
type Comparator func(a, b byte) int

// Compare performs a three-way comparison of a and b by byte value.
// The overlapping prefix decides first; when the prefixes are equal, the
// longer string is the bigger one. The result is normalized to -1, 0, or 1.
// Comparing an absent instance is an error.
func Compare(a, b *DynString) (int, error) {
	if a == nil || b == nil {
		return 0, dserror.New("instances must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.Compare")
	}

	n := a.length
	if b.length < n {
		n = b.length
	}
	if c := bytes.Compare(a.chars[:n], b.chars[:n]); c != 0 {
		return c, nil
	}
	switch {
	case a.length > b.length:
		return 1, nil
	case a.length < b.length:
		return -1, nil
	default:
		return 0, nil
	}
}

// CompareFunc compares a and b position by position using cmp, up to the
// shorter length, then falls back to the same length tiebreak as Compare.
// The comparator receives the single byte at the current position from each
// string. The result is normalized to -1, 0, or 1.
func CompareFunc(a, b *DynString, cmp Comparator) (int, error) {
	if a == nil || b == nil {
		return 0, dserror.New("instances must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.CompareFunc")
	}
	if cmp == nil {
		return 0, dserror.New("comparator must not be nil").
			WithCode(dserror.CodeNilArgument).
			WithOperation("dynstring.CompareFunc")
	}

	n := a.length
	if b.length < n {
		n = b.length
	}
	for i := 0; i < n; i++ {
		c := cmp(a.chars[i], b.chars[i])
		if c > 0 {
			return 1, nil
		}
		if c < 0 {
			return -1, nil
		}
	}
	switch {
	case a.length > b.length:
		return 1, nil
	case a.length < b.length:
		return -1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether a and b hold exactly the same bytes. Comparing an
// absent instance is an error.
func Equal(a, b *DynString) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// EqualFunc reports whether a and b are equal under the given comparator.
func EqualFunc(a, b *DynString, cmp Comparator) (bool, error) {
	c, err := CompareFunc(a, b, cmp)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Sort sorts the handles in place using the default byte-value ordering.
// The sort is not stable. A nil slice is a no-op; nil handles order before
// all live instances.
func Sort(strs []*DynString) {
	if strs == nil {
		return
	}
	slices.SortFunc(strs, func(a, b *DynString) int {
		return orderHandles(a, b, nil)
	})
}

// SortFunc sorts the handles in place using a custom comparator. The sort is
// not stable. A nil slice or nil comparator is a no-op; nil handles order
// before all live instances.
func SortFunc(strs []*DynString, cmp Comparator) {
	if strs == nil || cmp == nil {
		return
	}
	slices.SortFunc(strs, func(a, b *DynString) int {
		return orderHandles(a, b, cmp)
	})
}

// orderHandles produces a total order over handles: nil handles first, live
// instances by Compare or CompareFunc. Neither can fail once nils are
// handled here.
func orderHandles(a, b *DynString, cmp Comparator) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	var c int
	if cmp == nil {
		c, _ = Compare(a, b)
	} else {
		c, _ = CompareFunc(a, b, cmp)
	}
	return c
}
