// File: doc.go
// Title: Package Documentation for dynstring
// Description: Package dynstring provides the DynString handle type, a
//              dynamically growable owned byte buffer with explicit length
//              tracking, exact-fit allocation, and a full set of mutation,
//              comparison, conversion, and sorting operations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial package documentation

// Package dynstring provides a dynamically growable byte-string abstraction.
//
// Overview
//
// The central type is DynString: an opaque handle owning a contiguous byte
// buffer together with an explicitly tracked logical length. The content is
// a raw byte sequence; the package has no Unicode or locale awareness, and
// comparison is pure byte-value ordering. Three invariants hold for every
// live instance:
//
//   - the backing store is valid even at length zero
//   - buffer and length are always mutated together, never independently
//   - the backing store is kept at exactly the logical length
//
// The exact-fit policy trades reallocation frequency for zero slack space.
// It is a deliberate storage contract, not a cache: callers that need
// amortized growth should batch their mutations.
//
// Key capabilities:
//
//   - lifecycle: New, Clone, Release with explicit ownership transfer
//   - mutation: SetBytes, SetString, Set, SetInt, Filter, Append, Concat
//   - comparison: Compare, CompareFunc, Equal, EqualFunc with shorter-prefix
//     semantics and a length tiebreak
//   - sorting: Sort, SortFunc over slices of handles, not stable
//   - conversion: custom base-10 SetInt/Int bounded to the native int range
//   - export: Bytes, String, and io.WriterTo support
//
// Usage
//
//	s := dynstring.New()
//	defer s.Release()
//
//	if err := s.SetString("Some String"); err != nil {
//	    return err
//	}
//
//	other := s.Clone()
//	defer other.Release()
//
//	c, err := dynstring.Compare(s, other) // 0, nil
//
// Sorting a collection of handles:
//
//	strs := []*dynstring.DynString{a, b, c}
//	dynstring.Sort(strs)
//
// Custom comparison delegates the per-position decision to a Comparator over
// single bytes; the length-based tiebreak always stays with the library:
//
//	caseFold := func(a, b byte) int {
//	    return int(a|0x20) - int(b|0x20)
//	}
//	c, err := dynstring.CompareFunc(s, other, caseFold)
//
// Error Handling
//
// All failures are reported as coded errors from the core/error package and
// are local and recoverable; the package never terminates the process.
// Invalid arguments (nil instances, nil predicates or comparators, aliased
// concatenation targets) are detected before any mutation takes place. The
// integer queries use in-band sentinels for absent instances: Len returns
// -1 and MemUsage returns 0 on a nil handle.
//
// A failed resize leaves the instance in an indeterminate but releasable
// state; callers must not rely on the previous content after a mutation
// error.
//
// Thread Safety
//
// DynString instances are not safe for concurrent use; callers synchronize
// access themselves. Instances never share storage, so distinct instances
// can be used from distinct goroutines without coordination.
//
// See Also
//
//   - Package core/error: coded error values returned by all operations
//
package dynstring
