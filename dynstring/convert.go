// File: convert.go
// Title: Integer Conversion Operations
// Description: Implements the custom base-10 integer-to-string and
//              string-to-integer conversions of the DynString core. The
//              formatting path computes the exact digit count up front so
//              the buffer is allocated once at its final size.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with SetInt and Int

package dynstring

import (
	"math"

	dserror "github.com/msto63/dynstr/core/error"
)

// digitCount returns the number of characters needed to format n in base 10.
// One leading slot is reserved whenever n <= 0: for negatives it holds the
// sign, for zero it holds the single '0' digit.
func digitCount(n int) int {
	count := 0
	if n <= 0 {
		count++
	}
	for n != 0 {
		n /= 10
		count++
	}
	return count
}

// SetInt sets the content of s to the base-10 textual form of n. The buffer
// is resized to the exact digit count and filled from the least significant
// digit backwards. Negative values get a leading '-'.
func (s *DynString) SetInt(n int) error {
	if s == nil {
		return dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.SetInt")
	}

	if err := s.resize(digitCount(n)); err != nil {
		return err
	}

	i := s.length - 1
	if n == 0 {
		s.chars[i] = '0'
		return nil
	}

	// Accumulate in negative space so the minimum int value survives the
	// magnitude loop without overflowing.
	neg := n < 0
	m := n
	if !neg {
		m = -m
	}
	for m != 0 {
		s.chars[i] = byte('0' - m%10)
		m /= 10
		i--
	}
	if neg {
		s.chars[i] = '-'
	}
	return nil
}

// Int parses the content of s as a base-10 signed integer. Leading ASCII
// whitespace is skipped and a single leading sign is accepted; parsing stops
// at the first non-digit. It is an error when no digit was consumed or when
// the value leaves the native int range.
func (s *DynString) Int() (int, error) {
	if s == nil {
		return 0, dserror.New("instance must not be nil").
			WithCode(dserror.CodeNilInstance).
			WithOperation("dynstring.Int")
	}

	i := 0
	for i < s.length && isASCIISpace(s.chars[i]) {
		i++
	}

	neg := false
	if i < s.length && (s.chars[i] == '+' || s.chars[i] == '-') {
		neg = s.chars[i] == '-'
		i++
	}

	// Accumulate in negative space; the positive range is one smaller than
	// the negative one.
	value := 0
	digits := 0
	for ; i < s.length; i++ {
		c := s.chars[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if value < (math.MinInt+d)/10 {
			return 0, dserror.New("value exceeds the native integer range").
				WithCode(dserror.CodeValueOutOfRange).
				WithOperation("dynstring.Int")
		}
		value = value*10 - d
		digits++
	}

	if digits == 0 {
		return 0, dserror.New("no parseable digits").
			WithCode(dserror.CodeNoDigits).
			WithOperation("dynstring.Int").
			WithDetail("content", s.String())
	}

	if !neg {
		if value == math.MinInt {
			return 0, dserror.New("value exceeds the native integer range").
				WithCode(dserror.CodeValueOutOfRange).
				WithOperation("dynstring.Int")
		}
		value = -value
	}
	return value, nil
}

// isASCIISpace reports whether c is an ASCII whitespace byte
func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
