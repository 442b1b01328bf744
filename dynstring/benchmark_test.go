// File: benchmark_test.go
// Title: Performance Benchmarks for Dynamic String Operations
// Description: Benchmarks for the DynString mutation, comparison, conversion,
//              and sorting paths. The exact-fit allocation policy makes the
//              mutator benchmarks allocation-heavy by design.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial benchmark implementation

package dynstring

import (
	"testing"
)

func BenchmarkSetString(b *testing.B) {
	s := New()
	defer s.Release()
	text := "a medium sized benchmark payload string"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.SetString(text)
	}
}

func BenchmarkAppend(b *testing.B) {
	src := New()
	defer src.Release()
	_ = src.SetString("chunk")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		dst := New()
		_ = dst.SetString("seed")
		b.StartTimer()

		_ = dst.Append(src)

		b.StopTimer()
		dst.Release()
		b.StartTimer()
	}
}

func BenchmarkCompare(b *testing.B) {
	x := New()
	defer x.Release()
	y := New()
	defer y.Release()
	_ = x.SetString("a common prefix with tail one")
	_ = y.SetString("a common prefix with tail two")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compare(x, y)
	}
}

func BenchmarkCompareFunc(b *testing.B) {
	x := New()
	defer x.Release()
	y := New()
	defer y.Release()
	_ = x.SetString("a common prefix with tail one")
	_ = y.SetString("a common prefix with tail two")
	cmp := func(a, c byte) int { return int(a) - int(c) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CompareFunc(x, y, cmp)
	}
}

func BenchmarkSetInt(b *testing.B) {
	s := New()
	defer s.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.SetInt(-123456789)
	}
}

func BenchmarkInt(b *testing.B) {
	s := New()
	defer s.Release()
	_ = s.SetString("-123456789")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Int()
	}
}

func BenchmarkFilter(b *testing.B) {
	keep := func(c byte) bool { return c >= 'a' && c <= 'm' }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := New()
		_ = s.SetString("the quick brown fox jumps over the lazy dog")
		b.StartTimer()

		_ = s.Filter(keep)

		b.StopTimer()
		s.Release()
		b.StartTimer()
	}
}

func BenchmarkSort(b *testing.B) {
	values := []string{"pear", "apple", "quince", "fig", "banana", "cherry", "date", "elder"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		strs := make([]*DynString, len(values))
		for j, v := range values {
			strs[j] = New()
			_ = strs[j].SetString(v)
		}
		b.StartTimer()

		Sort(strs)

		b.StopTimer()
		for _, s := range strs {
			s.Release()
		}
		b.StartTimer()
	}
}
