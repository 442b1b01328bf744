// File: example_test.go
// Title: Dynamic String Examples
// Description: Examples demonstrating practical usage of the DynString type
//              for mutation, filtering, comparison, conversion, and sorting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial example implementation

package dynstring_test

import (
	"fmt"
	"os"

	"github.com/msto63/dynstr/dynstring"
)

func ExampleNew() {
	s := dynstring.New()
	defer s.Release()

	fmt.Println(s.Len())
	// Output: 0
}

func ExampleDynString_SetString() {
	s := dynstring.New()
	defer s.Release()

	if err := s.SetString("Some String"); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s, s.Len())
	// Output: Some String 11
}

func ExampleDynString_SetInt() {
	s := dynstring.New()
	defer s.Release()

	if err := s.SetInt(-123456789); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output: -123456789
}

func ExampleDynString_Int() {
	s := dynstring.New()
	defer s.Release()

	_ = s.SetString("  -42 apples")
	n, err := s.Int()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output: -42
}

func ExampleDynString_Filter() {
	s := dynstring.New()
	defer s.Release()

	_ = s.SetString("abcz")
	_ = s.Filter(func(c byte) bool {
		return c > 'a' && c < 'g'
	})
	fmt.Println(s)
	// Output: bc
}

func ExampleDynString_Append() {
	dst := dynstring.New()
	defer dst.Release()
	src := dynstring.New()
	defer src.Release()

	_ = dst.SetString("Hey there")
	_ = src.SetString(" Delilah")
	_ = dst.Append(src)

	fmt.Println(dst)
	// Output: Hey there Delilah
}

func ExampleCompare() {
	a := dynstring.New()
	defer a.Release()
	b := dynstring.New()
	defer b.Release()

	_ = a.SetString("Some String")

	c, _ := dynstring.Compare(a, b)
	fmt.Println(c)
	// Output: 1
}

func ExampleSort() {
	values := []string{"bbc", "cds", "abc"}
	strs := make([]*dynstring.DynString, len(values))
	for i, v := range values {
		strs[i] = dynstring.New()
		defer strs[i].Release()
		_ = strs[i].SetString(v)
	}

	dynstring.Sort(strs)
	for _, s := range strs {
		fmt.Println(s)
	}
	// Output:
	// abc
	// bbc
	// cds
}

func ExampleSortFunc() {
	values := []string{"bbc", "cds", "abc"}
	strs := make([]*dynstring.DynString, len(values))
	for i, v := range values {
		strs[i] = dynstring.New()
		defer strs[i].Release()
		_ = strs[i].SetString(v)
	}

	// Descending byte-value order.
	dynstring.SortFunc(strs, func(a, b byte) int {
		return int(b) - int(a)
	})
	for _, s := range strs {
		fmt.Println(s)
	}
	// Output:
	// cds
	// bbc
	// abc
}

func ExampleDynString_WriteTo() {
	s := dynstring.New()
	defer s.Release()

	_ = s.SetString("written, stream left open\n")
	if _, err := s.WriteTo(os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output: written, stream left open
}
