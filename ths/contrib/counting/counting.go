// Copyright 2026 The go-thsort Authors. SPDX-License-Identifier: Apache-2.0

// Package counting wraps three-way comparators so callers can measure how
// many comparisons a sort performs.
//
// Usage:
//
//	c := counting.New(cmp.Compare[int])
//	ths.SortFunc(data, c.Compare)
//	fmt.Println(c.Calls())
package counting

// Counter counts calls to a three-way comparator.
// It is not safe for concurrent use; give each goroutine its own Counter.
type Counter[E any] struct {
	cmp   func(a, b E) int
	calls int64
}

// New returns a Counter delegating to cmp.
func New[E any](cmp func(a, b E) int) *Counter[E] {
	return &Counter[E]{cmp: cmp}
}

// Compare calls the wrapped comparator and records the call.
// Pass the method value c.Compare wherever a comparator is expected.
func (c *Counter[E]) Compare(a, b E) int {
	c.calls++
	return c.cmp(a, b)
}

// Calls returns the number of comparisons since creation or the last Reset.
func (c *Counter[E]) Calls() int64 {
	return c.calls
}

// Reset zeroes the call count.
func (c *Counter[E]) Reset() {
	c.calls = 0
}
