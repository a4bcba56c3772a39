// Copyright 2026 The go-thsort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestRunVisitsEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	hits := make([]atomic.Int32, n)
	pool.Run(n, func(i int) {
		hits[i].Add(1)
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestChunksCoverDisjointRanges(t *testing.T) {
	for _, n := range []int{1, 3, 7, 100, 1001} {
		pool := New(4)

		covered := make([]atomic.Int32, n)
		pool.Chunks(n, func(start, end int) {
			if start >= end {
				t.Errorf("n=%d: empty chunk [%d, %d)", n, start, end)
			}
			for i := start; i < end; i++ {
				covered[i].Add(1)
			}
		})
		pool.Close()

		for i := range covered {
			if got := covered[i].Load(); got != 1 {
				t.Errorf("n=%d: index %d covered %d times, want 1", n, i, got)
			}
		}
	}
}

func TestZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.Run(0, func(int) { called = true })
	pool.Chunks(0, func(int, int) { called = true })

	if called {
		t.Error("Run/Chunks with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestRunAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	var count atomic.Int32
	pool.Run(10, func(int) { count.Add(1) })

	if count.Load() != 10 {
		t.Errorf("count = %d, want 10 (inline fallback)", count.Load())
	}
}
