// Copyright 2026 go-thsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ths

import (
	"math/rand"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

// sortedRuns returns two independently sorted runs of length m and n-m,
// tagged with their position so stability is observable.
func sortedRuns(rng *rand.Rand, n, m, keys int) []tagged {
	x := make([]int, n)
	for i := range x {
		x[i] = rng.Intn(keys)
	}
	slices.Sort(x[:m])
	slices.Sort(x[m:])
	return tag(x)
}

// mergeVariants lists every merge routine. Each must produce exactly the
// stable merge of its two runs.
var mergeVariants = []struct {
	name  string
	merge func(s sorter[tagged], a, m, b int)
}{
	{"merge", sorter[tagged].merge},
	{"mergeInPlace", func(s sorter[tagged], a, m, b int) {
		if a < m && m < b {
			s.mergeInPlace(a, m, b)
		}
	}},
	{"mergeUp", func(s sorter[tagged], a, m, b int) {
		if a < m && m < b {
			s.mergeUp(a, m, b)
		}
	}},
	{"mergeDown", func(s sorter[tagged], a, m, b int) {
		if a < m && m < b {
			s.mergeDown(a, m, b)
		}
	}},
}

// TestMergeAllSplits merges every split point of every small length and
// compares against the standard library's stable sort.
func TestMergeAllSplits(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, mv := range mergeVariants {
		for _, keys := range []int{3, 1000} {
			for n := 0; n <= 70; n++ {
				for m := 0; m <= n; m++ {
					x := sortedRuns(rng, n, m, keys)
					want := slices.Clone(x)
					slices.SortStableFunc(want, byKey)

					mv.merge(newSorter(x, byKey), 0, m, n)

					if diff := gocmp.Diff(want, x); diff != "" {
						t.Fatalf("%s(n=%d, m=%d, keys=%d) mismatch (-want +got):\n%s", mv.name, n, m, keys, diff)
					}
				}
			}
		}
	}
}

// TestMergeAtOffset tests that merges respect the range they are given.
func TestMergeAtOffset(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for _, mv := range mergeVariants {
		runs := sortedRuns(rng, 40, 25, 10)
		x := append([]tagged{{Key: 99, Idx: -1}}, runs...)
		x = append(x, tagged{Key: -99, Idx: -2})

		mv.merge(newSorter(x, byKey), 1, 26, 41)

		want := slices.Clone(runs)
		slices.SortStableFunc(want, byKey)
		want = append([]tagged{{Key: 99, Idx: -1}}, want...)
		want = append(want, tagged{Key: -99, Idx: -2})
		if diff := gocmp.Diff(want, x); diff != "" {
			t.Errorf("%s at offset mismatch (-want +got):\n%s", mv.name, diff)
		}
	}
}

func TestMergeBounds(t *testing.T) {
	tests := []struct {
		name string
		x    []int
		m    int
		done bool
		want []int
	}{
		{"ordered", []int{1, 2, 3, 3, 4}, 3, true, []int{1, 2, 3, 3, 4}},
		{"swapped", []int{5, 6, 7, 1, 2}, 3, true, []int{1, 2, 5, 6, 7}},
		{"overlapping", []int{1, 4, 7, 2, 8}, 3, false, []int{1, 4, 7, 2, 8}},
		// Equal ends are not swapped: the right run must stay after the left.
		{"equal ends", []int{3, 4, 1, 3}, 2, false, []int{3, 4, 1, 3}},
	}
	for _, tt := range tests {
		x := slices.Clone(tt.x)
		if got := intSorter(x).mergeBounds(0, tt.m, len(x)); got != tt.done {
			t.Errorf("mergeBounds(%s) = %v, want %v", tt.name, got, tt.done)
		}
		if diff := gocmp.Diff(tt.want, x); diff != "" {
			t.Errorf("mergeBounds(%s) mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

// TestMergeComparisons tests that ordered runs cost a single comparison.
func TestMergeComparisons(t *testing.T) {
	x := seq(1000)
	calls := 0
	s := newSorter(x, func(a, b int) int {
		calls++
		return a - b
	})
	s.merge(0, 500, 1000)
	if calls != 1 {
		t.Errorf("merge(ordered runs) made %d comparisons, want 1", calls)
	}
}
