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
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort sorts x in ascending order with the adaptive unstable sort.
// It runs in O(n log n) worst case and O(n) on input that is already
// ascending or strictly descending.
func Sort[S ~[]E, E constraints.Ordered](x S) {
	SortFunc(x, cmp.Compare[E])
}

// SortFunc sorts x in ascending order as determined by cmp, which must
// define a total order. The sort is not stable.
func SortFunc[S ~[]E, E any](x S, cmp func(a, b E) int) {
	SortRangeFunc(x, 0, len(x), cmp)
}

// SortRange sorts x[a:b] like Sort, leaving the rest of x untouched.
func SortRange[S ~[]E, E constraints.Ordered](x S, a, b int) {
	SortRangeFunc(x, a, b, cmp.Compare[E])
}

// SortRangeFunc sorts x[a:b] like SortFunc, leaving the rest of x untouched.
func SortRangeFunc[S ~[]E, E any](x S, a, b int, cmp func(a, b E) int) {
	checkRange(len(x), a, b)
	if b-a < 2 {
		return
	}
	newSorter(x, cmp).quickSort(a, b, maxDepth(b-a), false)
}

// Stable sorts x in ascending order, keeping equal elements in their
// original order. It uses O(n log n) comparisons and allocates at most
// half of len(x) elements of scratch space per merge.
func Stable[S ~[]E, E constraints.Ordered](x S) {
	StableFunc(x, cmp.Compare[E])
}

// StableFunc is Stable ordered by cmp.
func StableFunc[S ~[]E, E any](x S, cmp func(a, b E) int) {
	StableRangeFunc(x, 0, len(x), cmp)
}

// StableRange stably sorts x[a:b], leaving the rest of x untouched.
func StableRange[S ~[]E, E constraints.Ordered](x S, a, b int) {
	StableRangeFunc(x, a, b, cmp.Compare[E])
}

// StableRangeFunc stably sorts x[a:b] ordered by cmp.
func StableRangeFunc[S ~[]E, E any](x S, a, b int, cmp func(a, b E) int) {
	checkRange(len(x), a, b)
	newSorter(x, cmp).stableSort(a, b)
}

// StaticSort sorts numeric x by distributing values into len(x) equal-width
// slots with an in-place permutation and sorting each slot locally.
// It is not stable. It is close to linear when values are spread roughly
// uniformly between the minimum and maximum, and degrades towards
// O(n log n) as values cluster into few slots.
//
// Slices holding NaN or infinite values are sorted with SortFunc instead.
func StaticSort[S ~[]E, E Number](x S) {
	StaticSortRangeFunc(x, 0, len(x), cmp.Compare[E])
}

// StaticSortFunc is StaticSort with the local slot sorts ordered by cmp.
// cmp must order values the same way as their numeric value does.
func StaticSortFunc[S ~[]E, E Number](x S, cmp func(a, b E) int) {
	StaticSortRangeFunc(x, 0, len(x), cmp)
}

// StaticSortRange sorts x[a:b] like StaticSort.
func StaticSortRange[S ~[]E, E Number](x S, a, b int) {
	StaticSortRangeFunc(x, a, b, cmp.Compare[E])
}

// StaticSortRangeFunc sorts x[a:b] like StaticSortFunc.
func StaticSortRangeFunc[S ~[]E, E Number](x S, a, b int, cmp func(a, b E) int) {
	checkRange(len(x), a, b)
	staticSort(newSorter(x, cmp), a, b)
}

// FeatureSort sorts numeric x stably by distributing values into len(x)
// equal-width buckets, stably sorting each bucket and concatenating them
// in order. It allocates scratch space for every element.
//
// Slices holding NaN or infinite values are sorted with StableFunc instead.
func FeatureSort[S ~[]E, E Number](x S) {
	FeatureSortRangeFunc(x, 0, len(x), cmp.Compare[E])
}

// FeatureSortFunc is FeatureSort with buckets ordered by cmp.
// cmp must order values the same way as their numeric value does.
func FeatureSortFunc[S ~[]E, E Number](x S, cmp func(a, b E) int) {
	FeatureSortRangeFunc(x, 0, len(x), cmp)
}

// FeatureSortRange stably sorts x[a:b] like FeatureSort.
func FeatureSortRange[S ~[]E, E Number](x S, a, b int) {
	FeatureSortRangeFunc(x, a, b, cmp.Compare[E])
}

// FeatureSortRangeFunc stably sorts x[a:b] like FeatureSortFunc.
func FeatureSortRangeFunc[S ~[]E, E Number](x S, a, b int, cmp func(a, b E) int) {
	checkRange(len(x), a, b)
	featureSort(newSorter(x, cmp), a, b)
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[S ~[]E, E constraints.Ordered](x S) bool {
	return IsSortedFunc(x, cmp.Compare[E])
}

// IsSortedFunc reports whether x is sorted in ascending order as determined
// by cmp.
func IsSortedFunc[S ~[]E, E any](x S, cmp func(a, b E) int) bool {
	for i := 1; i < len(x); i++ {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

func checkRange(n, a, b int) {
	if a < 0 || b < a || b > n {
		panic(fmt.Sprintf("ths: invalid range [%d:%d) for length %d", a, b, n))
	}
}
