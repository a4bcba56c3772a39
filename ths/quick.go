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

import "math/bits"

// Thresholds for the unstable sort.
const (
	// insertionThreshold: ranges this size or smaller finish with insertion sort.
	insertionThreshold = 16

	// shellThreshold: badly partitioned ranges this size or smaller are
	// handed to shell sort instead of being re-pivoted.
	shellThreshold = 80

	// imbalanceRatio: a partition whose sides differ by this factor or more
	// is treated as unbalanced.
	imbalanceRatio = 16
)

// medianOfSixteenNetwork is Green's 60-comparator sorting network over the
// 1-based sample positions 1..16, as index pairs. After it runs, sample 8
// holds the lower median.
var medianOfSixteenNetwork = [...]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	1, 3, 5, 7, 9, 11, 13, 15, 2, 4, 6, 8, 10, 12, 14, 16,
	1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16,
	1, 9, 2, 10, 3, 11, 4, 12, 5, 13, 6, 14, 7, 15, 8, 16,
	6, 11, 7, 10, 4, 13, 14, 15, 8, 12, 2, 3, 5, 9,
	2, 5, 8, 14, 3, 9, 12, 15, 6, 7, 10, 11,
	3, 5, 12, 14, 4, 9, 8, 13,
	7, 9, 11, 13, 4, 6, 8, 10,
	4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
	7, 8, 9, 10,
}

// maxDepth returns the recursion budget floor(2*log2(n)), computed exactly
// as floor(log2(n*n)) on the 128-bit square.
func maxDepth(n int) int {
	if n < 2 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(n), uint64(n))
	if hi != 0 {
		return 64 + bits.Len64(hi) - 1
	}
	return bits.Len64(lo) - 1
}

// compSwap orders x[i] and x[j].
func (s sorter[E]) compSwap(i, j int) {
	if s.cmp(s.x[i], s.x[j]) > 0 {
		s.swap(i, j)
	}
}

// medianOfThree moves the median of the first, middle and last elements of
// x[a:b] to x[a].
func (s sorter[E]) medianOfThree(a, b int) {
	b--
	m := a + (b-a)/2

	s.compSwap(a, m)
	if s.cmp(s.x[m], s.x[b]) > 0 {
		s.swap(m, b)
		if s.cmp(s.x[a], s.x[m]) > 0 {
			return
		}
	}
	s.swap(a, m)
}

// medianOfSixteen samples 16 evenly spaced elements of x[a:b], which must
// hold at least 17, and moves their median to x[a].
func (s sorter[E]) medianOfSixteen(a, b int) {
	g := (b - 1 - a) / 16
	for i := 0; i < len(medianOfSixteenNetwork); i += 2 {
		s.compSwap(a+medianOfSixteenNetwork[i]*g, a+medianOfSixteenNetwork[i+1]*g)
	}
	s.swap(a, a+8*g)
}

// partition splits x[a:b] around the pivot x[a] using Hoare's scheme and
// returns the pivot's final index p: x[a:p] <= pivot <= x[p+1:b].
func (s sorter[E]) partition(a, b int) int {
	pivot := s.x[a]
	i, j := a, b
	for {
		i++
		for i < b && s.cmp(s.x[i], pivot) < 0 {
			i++
		}
		j--
		for j > a && s.cmp(s.x[j], pivot) > 0 {
			j--
		}
		if i >= j {
			break
		}
		s.swap(i, j)
	}
	s.swap(a, j)
	return j
}

// sortedRun reports whether x[a:b] is already in order. A strictly
// descending range is reversed in place and also reported as sorted.
func (s sorter[E]) sortedRun(a, b int) bool {
	asc, desc := true, true
	for i := a; i < b-1; i++ {
		if s.cmp(s.x[i], s.x[i+1]) > 0 {
			asc = false
		} else {
			desc = false
		}
		if !asc && !desc {
			return false
		}
	}

	if desc && !asc {
		s.reverse(a, b)
		return true
	}
	return asc
}

// skewed reports whether partition sides of length l and r are unbalanced.
func skewed(l, r int) bool {
	return l == 0 || r == 0 || l/r >= imbalanceRatio || r/l >= imbalanceRatio
}

// quickSort sorts x[a:b]. depth is the remaining recursion budget before
// heapsort takes over. unbalanced marks a range split off a skewed
// partition: it skips median-of-three and goes straight to the
// median-of-sixteen pivot.
func (s sorter[E]) quickSort(a, b, depth int, unbalanced bool) {
	for b-a > insertionThreshold {
		if s.sortedRun(a, b) {
			return
		}
		if depth == 0 {
			s.heapSort(a, b)
			return
		}

		var p int
		repivot := unbalanced
		if !unbalanced {
			s.medianOfThree(a, b)
			p = s.partition(a, b)
			repivot = skewed(p-a, b-p-1)
		}

		if repivot {
			if b-a <= shellThreshold {
				s.shellSort(a, b)
				return
			}

			// Sort the short side on its own, then pivot the long
			// side again with a better sample.
			if !unbalanced {
				if p-a < b-p-1 {
					s.quickSort(a, p, depth-1, true)
					a = p + 1
				} else {
					s.quickSort(p+1, b, depth-1, true)
					b = p
				}
			}
			s.medianOfSixteen(a, b)
			p = s.partition(a, b)
			unbalanced = false
		}

		depth--
		if p-a < b-p-1 {
			s.quickSort(a, p, depth, false)
			a = p + 1
		} else {
			s.quickSort(p+1, b, depth, false)
			b = p
		}
	}

	if b-a > 1 {
		s.insertionSortUnchecked(a, b)
	}
}
