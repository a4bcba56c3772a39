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

func (s sorter[E]) swap(i, j int) {
	s.x[i], s.x[j] = s.x[j], s.x[i]
}

// reverse reverses x[a:b].
func (s sorter[E]) reverse(a, b int) {
	for b--; a < b; a, b = a+1, b-1 {
		s.swap(a, b)
	}
}

// multiSwap swaps the n-element blocks starting at a and b, front to back.
func (s sorter[E]) multiSwap(a, b, n int) {
	for i := 0; i < n; i++ {
		s.swap(a+i, b+i)
	}
}

// multiSwapBW swaps the n-element blocks starting at a and b, back to front.
func (s sorter[E]) multiSwapBW(a, b, n int) {
	for i := n - 1; i >= 0; i-- {
		s.swap(a+i, b+i)
	}
}

// insertTo moves x[from] down to index to, shifting x[to:from] right by one.
func (s sorter[E]) insertTo(from, to int) {
	v := s.x[from]
	copy(s.x[to+1:from+1], s.x[to:from])
	s.x[to] = v
}

// insertToBW moves x[from] up to index to, shifting x[from+1:to+1] left by one.
func (s sorter[E]) insertToBW(from, to int) {
	v := s.x[from]
	copy(s.x[from:to], s.x[from+1:to+1])
	s.x[to] = v
}

// rotate exchanges the blocks x[a:m] and x[m:b] without auxiliary storage.
// The shorter block is swapped into place repeatedly; once either side is a
// single element the rest is a one-element shift.
func (s sorter[E]) rotate(a, m, b int) {
	for b-m > 1 && m-a > 1 {
		if b-m < m-a {
			s.multiSwap(a, m, b-m)
			a += b - m
		} else {
			s.multiSwapBW(a, b-(m-a), m-a)
			b -= m - a
		}
	}

	if b-m == 1 {
		s.insertTo(m, a)
	} else if m-a == 1 {
		s.insertToBW(a, b-1)
	}
}

// binarySearch returns the insertion point of v in the sorted range x[a:b].
// With left set it is the first index whose element is >= v, otherwise the
// first index whose element is > v.
func (s sorter[E]) binarySearch(a, b int, v E, left bool) int {
	for a < b {
		m := int(uint(a+b) >> 1)
		c := s.cmp(v, s.x[m])
		if c < 0 || (left && c == 0) {
			b = m
		} else {
			a = m + 1
		}
	}
	return a
}

// triSearch returns the first index in the sorted range x[a:b] whose element
// is > v, probing two points per step.
func (s sorter[E]) triSearch(a, b int, v E) int {
	for a < b {
		third := (b - a) / 3
		m1 := a + third
		if s.cmp(v, s.x[m1]) < 0 {
			b = m1
			continue
		}

		m2 := b - 1 - third
		if m2 <= m1 {
			a = m1 + 1
			continue
		}
		if s.cmp(v, s.x[m2]) < 0 {
			a, b = m1+1, m2
		} else {
			a = m2 + 1
		}
	}
	return a
}

// findMinMax scans the non-empty range x[a:b] once.
func (s sorter[E]) findMinMax(a, b int) minMax[E] {
	mm := minMax[E]{min: s.x[a], max: s.x[a]}
	for i := a + 1; i < b; i++ {
		if s.cmp(s.x[i], mm.min) < 0 {
			mm.min = s.x[i]
		} else if s.cmp(s.x[i], mm.max) > 0 {
			mm.max = s.x[i]
		}
	}
	return mm
}
