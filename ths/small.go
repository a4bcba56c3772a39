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

// shellGaps is the gap sequence for shellSort, largest first.
var shellGaps = [...]int{48, 21, 7, 3, 1}

// insertionSortUnchecked sorts the non-empty range x[a:b]. The running
// minimum is kept at x[a], so the inner loop needs no bounds check.
func (s sorter[E]) insertionSortUnchecked(a, b int) {
	for i := a + 1; i < b; i++ {
		if s.cmp(s.x[i], s.x[a]) < 0 {
			s.swap(i, a)
		}

		v := s.x[i]
		j := i - 1
		for s.cmp(v, s.x[j]) < 0 {
			s.x[j+1] = s.x[j]
			j--
		}
		s.x[j+1] = v
	}
}

// triInsertionSort is a stable insertion sort that finds each insertion
// point with triSearch, placing an element after any equal ones.
func (s sorter[E]) triInsertionSort(a, b int) {
	for i := a + 1; i < b; i++ {
		if s.cmp(s.x[i], s.x[i-1]) < 0 {
			s.insertTo(i, s.triSearch(a, i-1, s.x[i]))
		}
	}
}

// shellSort sorts x[a:b] with one gapped insertion pass per gap.
func (s sorter[E]) shellSort(a, b int) {
	for _, h := range shellGaps {
		for i := a + h; i < b; i++ {
			v := s.x[i]
			j := i
			for ; j >= a+h && s.cmp(s.x[j-h], v) > 0; j -= h {
				s.x[j] = s.x[j-h]
			}
			s.x[j] = v
		}
	}
}

// siftDown restores the max-heap rooted at node i of the n-node heap
// stored at x[a:a+n].
func (s sorter[E]) siftDown(a, i, n int) {
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if child+1 < n && s.cmp(s.x[a+child], s.x[a+child+1]) < 0 {
			child++
		}
		if s.cmp(s.x[a+i], s.x[a+child]) >= 0 {
			return
		}
		s.swap(a+i, a+child)
		i = child
	}
}

// heapify builds a max-heap over x[a:b].
func (s sorter[E]) heapify(a, b int) {
	n := b - a
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(a, i, n)
	}
}

// heapSort is heapsort for O(n log n) worst-case guarantee.
func (s sorter[E]) heapSort(a, b int) {
	s.heapify(a, b)
	for i := b - a - 1; i > 0; i-- {
		s.swap(a, a+i)
		s.siftDown(a, 0, i)
	}
}
