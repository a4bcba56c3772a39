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

// Thresholds for the stable sort.
const (
	// stableInsertionThreshold: ranges this size or smaller are insertion sorted.
	stableInsertionThreshold = 32

	// reversedRunLimit: strictly descending prefixes longer than this are
	// reversed up front.
	reversedRunLimit = 8
)

// reversedRun reverses the strictly descending prefix of x[a:b] when it is
// longer than limit. It reports whether that prefix was the whole range.
// A strictly descending run holds no equal elements, so reversing it keeps
// the sort stable.
func (s sorter[E]) reversedRun(a, b, limit int) bool {
	i := a
	for i < b-1 && s.cmp(s.x[i], s.x[i+1]) > 0 {
		i++
	}
	if i+1-a <= limit {
		return false
	}
	s.reverse(a, i+1)
	return i+1 == b
}

// stableSort sorts x[a:b] stably by top-down merge sort.
func (s sorter[E]) stableSort(a, b int) {
	if b-a < 2 {
		return
	}
	if s.reversedRun(a, b, reversedRunLimit) {
		return
	}
	if b-a <= stableInsertionThreshold {
		s.triInsertionSort(a, b)
		return
	}

	m := a + (b-a)/2
	s.stableSort(a, m)
	s.stableSort(m, b)
	s.merge(a, m, b)
}
