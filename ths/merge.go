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

// inPlaceMergeLimit: merges whose shorter side has at most this many
// elements rotate in place instead of allocating a buffer.
const inPlaceMergeLimit = 8

// merge merges the adjacent sorted runs x[a:m] and x[m:b]. Equal elements
// keep left-run-first order.
func (s sorter[E]) merge(a, m, b int) {
	if a >= m || m >= b {
		return
	}
	if s.mergeBounds(a, m, b) {
		return
	}

	// Skip the prefix of the left run and the suffix of the right run that
	// are already in their final place.
	b = s.binarySearch(m, b, s.x[m-1], true)
	a = s.binarySearch(a, m-1, s.x[m], false)

	if b-m < m-a {
		if b-m <= inPlaceMergeLimit {
			s.mergeInPlace(a, m, b)
		} else {
			s.mergeDown(a, m, b)
		}
	} else {
		if m-a <= inPlaceMergeLimit {
			s.mergeInPlace(a, m, b)
		} else {
			s.mergeUp(a, m, b)
		}
	}
}

// mergeBounds handles runs that do not interleave: already in order, or
// every left element greater than every right element.
func (s sorter[E]) mergeBounds(a, m, b int) bool {
	if s.cmp(s.x[m-1], s.x[m]) <= 0 {
		return true
	}
	if s.cmp(s.x[a], s.x[b-1]) > 0 {
		s.rotate(a, m, b)
		return true
	}
	return false
}

// mergeInPlace merges by rotating each displaced block of the longer run
// into place. Cost is dominated by rotations, so the shorter run must be
// small.
func (s sorter[E]) mergeInPlace(a, m, b int) {
	if m-a <= b-m {
		i, j := a, m
		for i < j && j < b {
			if s.cmp(s.x[i], s.x[j]) > 0 {
				k := s.binarySearch(j, b, s.x[i], true)
				s.rotate(i, j, k)
				i += k - j
				j = k
			} else {
				i++
			}
		}
		return
	}

	i, j := m-1, b-1
	for j > i && i >= a {
		if s.cmp(s.x[i], s.x[j]) > 0 {
			k := s.binarySearch(a, i, s.x[j], false)
			s.rotate(k, i+1, j+1)
			j -= i + 1 - k
			i = k - 1
		} else {
			j--
		}
	}
}

// mergeUp copies the left run aside and merges front to back.
func (s sorter[E]) mergeUp(a, m, b int) {
	buf := make([]E, m-a)
	copy(buf, s.x[a:m])

	i, j, k := 0, m, a
	for i < len(buf) && j < b {
		if s.cmp(buf[i], s.x[j]) <= 0 {
			s.x[k] = buf[i]
			i++
		} else {
			s.x[k] = s.x[j]
			j++
		}
		k++
	}
	copy(s.x[k:], buf[i:])
}

// mergeDown copies the right run aside and merges back to front.
func (s sorter[E]) mergeDown(a, m, b int) {
	buf := make([]E, b-m)
	copy(buf, s.x[m:b])

	i, j, k := m-1, len(buf)-1, b-1
	for i >= a && j >= 0 {
		if s.cmp(s.x[i], buf[j]) > 0 {
			s.x[k] = s.x[i]
			i--
		} else {
			s.x[k] = buf[j]
			j--
		}
		k--
	}
	copy(s.x[a:k+1], buf[:j+1])
}
