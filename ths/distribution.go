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

import "math"

// slotter maps values linearly onto n slots:
// slot(v) = floor((v - min) * n / (max - min + 1)).
type slotter[E Number] struct {
	min   float64
	scale float64
	n     int
}

// newSlotter reports false when the value spread is not finite (NaN or
// infinite elements), in which case no slot mapping exists.
func newSlotter[E Number](mm minMax[E], n int) (slotter[E], bool) {
	lo := float64(mm.min)
	spread := float64(mm.max) - lo
	if math.IsNaN(spread) || math.IsInf(spread, 0) {
		return slotter[E]{}, false
	}
	return slotter[E]{min: lo, scale: float64(n) / (spread + 1), n: n}, true
}

func (d slotter[E]) slot(v E) int {
	f := (float64(v) - d.min) * d.scale
	switch {
	case f <= 0:
		return 0
	case f >= float64(d.n):
		// Rounding at the top of a wide spread.
		return d.n - 1
	}
	return int(f)
}

// staticSort sorts x[a:b] by counting slot occupancy and permuting each
// element directly into its slot's next free position, following each
// displacement chain until it closes. Slots are then sorted locally since
// several values can share one.
func staticSort[E Number](s sorter[E], a, b int) {
	n := b - a
	if n < 2 {
		return
	}
	mm := s.findMinMax(a, b)
	if s.cmp(mm.min, mm.max) == 0 {
		return
	}
	sl, ok := newSlotter(mm, n)
	if !ok {
		s.quickSort(a, b, maxDepth(n), false)
		return
	}

	// end[k] is first the occupancy of slot k, then its exclusive end.
	next := make([]int, n)
	end := make([]int, n)
	for i := a; i < b; i++ {
		end[sl.slot(s.x[i])]++
	}
	pos := a
	for k := 0; k < n; k++ {
		next[k] = pos
		pos += end[k]
		end[k] = pos
	}

	for k := 0; k < n; k++ {
		for next[k] < end[k] {
			v := s.x[next[k]]
			for t := sl.slot(v); t != k; t = sl.slot(v) {
				v, s.x[next[t]] = s.x[next[t]], v
				next[t]++
			}
			s.x[next[k]] = v
			next[k]++
		}
	}

	start := a
	for k := 0; k < n; k++ {
		e := end[k]
		switch {
		case e-start > insertionThreshold:
			s.heapSort(start, e)
		case e-start > 1:
			s.insertionSortUnchecked(start, e)
		}
		start = e
	}
}

// featureSort distributes x[a:b] into one scratch bucket per slot, sorts
// each bucket with the stable merge sort and writes the buckets back in
// slot order. Nothing in x is overwritten until every bucket is filled.
func featureSort[E Number](s sorter[E], a, b int) {
	n := b - a
	if n < 2 {
		return
	}
	mm := s.findMinMax(a, b)
	if s.cmp(mm.min, mm.max) == 0 {
		return
	}
	sl, ok := newSlotter(mm, n)
	if !ok {
		s.stableSort(a, b)
		return
	}

	buckets := make([][]E, n)
	for i := a; i < b; i++ {
		k := sl.slot(s.x[i])
		buckets[k] = append(buckets[k], s.x[i])
	}

	pos := a
	for _, bucket := range buckets {
		newSorter(bucket, s.cmp).stableSort(0, len(bucket))
		pos += copy(s.x[pos:b], bucket)
	}
}
