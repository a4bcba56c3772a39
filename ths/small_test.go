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

// smallSorts lists the small-range sorts under test. Each must sort the
// range it is given and leave the padding around it alone.
var smallSorts = []struct {
	name string
	sort func(s sorter[int], a, b int)
}{
	{"insertionSortUnchecked", func(s sorter[int], a, b int) {
		if b > a {
			s.insertionSortUnchecked(a, b)
		}
	}},
	{"triInsertionSort", sorter[int].triInsertionSort},
	{"shellSort", sorter[int].shellSort},
	{"heapSort", sorter[int].heapSort},
}

// TestSmallSorts runs every small sort over every pattern and size.
func TestSmallSorts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 2, 3, 5, 16, 17, 47, 48, 49, 80, 81, 200}
	for _, ss := range smallSorts {
		for _, name := range []string{"random", "descending", "few-unique", "organ-pipe", "killer"} {
			for _, n := range sizes {
				body := mustGenerate(t, name, rng, n)
				x := append([]int{-100, 1 << 40}, body...)
				x = append(x, -200, 1<<41)

				ss.sort(intSorter(x), 2, 2+n)

				want := slices.Clone(body)
				slices.Sort(want)
				want = append([]int{-100, 1 << 40}, want...)
				want = append(want, -200, 1<<41)
				if diff := gocmp.Diff(want, x); diff != "" {
					t.Fatalf("%s(%s, n=%d) mismatch (-want +got):\n%s", ss.name, name, n, diff)
				}
			}
		}
	}
}

func TestHeapify(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := mustGenerate(t, "random", rng, 101)
	intSorter(x).heapify(0, len(x))

	for i := range x {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(x) && x[c] > x[i] {
				t.Fatalf("heap property violated: x[%d]=%d < x[%d]=%d", i, x[i], c, x[c])
			}
		}
	}
}

// TestTriInsertionSortStable tests that equal keys keep their order
func TestTriInsertionSortStable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{2, 9, 32, 64} {
		x := tag(mustGenerate(t, "few-unique", rng, n))
		newSorter(x, byKey).triInsertionSort(0, n)

		if !slices.IsSortedFunc(x, byKey) || !isStable(x) {
			t.Errorf("triInsertionSort(n=%d) not stably sorted: %v", n, x)
		}
	}
}
