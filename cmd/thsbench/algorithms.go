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

package main

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-thsort/ths"
)

var errUnknownAlgorithm = errors.New("unknown algorithm")

// algorithm is one sort the benchmark can run. Every sort takes the
// comparator so comparisons can be counted.
type algorithm struct {
	name   string
	stable bool
	sort   func(x []float64, cmp func(a, b float64) int)
}

var algorithms = []algorithm{
	{"sort", false, func(x []float64, c func(a, b float64) int) { ths.SortFunc(x, c) }},
	{"stable", true, func(x []float64, c func(a, b float64) int) { ths.StableFunc(x, c) }},
	{"static", false, func(x []float64, c func(a, b float64) int) { ths.StaticSortFunc(x, c) }},
	{"feature", true, func(x []float64, c func(a, b float64) int) { ths.FeatureSortFunc(x, c) }},
	{"std", false, func(x []float64, c func(a, b float64) int) { slices.SortFunc(x, c) }},
}

func algorithmNames() []string {
	return lo.Map(algorithms, func(a algorithm, _ int) string { return a.name })
}

// lookupAlgorithms resolves names in order, rejecting duplicates and
// unknown names.
func lookupAlgorithms(names []string) ([]algorithm, error) {
	if dup := lo.FindDuplicates(names); len(dup) > 0 {
		return nil, fmt.Errorf("algorithm %q listed twice", dup[0])
	}
	out := make([]algorithm, 0, len(names))
	for _, name := range names {
		algo, ok := lo.Find(algorithms, func(a algorithm) bool { return a.name == name })
		if !ok {
			return nil, fmt.Errorf("%w %q (have %v)", errUnknownAlgorithm, name, algorithmNames())
		}
		out = append(out, algo)
	}
	return out, nil
}

var (
	errUnsorted       = errors.New("result not sorted")
	errNotPermutation = errors.New("result is not a permutation of the input")
)

// verify checks that got is ordered and holds the same multiset as orig.
// NaNs order before every number, matching cmp.Compare.
func verify(got, orig []float64) error {
	if len(got) != len(orig) {
		return fmt.Errorf("%w: length %d, want %d", errNotPermutation, len(got), len(orig))
	}
	for i := 1; i < len(got); i++ {
		if cmp.Compare(got[i], got[i-1]) < 0 {
			return fmt.Errorf("%w: x[%d]=%v < x[%d]=%v", errUnsorted, i, got[i], i-1, got[i-1])
		}
	}

	want := slices.Clone(orig)
	slices.SortFunc(want, cmp.Compare[float64])
	for i := range want {
		if cmp.Compare(want[i], got[i]) != 0 {
			return fmt.Errorf("%w: x[%d]=%v, want %v", errNotPermutation, i, got[i], want[i])
		}
	}
	return nil
}
