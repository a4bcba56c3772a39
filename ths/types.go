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

import "golang.org/x/exp/constraints"

// Number is a constraint for the element types accepted by the distribution
// sorts. Values must be convertible to float64 so they can be scaled into
// slots.
type Number interface {
	constraints.Integer | constraints.Float
}

// minMax is the smallest and largest element of a range.
type minMax[E any] struct {
	min E
	max E
}

// sorter carries the slice and comparator shared by every routine.
// All methods address x by explicit half-open ranges [a, b).
type sorter[E any] struct {
	x   []E
	cmp func(a, b E) int
}

func newSorter[E any](x []E, cmp func(a, b E) int) sorter[E] {
	return sorter[E]{x: x, cmp: cmp}
}
