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
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

var benchSizes = []int{100, 1000, 10000, 100000}

// Generate random data for benchmarks
func generateFloat64(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rand.Float64() * 1000
	}
	return data
}

func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(10000) - 5000
	}
	return data
}

func BenchmarkFloat64(b *testing.B) {
	algos := []struct {
		name string
		sort func([]float64)
	}{
		{"Sort", func(x []float64) { Sort(x) }},
		{"Stable", func(x []float64) { Stable(x) }},
		{"StaticSort", func(x []float64) { StaticSort(x) }},
		{"FeatureSort", func(x []float64) { FeatureSort(x) }},
		{"slices.Sort", func(x []float64) { slices.Sort(x) }},
	}
	for _, n := range benchSizes {
		ref := generateFloat64(n)
		data := make([]float64, n)
		for _, algo := range algos {
			b.Run(fmt.Sprintf("%s/%d", algo.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					algo.sort(data)
				}
			})
		}
	}
}

func BenchmarkInt64(b *testing.B) {
	algos := []struct {
		name string
		sort func([]int64)
	}{
		{"Sort", func(x []int64) { Sort(x) }},
		{"Stable", func(x []int64) { Stable(x) }},
		{"StaticSort", func(x []int64) { StaticSort(x) }},
		{"FeatureSort", func(x []int64) { FeatureSort(x) }},
		{"slices.Sort", func(x []int64) { slices.Sort(x) }},
	}
	for _, n := range benchSizes {
		ref := generateInt64(n)
		data := make([]int64, n)
		for _, algo := range algos {
			b.Run(fmt.Sprintf("%s/%d", algo.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					algo.sort(data)
				}
			})
		}
	}
}

// BenchmarkPatterns runs the comparison sorts over the structured inputs.
func BenchmarkPatterns(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	for _, name := range []string{"ascending", "descending", "few-unique", "organ-pipe", "killer"} {
		ref := mustGenerate(b, name, rng, n)
		data := make([]int, n)

		b.Run("Sort/"+name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				Sort(data)
			}
		})
		b.Run("Stable/"+name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				Stable(data)
			}
		})
	}
}
