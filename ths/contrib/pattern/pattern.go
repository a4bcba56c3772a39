// Copyright 2026 The go-thsort Authors. SPDX-License-Identifier: Apache-2.0

// Package pattern generates named integer input distributions for exercising
// sorts: random data plus the orderings that defeat naive quicksorts.
//
// Usage:
//
//	rng := rand.New(rand.NewSource(1))
//	data, err := pattern.Generate("organ-pipe", rng, 1000)
package pattern

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/samber/lo"
)

// ErrUnknown is returned by Generate for a name with no generator.
var ErrUnknown = errors.New("unknown pattern")

// Generator returns a fresh slice of n ints. Generators that do not use
// randomness ignore rng.
type Generator func(rng *rand.Rand, n int) []int

var generators = map[string]Generator{
	"random":      random,
	"uniform1000": uniform1000,
	"ascending":   ascending,
	"descending":  descending,
	"equal":       equal,
	"few-unique":  fewUnique,
	"organ-pipe":  organPipe,
	"sawtooth":    sawtooth,
	"push-front":  pushFront,
	"killer":      medianOfThreeKiller,
}

// Names returns the registered pattern names in lexical order.
func Names() []string {
	names := lo.Keys(generators)
	slices.Sort(names)
	return names
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, bool) {
	g, ok := generators[name]
	return g, ok
}

// Generate builds n elements of the named pattern.
func Generate(name string, rng *rand.Rand, n int) ([]int, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("pattern %q: %w", name, ErrUnknown)
	}
	if n < 0 {
		return nil, fmt.Errorf("pattern %q: negative length %d", name, n)
	}
	return g(rng, n), nil
}

func random(rng *rand.Rand, n int) []int {
	return lo.Times(n, func(int) int { return rng.Int() })
}

// uniform1000 draws from [0, 1000), so large inputs hold many duplicates.
func uniform1000(rng *rand.Rand, n int) []int {
	return lo.Times(n, func(int) int { return rng.Intn(1000) })
}

func ascending(_ *rand.Rand, n int) []int {
	return lo.Times(n, func(i int) int { return i })
}

func descending(_ *rand.Rand, n int) []int {
	return lo.Times(n, func(i int) int { return n - i })
}

func equal(_ *rand.Rand, n int) []int {
	return lo.Times(n, func(int) int { return 7 })
}

func fewUnique(rng *rand.Rand, n int) []int {
	return lo.Times(n, func(int) int { return rng.Intn(4) })
}

// organPipe rises to the middle and falls back: 0 1 2 .. k .. 2 1 0.
func organPipe(_ *rand.Rand, n int) []int {
	return lo.Times(n, func(i int) int { return min(i, n-1-i) })
}

func sawtooth(_ *rand.Rand, n int) []int {
	tooth := max(n/8, 1)
	return lo.Times(n, func(i int) int { return i % tooth })
}

// pushFront is ascending except that the largest value comes first, so the
// run check fails on the first comparison.
func pushFront(_ *rand.Rand, n int) []int {
	return lo.Times(n, func(i int) int {
		if i == 0 {
			return n
		}
		return i
	})
}

// medianOfThreeKiller is Musser's sequence that drives median-of-three
// quicksort towards quadratic time.
func medianOfThreeKiller(_ *rand.Rand, n int) []int {
	x := make([]int, n)
	k := n / 2
	for i := 1; i <= k; i++ {
		if i%2 == 1 {
			x[i-1] = i
			x[i] = k + i
		}
		x[k+i-1] = 2 * i
	}
	if n%2 == 1 {
		x[n-1] = n
	}
	return x
}
