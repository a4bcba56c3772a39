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
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// summary is the mean cost of one algorithm across all trials.
type summary struct {
	name        string
	stable      bool
	elapsed     time.Duration
	comparisons int64
}

func summarize(algos []algorithm, results [][]measurement) []summary {
	out := make([]summary, len(algos))
	for i, algo := range algos {
		var elapsed time.Duration
		var comparisons int64
		for _, trial := range results {
			elapsed += trial[i].elapsed
			comparisons += trial[i].comparisons
		}
		trials := int64(max(len(results), 1))
		out[i] = summary{
			name:        algo.name,
			stable:      algo.stable,
			elapsed:     elapsed / time.Duration(trials),
			comparisons: comparisons / trials,
		}
	}
	return out
}

// writeReport prints one row per algorithm with digit grouping.
func writeReport(w io.Writer, n int, sums []summary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "n = %d\n", n)
	p.Fprintf(w, "%-10s %-7s %14s %16s %12s\n", "algorithm", "stable", "mean time", "comparisons", "cmp/elem")
	for _, s := range sums {
		perElem := 0.0
		if n > 0 {
			perElem = float64(s.comparisons) / float64(n)
		}
		p.Fprintf(w, "%-10s %-7t %14v %16d %12.2f\n", s.name, s.stable, s.elapsed, s.comparisons, perElem)
	}
}
