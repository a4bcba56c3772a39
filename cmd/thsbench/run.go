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
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/ajroetker/go-thsort/ths/contrib/counting"
	"github.com/ajroetker/go-thsort/ths/contrib/pattern"
	"github.com/ajroetker/go-thsort/ths/contrib/workerpool"
)

type runOptions struct {
	algos    []string
	pattern  string
	n        int
	trials   int
	seed     int64
	input    string
	format   string
	noVerify bool
}

// measurement is one algorithm's cost on one trial.
type measurement struct {
	elapsed     time.Duration
	comparisons int64
}

func newRunCmd(a *app) *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time the sorts over generated or file-supplied data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.algos, "algo", algorithmNames(), "Algorithms to run, repeatable")
	f.StringVar(&opts.pattern, "pattern", "random", "Input pattern (see 'thsbench patterns')")
	f.IntVarP(&opts.n, "n", "n", 100000, "Elements per trial")
	f.IntVar(&opts.trials, "trials", 5, "Number of trials")
	f.Int64Var(&opts.seed, "seed", 1, "Seed for generated input; trial i uses seed+i")
	f.StringVar(&opts.input, "input", "", "Read input from this file instead of generating it ('-' for stdin)")
	addFormatFlag(f, &opts.format)
	f.BoolVar(&opts.noVerify, "no-verify", envBool("THS_NO_VERIFY"), "Skip checking results")
	return cmd
}

func (a *app) run(cmd *cobra.Command, opts runOptions) error {
	algos, err := lookupAlgorithms(opts.algos)
	if err != nil {
		return err
	}
	if opts.trials <= 0 {
		return fmt.Errorf("--trials must be positive, got %d", opts.trials)
	}

	gen, err := a.inputSource(opts)
	if err != nil {
		return err
	}

	pool := workerpool.New(a.workers)
	defer pool.Close()

	a.log.Infow("starting run",
		"algorithms", opts.algos,
		"pattern", lo.Ternary(opts.input == "", opts.pattern, opts.input),
		"n", opts.n,
		"trials", opts.trials,
		"workers", pool.NumWorkers(),
		"goarch", runtime.GOARCH,
		"cpu", cpuFeatures(),
	)

	results := make([][]measurement, opts.trials)
	errs := make([]error, opts.trials)
	pool.Run(opts.trials, func(trial int) {
		orig := gen(trial)
		results[trial] = make([]measurement, len(algos))
		for i, algo := range algos {
			data := slices.Clone(orig)
			c := counting.New(cmp.Compare[float64])

			start := time.Now()
			algo.sort(data, c.Compare)
			m := measurement{elapsed: time.Since(start), comparisons: c.Calls()}
			results[trial][i] = m

			a.log.Debugw("trial done",
				"trial", trial, "algorithm", algo.name,
				"elapsed", m.elapsed, "comparisons", m.comparisons)

			if opts.noVerify {
				continue
			}
			if err := verify(data, orig); err != nil {
				errs[trial] = multierr.Append(errs[trial], fmt.Errorf("trial %d, %s: %w", trial, algo.name, err))
			}
		}
	})
	if err := multierr.Combine(errs...); err != nil {
		return err
	}

	n := opts.n
	if opts.input != "" {
		n = len(gen(0))
	}
	writeReport(cmd.OutOrStdout(), n, summarize(algos, results))
	return nil
}

// inputSource returns a function producing the input of each trial. File
// input is read once and shared; every trial sorts its own copy.
func (a *app) inputSource(opts runOptions) (func(trial int) []float64, error) {
	if opts.input != "" {
		x, err := readInputFile(opts.input, opts.format)
		if err != nil {
			return nil, err
		}
		a.log.Debugw("read input", "path", opts.input, "format", opts.format, "n", len(x))
		return func(int) []float64 { return x }, nil
	}

	g, ok := pattern.Lookup(opts.pattern)
	if !ok {
		return nil, fmt.Errorf("pattern %q: %w (have %v)", opts.pattern, pattern.ErrUnknown, pattern.Names())
	}
	if opts.n < 0 {
		return nil, fmt.Errorf("-n must not be negative, got %d", opts.n)
	}
	return func(trial int) []float64 {
		rng := rand.New(rand.NewSource(opts.seed + int64(trial)))
		return lo.Map(g(rng, opts.n), func(v int, _ int) float64 { return float64(v) })
	}, nil
}
