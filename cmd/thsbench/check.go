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
	"bufio"
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-thsort/ths/contrib/pattern"
)

func newCheckCmd(a *app) *cobra.Command {
	var algo, format string
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Sort the numbers in FILE with one algorithm and print them",
		Long: "Sort the numbers in FILE ('-' for stdin) with one algorithm, verify\n" +
			"the result and print one value per line.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algos, err := lookupAlgorithms([]string{algo})
			if err != nil {
				return err
			}
			x, err := readInputFile(args[0], format)
			if err != nil {
				return err
			}
			orig := slices.Clone(x)

			algos[0].sort(x, cmp.Compare[float64])
			if err := verify(x, orig); err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			a.log.Debugw("checked", "algorithm", algo, "n", len(x))

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, v := range x {
				w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "sort", "Algorithm to use")
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the input patterns 'run' can generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range pattern.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
