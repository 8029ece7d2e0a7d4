// Copyright 2025 go-psimd Authors
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
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-psimd/go-psimd/internal/bench"
	"github.com/go-psimd/go-psimd/psimd/contrib/mandelbrot"
)

type benchResult struct {
	backend mandelbrot.Backend
	stats   bench.Stats
}

func newBenchCmd() *cobra.Command {
	var (
		frame    mandelbrot.Frame
		workers  int
		samples  int
		budget   time.Duration
		backends []string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every backend and report the speedup over scalar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFrame(frame); err != nil {
				return err
			}
			pool := newPool(workers)
			defer pool.Close()

			selected := mandelbrot.Backends(pool)
			if len(backends) > 0 {
				selected = selected[:1]
				for _, name := range lo.Uniq(backends) {
					b, err := mandelbrot.Lookup(name, pool)
					if err != nil {
						return err
					}
					if b.Name != "scalar" {
						selected = append(selected, b)
					}
				}
			}

			out := cmd.OutOrStdout()
			printer.Fprintf(out, "benchmarking %d backends on %dx%d, %d iterations (results in ms)\n",
				len(selected), frame.Width, frame.Height, frame.MaxIters)

			buf := make([]int32, frame.Pixels())
			results := lo.Map(selected, func(b mandelbrot.Backend, _ int) benchResult {
				s := bench.Run(samples, budget, func() { b.Run(frame, buf) })
				fmt.Fprintf(out, "%-16s %s\n", b.Name, s)
				return benchResult{backend: b, stats: s}
			})

			scalar := results[0].stats
			fmt.Fprintln(out)
			for _, r := range results[1:] {
				fmt.Fprintf(out, "--> %s was %.2fx the speed of scalar\n", r.backend.Name, r.stats.Speedup(scalar))
			}
			if len(results) > 1 {
				fastest := lo.MinBy(results[1:], func(a, b benchResult) bool { return a.stats.Min < b.stats.Min })
				fmt.Fprintf(out, "fastest: %s\n", fastest.backend.Name)
			}
			return nil
		},
	}
	frameFlags(cmd.Flags(), &frame)
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines for parallel backends (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&samples, "samples", bench.DefaultSamples, "maximum timed runs per backend")
	cmd.Flags().DurationVar(&budget, "budget", bench.DefaultBudget, "time budget per backend")
	cmd.Flags().StringSliceVar(&backends, "backends", nil, "backends to time besides scalar (default all)")
	return cmd
}
