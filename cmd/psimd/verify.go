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
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-psimd/go-psimd/psimd/contrib/mandelbrot"
)

var errMismatch = errors.New("backends disagree with the scalar oracle")

func newVerifyCmd() *cobra.Command {
	var (
		frame   mandelbrot.Frame
		workers int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every pack backend against the scalar oracle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFrame(frame); err != nil {
				return err
			}
			pool := newPool(workers)
			defer pool.Close()

			results := mandelbrot.Verify(frame, mandelbrot.Backends(pool))
			out := cmd.OutOrStdout()
			printer.Fprintf(out, "frame %dx%d, %d iterations, %d pixels\n",
				frame.Width, frame.Height, frame.MaxIters, frame.Pixels())
			for _, r := range results {
				status := "ok"
				if !r.Diff.Equal() {
					status = "FAIL: " + r.Diff.String()
				}
				fmt.Fprintf(out, "%-16s %s\n", r.Backend, status)
			}

			failed := lo.Filter(results, func(r mandelbrot.Result, _ int) bool { return !r.Diff.Equal() })
			if len(failed) > 0 {
				names := lo.Map(failed, func(r mandelbrot.Result, _ int) string { return r.Backend })
				return fmt.Errorf("%w: %v", errMismatch, names)
			}
			return nil
		},
	}
	frameFlags(cmd.Flags(), &frame)
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines for parallel backends (0 = GOMAXPROCS)")
	return cmd
}
