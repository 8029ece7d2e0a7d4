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
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-psimd/go-psimd/internal/imageio"
	"github.com/go-psimd/go-psimd/psimd/contrib/mandelbrot"
)

func newRenderCmd() *cobra.Command {
	var (
		frame   mandelbrot.Frame
		backend string
		workers int
		out     string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the Mandelbrot set to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFrame(frame); err != nil {
				return err
			}
			if _, err := imageio.FormatFromPath(out); err != nil {
				return err
			}
			pool := newPool(workers)
			defer pool.Close()

			b, err := mandelbrot.Lookup(backend, pool)
			if err != nil {
				return err
			}
			pixels, elapsed := b.Run(frame, nil)

			counts, err := imageio.NewCounts(pixels, frame.Width, frame.Height)
			if err != nil {
				return err
			}
			if err := imageio.WriteFile(out, counts, pool); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			slog.Info("wrote image", slog.String("path", out), slog.String("backend", b.Name),
				slog.Int("workers", pool.NumWorkers()))
			printer.Fprintf(cmd.OutOrStdout(), "rendered %d pixels with %s in %v, wrote %s\n",
				frame.Pixels(), b.Name, elapsed.Round(time.Microsecond), out)
			return nil
		},
	}
	frameFlags(cmd.Flags(), &frame)
	cmd.Flags().StringVar(&backend, "backend", "auto",
		"renderer: scalar, pack1..pack16, parallel-pack4..parallel-pack16 or auto")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines for parallel backends (0 = GOMAXPROCS)")
	exts := lo.Map(imageio.Formats(), func(f imageio.Format, _ int) string { return "." + string(f) })
	cmd.Flags().StringVarP(&out, "out", "o", "mandelbrot.ppm",
		"output file; format from extension ("+strings.Join(exts, " ")+", .tif)")
	return cmd
}
