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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-psimd/go-psimd/psimd"
	"github.com/go-psimd/go-psimd/psimd/contrib/mandelbrot"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the host vector target and the preferred pack widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "host target:      %s (%d bytes)\n", psimd.HostName(), psimd.HostWidth())
			if psimd.NoSimdEnv() {
				fmt.Fprintln(out, "                  forced by PSIMD_NO_SIMD")
			}
			widths := lo.Map(psimd.SupportedWidths(), func(n int, _ int) string { return fmt.Sprint(n) })
			fmt.Fprintf(out, "pack widths:      %s (default %d)\n", strings.Join(widths, ", "), psimd.NumLanes[psimd.DefaultWidth]())
			fmt.Fprintf(out, "preferred lanes:  float32=%d float64=%d int32=%d int8=%d\n",
				psimd.PreferredLanes[float32](), psimd.PreferredLanes[float64](),
				psimd.PreferredLanes[int32](), psimd.PreferredLanes[int8]())

			pool := newPool(0)
			defer pool.Close()
			names := lo.Map(mandelbrot.Backends(pool), func(b mandelbrot.Backend, _ int) string { return b.Name })
			fmt.Fprintf(out, "backends:         %s\n", strings.Join(names, " "))
			fmt.Fprintf(out, "auto backend:     %s\n", mandelbrot.AutoName(pool))
			return nil
		},
	}
}
