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
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-psimd/go-psimd/psimd/contrib/mandelbrot"
	"github.com/go-psimd/go-psimd/psimd/contrib/workerpool"
)

const logLevelEnv = "PSIMD_LOG_LEVEL"

// printer formats counts with digit grouping.
var printer = message.NewPrinter(language.English)

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "psimd",
		Short:         "Pack engine Mandelbrot renderer, verifier and benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("log-level") {
				if env := os.Getenv(logLevelEnv); env != "" {
					logLevel = env
				}
			}
			logger, err := newLogger(cmd, logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			mandelbrot.SetLogger(logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error); default from "+logLevelEnv)

	root.AddCommand(newInfoCmd(), newRenderCmd(), newVerifyCmd(), newBenchCmd())
	return root
}

func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: l})), nil
}

// frameFlags binds the render geometry flags shared by render, verify and
// bench.
func frameFlags(fs *pflag.FlagSet, f *mandelbrot.Frame) {
	*f = mandelbrot.DefaultFrame()
	fs.Float32Var(&f.X0, "x0", f.X0, "left edge of the region")
	fs.Float32Var(&f.Y0, "y0", f.Y0, "bottom edge of the region")
	fs.Float32Var(&f.X1, "x1", f.X1, "right edge of the region")
	fs.Float32Var(&f.Y1, "y1", f.Y1, "top edge of the region")
	fs.IntVar(&f.Width, "width", f.Width, "image width in pixels")
	fs.IntVar(&f.Height, "height", f.Height, "image height in pixels")
	fs.IntVar(&f.MaxIters, "iters", f.MaxIters, "maximum iterations per pixel")
}

func checkFrame(f mandelbrot.Frame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", f.Width, f.Height)
	}
	if f.MaxIters < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", f.MaxIters)
	}
	return nil
}

// newPool starts a pool of n workers, GOMAXPROCS when n <= 0.
func newPool(n int) *workerpool.Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return workerpool.New(n)
}
