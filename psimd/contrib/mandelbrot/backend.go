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

package mandelbrot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-psimd/go-psimd/psimd"
	"github.com/go-psimd/go-psimd/psimd/contrib/workerpool"
)

// ErrUnknownBackend is returned by Lookup for a name no backend answers to.
var ErrUnknownBackend = errors.New("mandelbrot: unknown backend")

// Backend is a named renderer.
type Backend struct {
	// Name is the registry key, for example "scalar", "pack8" or
	// "parallel-pack8".
	Name string

	// Lanes is the pack width, 1 for the scalar oracle.
	Lanes int

	// Parallel reports whether Render uses the worker pool.
	Parallel bool

	Render Func
}

// Frame is a render request: region, size and iteration cap.
type Frame struct {
	X0, Y0, X1, Y1 float32
	Width, Height  int
	MaxIters       int
}

// DefaultFrame returns the 1200x800 view of [-2, 1] x [-1, 1] at 256
// iterations.
func DefaultFrame() Frame {
	return Frame{
		X0: DefaultX0, Y0: DefaultY0, X1: DefaultX1, Y1: DefaultY1,
		Width: DefaultWidth, Height: DefaultHeight,
		MaxIters: DefaultMaxIters,
	}
}

// Pixels returns Width*Height.
func (f Frame) Pixels() int {
	return f.Width * f.Height
}

// Run renders f into output, allocating it when output is nil, and returns
// the buffer together with the elapsed time.
func (b Backend) Run(f Frame, output []int32) ([]int32, time.Duration) {
	if output == nil {
		output = make([]int32, f.Pixels())
	}
	start := time.Now()
	b.Render(f.X0, f.Y0, f.X1, f.Y1, f.Width, f.Height, f.MaxIters, output)
	elapsed := time.Since(start)

	Logger().Debug("rendered",
		slog.String("backend", b.Name),
		slog.Int("width", f.Width),
		slog.Int("height", f.Height),
		slog.Int("max_iters", f.MaxIters),
		slog.Duration("elapsed", elapsed))
	return output, elapsed
}

// Backends returns every renderer, the scalar oracle first. Parallel
// backends are included only when pool is non-nil.
func Backends(pool *workerpool.Pool) []Backend {
	bs := []Backend{
		{Name: "scalar", Lanes: 1, Render: Scalar},
		packed[psimd.W1](),
		packed[psimd.W2](),
		packed[psimd.W4](),
		packed[psimd.W8](),
		packed[psimd.W16](),
	}
	if pool != nil {
		bs = append(bs,
			parallel[psimd.W4](pool),
			parallel[psimd.W8](pool),
			parallel[psimd.W16](pool),
		)
	}
	return bs
}

func packed[W psimd.Width]() Backend {
	n := psimd.NumLanes[W]()
	return Backend{Name: fmt.Sprintf("pack%d", n), Lanes: n, Render: Packed[W]}
}

func parallel[W psimd.Width](pool *workerpool.Pool) Backend {
	n := psimd.NumLanes[W]()
	return Backend{
		Name:     fmt.Sprintf("parallel-pack%d", n),
		Lanes:    n,
		Parallel: true,
		Render:   Parallel[W](pool),
	}
}

// AutoName returns the backend "auto" resolves to: the pack width
// preferred for float32 on this host, parallel when a pool is available.
func AutoName(pool *workerpool.Pool) string {
	n := max(psimd.PreferredLanes[float32](), 4)
	if pool == nil {
		return fmt.Sprintf("pack%d", n)
	}
	return fmt.Sprintf("parallel-pack%d", n)
}

// Lookup finds a backend by name (case-insensitive). "auto" selects
// AutoName(pool). Asking for a parallel backend without a pool fails with
// ErrUnknownBackend.
func Lookup(name string, pool *workerpool.Pool) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "auto" {
		name = AutoName(pool)
	}
	for _, b := range Backends(pool) {
		if b.Name == name {
			return b, nil
		}
	}
	return Backend{}, fmt.Errorf("%w %q", ErrUnknownBackend, name)
}
