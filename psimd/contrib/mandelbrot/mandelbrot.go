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

// Package mandelbrot renders the Mandelbrot set with the pack engine and
// with a plain scalar loop. The scalar loop is the oracle: every pack
// renderer produces bit-identical iteration counts.
package mandelbrot

import "fmt"

// Func renders the region [x0, x1) x [y0, y1) into a width x height grid of
// escape iteration counts, row-major, capped at maxIters. output must hold
// at least width*height elements.
type Func func(x0, y0, x1, y1 float32, width, height, maxIters int, output []int32)

// Standard frame used by the command line and the equivalence tests.
const (
	DefaultWidth    = 1200
	DefaultHeight   = 800
	DefaultMaxIters = 256
	DefaultX0       = -2
	DefaultY0       = -1
	DefaultX1       = 1
	DefaultY1       = 1
)

func checkOutput(width, height int, output []int32) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("mandelbrot: negative size %dx%d", width, height))
	}
	if len(output) < width*height {
		panic(fmt.Sprintf("mandelbrot: output holds %d pixels, need %d", len(output), width*height))
	}
}

// step returns the pixel pitch along one axis.
func step(lo, hi float32, n int) float32 {
	return (hi - lo) / float32(n)
}

// escape iterates z = z*z + c from z = c and returns the first iteration at
// which |z|^2 > 4, or maxIters. Each product is rounded explicitly so the
// compiler cannot fuse it into the following add; the pack renderers round
// after every operation and the two must agree bit for bit.
func escape(cRe, cIm float32, maxIters int) int32 {
	zRe, zIm := cRe, cIm
	var i int
	for i = 0; i < maxIters; i++ {
		re2 := float32(zRe * zRe)
		im2 := float32(zIm * zIm)
		if re2+im2 > 4 {
			break
		}
		newRe := re2 - im2
		newIm := float32(float32(2*zRe) * zIm)
		zRe = cRe + newRe
		zIm = cIm + newIm
	}
	return int32(i)
}

// Scalar renders one pixel at a time. It is the reference all other
// renderers are checked against.
func Scalar(x0, y0, x1, y1 float32, width, height, maxIters int, output []int32) {
	checkOutput(width, height, output)
	dx := step(x0, x1, width)
	dy := step(y0, y1, height)

	for j := range height {
		y := y0 + float32(float32(j)*dy)
		row := output[j*width : (j+1)*width]
		for i := range row {
			x := x0 + float32(float32(i)*dx)
			row[i] = escape(x, y, maxIters)
		}
	}
}
