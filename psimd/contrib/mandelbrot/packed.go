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
	"github.com/go-psimd/go-psimd/psimd"
	"github.com/go-psimd/go-psimd/psimd/contrib/workerpool"
)

// mandel iterates NumLanes[W]() pixels at once. A lane leaves the active
// set the first time its |z|^2 exceeds 4 and never rejoins it, which is the
// per-pixel break of the scalar loop. The escape test is the same > 4 as the
// scalar loop, so NaN lanes stay active there too.
func mandel[W psimd.Width](active psimd.Mask[W], cRe, cIm psimd.Pack[float32, W], maxIters int) psimd.Pack[int32, W] {
	zRe, zIm := cRe, cIm
	var count psimd.Pack[int32, W]

	for range maxIters {
		re2 := psimd.Mul(zRe, zRe)
		im2 := psimd.Mul(zIm, zIm)
		active = psimd.MaskAndNot(psimd.GreaterScalar(psimd.Add(re2, im2), 4), active)
		if psimd.None(active) {
			break
		}

		newRe := psimd.Sub(re2, im2)
		newIm := psimd.Mul(psimd.ScalarMul(2, zRe), zIm)
		zRe = psimd.Add(cRe, newRe)
		zIm = psimd.Add(cIm, newIm)

		count = psimd.Select(active, psimd.AddScalar(count, 1), count)
	}
	return count
}

// renderRow fills one output row. The last tile of a row is masked to the
// pixels that exist, so row only needs width elements.
func renderRow[W psimd.Width](x0, dx, y float32, maxIters int, row []int32) {
	n := psimd.NumLanes[W]()
	lane := psimd.Iota[W, float32]()
	cIm := psimd.Set[W](y)

	for i := 0; i < len(row); i += n {
		idx := psimd.AddScalar(lane, float32(i))
		cRe := psimd.ScalarAdd(x0, psimd.MulScalar(idx, dx))
		active := psimd.TailMask[W](len(row) - i)
		psimd.StoreMasked(mandel(active, cRe, cIm, maxIters), row[i:], active)
	}
}

// Packed renders NumLanes[W]() pixels at a time on the calling goroutine.
func Packed[W psimd.Width](x0, y0, x1, y1 float32, width, height, maxIters int, output []int32) {
	checkOutput(width, height, output)
	dx := step(x0, x1, width)
	dy := step(y0, y1, height)

	for j := range height {
		y := y0 + float32(float32(j)*dy)
		renderRow[W](x0, dx, y, maxIters, output[j*width:(j+1)*width])
	}
}

// Parallel returns a pack renderer that spreads rows over pool. Rows are
// claimed one at a time, and each writes a disjoint slice of output.
func Parallel[W psimd.Width](pool *workerpool.Pool) Func {
	return func(x0, y0, x1, y1 float32, width, height, maxIters int, output []int32) {
		checkOutput(width, height, output)
		dx := step(x0, x1, width)
		dy := step(y0, y1, height)

		pool.ParallelRows(height, func(j int) {
			y := y0 + float32(float32(j)*dy)
			renderRow[W](x0, dx, y, maxIters, output[j*width:(j+1)*width])
		})
	}
}
