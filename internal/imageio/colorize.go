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

package imageio

import (
	"image"

	"github.com/go-psimd/go-psimd/psimd"
	"github.com/go-psimd/go-psimd/psimd/contrib/workerpool"
)

type lanes = psimd.W8

// channels splits a row of counts into its low three bytes, eight pixels at
// a time.
func channels(row []int32, r, g, b []uint8) {
	split := func(off, n int, v psimd.Pack[int32, lanes]) {
		rv := psimd.AndScalar(v, 0xff)
		gv := psimd.AndScalar(psimd.ShiftRightScalar(v, 8), 0xff)
		bv := psimd.AndScalar(psimd.ShiftRightScalar(v, 16), 0xff)
		for k := range n {
			r[off+k] = uint8(rv.Lane(k))
			g[off+k] = uint8(gv.Lane(k))
			b[off+k] = uint8(bv.Lane(k))
		}
	}
	psimd.ProcessWithTail[lanes](len(row),
		func(off int) {
			split(off, psimd.NumLanes[lanes](), psimd.Load[lanes](row[off:]))
		},
		func(off, count int) {
			split(off, count, psimd.LoadMasked(psimd.TailMask[lanes](count), row[off:]))
		},
	)
}

// Colorize converts counts to an opaque RGBA image, bottom row first. Rows
// are split across pool in contiguous ranges; a nil pool converts them on the
// calling goroutine.
func Colorize(c *Counts, pool *workerpool.Pool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	rows := func(start, end int) {
		r := make([]uint8, c.width)
		g := make([]uint8, c.width)
		b := make([]uint8, c.width)
		for y := start; y < end; y++ {
			channels(c.Row(c.height-1-y), r, g, b)
			pix := img.Pix[y*img.Stride : y*img.Stride+4*c.width]
			for x := range c.width {
				pix[4*x+0] = r[x]
				pix[4*x+1] = g[x]
				pix[4*x+2] = b[x]
				pix[4*x+3] = 0xff
			}
		}
	}
	if pool == nil {
		rows(0, c.height)
	} else {
		pool.ParallelFor(c.height, rows)
	}
	return img
}
