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

// Package imageio turns grids of iteration counts into images and writes
// them as PPM, PNG, BMP or TIFF.
//
// Pixels are colored the way the psimd fractal demo always has: red, green
// and blue are the low three bytes of the little-endian count, and the image
// is flipped so row 0 of the grid is the bottom row of the picture.
package imageio

import "fmt"

// Counts is a row-major width x height grid of iteration counts.
type Counts struct {
	data   []int32
	width  int
	height int
}

// NewCounts wraps data as a width x height grid. data must hold exactly
// width*height values.
func NewCounts(data []int32, width, height int) (*Counts, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("imageio: negative size %dx%d", width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("imageio: %d counts for a %dx%d grid", len(data), width, height)
	}
	return &Counts{data: data, width: width, height: height}, nil
}

// Width returns the grid width in pixels.
func (c *Counts) Width() int {
	return c.width
}

// Height returns the grid height in pixels.
func (c *Counts) Height() int {
	return c.height
}

// Row returns row y of the grid, or nil when y is out of range.
func (c *Counts) Row(y int) []int32 {
	if y < 0 || y >= c.height {
		return nil
	}
	return c.data[y*c.width : (y+1)*c.width]
}
