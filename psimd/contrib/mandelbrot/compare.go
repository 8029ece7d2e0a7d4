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
	"fmt"
	"log/slog"
)

// Diff summarizes where two renders of the same frame disagree.
type Diff struct {
	// Count is the number of pixels that differ.
	Count int

	// First is the index of the first differing pixel, -1 if none.
	First int

	// Want and Got are the values at First.
	Want, Got int32
}

// Equal reports whether the renders matched.
func (d Diff) Equal() bool {
	return d.Count == 0
}

func (d Diff) String() string {
	if d.Equal() {
		return "identical"
	}
	return fmt.Sprintf("%d pixels differ, first at %d: want %d, got %d", d.Count, d.First, d.Want, d.Got)
}

// Compare diffs got against want pixel by pixel. Length differences count
// every missing or extra pixel as differing.
func Compare(want, got []int32) Diff {
	d := Diff{First: -1}
	n := min(len(want), len(got))
	for i := range n {
		if want[i] != got[i] {
			if d.First < 0 {
				d.First, d.Want, d.Got = i, want[i], got[i]
			}
			d.Count++
		}
	}
	if extra := max(len(want), len(got)) - n; extra > 0 {
		if d.First < 0 {
			d.First = n
		}
		d.Count += extra
	}
	return d
}

// Result is the outcome of checking one backend against the oracle.
type Result struct {
	Backend string
	Diff    Diff
}

// Verify renders f with every backend and compares each one to the scalar
// oracle. The first entry of backends must be the oracle.
func Verify(f Frame, backends []Backend) []Result {
	if len(backends) == 0 {
		return nil
	}
	want, _ := backends[0].Run(f, nil)
	got := make([]int32, f.Pixels())

	results := make([]Result, 0, len(backends)-1)
	for _, b := range backends[1:] {
		clear(got)
		b.Run(f, got)
		d := Compare(want, got)
		if !d.Equal() {
			Logger().Warn("backend disagrees with oracle",
				slog.String("backend", b.Name),
				slog.Int("pixels", d.Count),
				slog.Int("first", d.First))
		}
		results = append(results, Result{Backend: b.Name, Diff: d})
	}
	return results
}
