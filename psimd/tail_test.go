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

package psimd

import "testing"

func TestTailMask(t *testing.T) {
	tests := []struct {
		count int
		want  uint64
	}{
		{-3, 0},
		{0, 0},
		{1, 0b1},
		{5, 0b11111},
		{8, 0xff},
		{20, 0xff},
	}
	for _, tt := range tests {
		if got := TailMask[W8](tt.count).Bits(); got != tt.want {
			t.Errorf("TailMask(%d): got %#x, want %#x", tt.count, got, tt.want)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	data := make([]float32, 19)
	for i := range data {
		data[i] = float32(i)
	}
	out := make([]float32, len(data))

	var full, tails int
	ProcessWithTail[W8](len(data),
		func(offset int) {
			full++
			Store(MulScalar(Load[W8](data[offset:]), 2), out[offset:])
		},
		func(offset, count int) {
			tails++
			if offset != 16 || count != 3 {
				t.Errorf("tail: got offset %d count %d, want 16 and 3", offset, count)
			}
			m := TailMask[W8](count)
			StoreMasked(MulScalar(LoadMasked(m, data[offset:]), 2), out[offset:], m)
		},
	)

	if full != 2 || tails != 1 {
		t.Errorf("got %d full packs and %d tails, want 2 and 1", full, tails)
	}
	for i, v := range out {
		if v != 2*float32(i) {
			t.Errorf("out[%d]: got %v, want %v", i, v, 2*float32(i))
		}
	}
}

func TestProcessWithTailExact(t *testing.T) {
	ProcessWithTail[W4](8, func(int) {}, func(int, int) {
		t.Error("tail called for an exact multiple")
	})
}

func TestAlignedSize(t *testing.T) {
	if got := AlignedSize[W8](17); got != 24 {
		t.Errorf("AlignedSize(17): got %d, want 24", got)
	}
	if got := AlignedSize[W8](16); got != 16 {
		t.Errorf("AlignedSize(16): got %d, want 16", got)
	}
	if !IsAligned[W4](12) || IsAligned[W4](13) {
		t.Error("IsAligned: wrong result for 12 or 13")
	}
}
