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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := Load[DefaultWidth](src)
	if diff := cmp.Diff(src[:8], v.Slice()); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	dst := make([]float32, 8)
	Store(v, dst)
	if diff := cmp.Diff(src[:8], dst); diff != "" {
		t.Errorf("Store mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadStoreShort(t *testing.T) {
	err := expectRangePanic(t, func() { Load[W8](make([]int32, 7)) })
	if err.Op != "Load" || err.Len != 7 {
		t.Errorf("Load: got %+v", err)
	}
	expectRangePanic(t, func() { Store(Zero[W4, int32](), make([]int32, 3)) })
}

func TestStoreMaskedKeepsInactive(t *testing.T) {
	const sentinel = -99
	dst := []int32{sentinel, sentinel, sentinel, sentinel}
	m := MaskOf[W4](true, false, true, false)
	StoreMasked(FromValues[W4](int32(1), 2, 3, 4), dst, m)

	want := []int32{1, sentinel, 3, sentinel}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("StoreMasked mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskedShortSlice(t *testing.T) {
	// The last partial tile of a row: three active lanes, three elements.
	src := []int32{10, 20, 30}
	m := TailMask[W8](3)
	v := LoadMasked(m, src)
	if diff := cmp.Diff([]int32{10, 20, 30, 0, 0, 0, 0, 0}, v.Slice()); diff != "" {
		t.Errorf("LoadMasked mismatch (-want +got):\n%s", diff)
	}

	dst := make([]int32, 3)
	StoreMasked(v, dst, m)
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("StoreMasked mismatch (-want +got):\n%s", diff)
	}

	// An active lane past the end of the slice is a violation.
	expectRangePanic(t, func() { LoadMasked(TailMask[W8](4), src) })
	expectRangePanic(t, func() { StoreMasked(v, dst, TailMask[W8](4)) })

	// An empty mask touches nothing, even on an empty slice.
	_ = LoadMasked(Mask[W8]{}, []int32(nil))
	StoreMasked(v, []int32(nil), Mask[W8]{})
}

func TestGatherIdentity(t *testing.T) {
	src := []float64{0.5, 1.5, 2.5, 3.5}
	v := Gather(src, Iota[W4, int32]())
	if v != Load[W4](src) {
		t.Errorf("Gather with identity offsets: got %v, want %v", v, Load[W4](src))
	}
}

func TestGatherPermuted(t *testing.T) {
	src := []int32{100, 101, 102, 103, 104, 105}
	offsets := FromValues[W4](uint8(5), 0, 5, 2)
	v := Gather(src, offsets)

	want := []int32{105, 100, 105, 102}
	if diff := cmp.Diff(want, v.Slice()); diff != "" {
		t.Errorf("Gather mismatch (-want +got):\n%s", diff)
	}

	expectRangePanic(t, func() { Gather(src, FromValues[W4](int64(0), 1, 6, 2)) })
	expectRangePanic(t, func() { Gather(src, FromValues[W4](int64(0), -1, 1, 2)) })
}

func TestGatherMasked(t *testing.T) {
	src := []int32{7, 8, 9}
	// The inactive lane's offset is out of range and must be ignored.
	offsets := FromValues[W4](int32(2), 1000, 0, 1)
	v := GatherMasked(src, offsets, MaskOf[W4](true, false, true, true))

	if diff := cmp.Diff([]int32{9, 0, 7, 8}, v.Slice()); diff != "" {
		t.Errorf("GatherMasked mismatch (-want +got):\n%s", diff)
	}
}

func TestScatterIdentity(t *testing.T) {
	v := FromValues[W4](0.5, 1.5, 2.5, 3.5)
	got := make([]float64, 6)
	Scatter(v, got, Iota[W4, int32]())
	want := make([]float64, 6)
	Store(v, want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scatter with identity offsets (-Store +Scatter):\n%s", diff)
	}
}

func TestScatterPermuted(t *testing.T) {
	dst := make([]int32, 6)
	offsets := FromValues[W4](int32(4), 0, 3, 1)
	Scatter(FromValues[W4](int32(1), 2, 3, 4), dst, offsets)

	want := []int32{2, 4, 0, 3, 1, 0}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("Scatter mismatch (-want +got):\n%s", diff)
	}

	// Gather inverts Scatter for distinct offsets.
	if back := Gather(dst, offsets); back != FromValues[W4](int32(1), 2, 3, 4) {
		t.Errorf("Gather after Scatter: got %v", back)
	}
}

func TestScatterChecksBeforeWriting(t *testing.T) {
	dst := []int32{0, 0, 0}
	offsets := FromValues[W4](int32(0), 1, 2, 3)
	expectRangePanic(t, func() { Scatter(Set[W4](int32(9)), dst, offsets) })

	if diff := cmp.Diff([]int32{0, 0, 0}, dst); diff != "" {
		t.Errorf("destination written before the failed check (-want +got):\n%s", diff)
	}
}

func TestScatterMasked(t *testing.T) {
	dst := []int32{-1, -1, -1}
	offsets := FromValues[W4](int32(2), 50, 0, 50)
	ScatterMasked(FromValues[W4](int32(1), 2, 3, 4), dst, offsets, MaskOf[W4](true, false, true, false))

	if diff := cmp.Diff([]int32{3, -1, 1}, dst); diff != "" {
		t.Errorf("ScatterMasked mismatch (-want +got):\n%s", diff)
	}
}
