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

import "math/bits"

// This file provides coherent (contiguous) and incoherent (gather/scatter)
// memory operations between packs and slices.
//
// Every address an operation touches is bounds-checked and a violation
// panics with a *RangeError. Masked operations only check and touch active
// lanes, so the last partial tile of a buffer can be handled with a mask
// and a slice shorter than the pack.

func checkIndex(op string, idx, n int) {
	if uint(idx) >= uint(n) {
		panic(&RangeError{Op: op, Index: idx, Len: n})
	}
}

// offsetIndex converts an offset lane to an int. Offsets that do not fit
// an int are reported as -1 so checkIndex rejects them.
func offsetIndex[I Integers](off I) int {
	idx := int(off)
	if I(idx) != off {
		return -1
	}
	return idx
}

// Load reads NumLanes[W]() contiguous values: lane i = src[i].
func Load[W Width, T Lanes](src []T) Pack[T, W] {
	n := NumLanes[W]()
	if len(src) < n {
		panic(&RangeError{Op: "Load", Index: n - 1, Len: len(src)})
	}
	var p Pack[T, W]
	copy(p.lanes[:n], src[:n])
	return p
}

// LoadMasked reads src[i] into lane i for the lanes active in m.
// Inactive lanes are zero and their addresses are not read.
func LoadMasked[W Width, T Lanes](m Mask[W], src []T) Pack[T, W] {
	var p Pack[T, W]
	if m.bits == 0 {
		return p
	}
	checkIndex("LoadMasked", lastActive(m), len(src))
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			p.lanes[i] = src[i]
		}
	}
	return p
}

// Gather loads elements from non-contiguous locations: lane i = src[offsets[i]].
// Offsets need not be contiguous, monotonic, or distinct.
func Gather[T Lanes, I Integers, W Width](src []T, offsets Pack[I, W]) Pack[T, W] {
	var p Pack[T, W]
	for i := range NumLanes[W]() {
		idx := offsetIndex(offsets.lanes[i])
		checkIndex("Gather", idx, len(src))
		p.lanes[i] = src[idx]
	}
	return p
}

// GatherMasked is Gather restricted to the lanes active in m.
// Inactive lanes are zero and their offsets are ignored.
func GatherMasked[T Lanes, I Integers, W Width](src []T, offsets Pack[I, W], m Mask[W]) Pack[T, W] {
	var p Pack[T, W]
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			idx := offsetIndex(offsets.lanes[i])
			checkIndex("GatherMasked", idx, len(src))
			p.lanes[i] = src[idx]
		}
	}
	return p
}

// Store writes every lane contiguously: dst[i] = lane i.
func Store[T Lanes, W Width](p Pack[T, W], dst []T) {
	n := NumLanes[W]()
	if len(dst) < n {
		panic(&RangeError{Op: "Store", Index: n - 1, Len: len(dst)})
	}
	copy(dst[:n], p.lanes[:n])
}

// StoreMasked writes lane i to dst[i] for the lanes active in m.
// Destination elements of inactive lanes keep their values.
func StoreMasked[T Lanes, W Width](p Pack[T, W], dst []T, m Mask[W]) {
	if m.bits == 0 {
		return
	}
	checkIndex("StoreMasked", lastActive(m), len(dst))
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			dst[i] = p.lanes[i]
		}
	}
}

// Scatter writes lane i to dst[offsets[i]]. When two offsets collide the
// higher lane is written last; callers should not rely on that order.
// All offsets are checked before the first write.
func Scatter[T Lanes, I Integers, W Width](p Pack[T, W], dst []T, offsets Pack[I, W]) {
	ScatterMasked(p, dst, offsets, MaskAll[W]())
}

// ScatterMasked is Scatter restricted to the lanes active in m.
func ScatterMasked[T Lanes, I Integers, W Width](p Pack[T, W], dst []T, offsets Pack[I, W], m Mask[W]) {
	var idx [MaxWidth]int
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			idx[i] = offsetIndex(offsets.lanes[i])
			checkIndex("Scatter", idx[i], len(dst))
		}
	}
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			dst[idx[i]] = p.lanes[i]
		}
	}
}

// lastActive returns the highest active lane of a non-empty mask.
func lastActive[W Width](m Mask[W]) int {
	return 63 - bits.LeadingZeros64(m.bits)
}
