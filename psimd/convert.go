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

import "math"

// Convert converts every lane to U with Go conversion rules
// (floats to integers truncate toward zero; out-of-range results are
// implementation-defined).
//
//	x := psimd.Convert[float32](psimd.Iota[psimd.W8, int32]())
func Convert[U Lanes, T Lanes, W Width](p Pack[T, W]) Pack[U, W] {
	var r Pack[U, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = U(p.lanes[i])
	}
	return r
}

// ToMask interprets a pack as a mask: nonzero lanes are active.
func ToMask[T Lanes, W Width](p Pack[T, W]) Mask[W] {
	var m Mask[W]
	for i := range NumLanes[W]() {
		if p.lanes[i] != 0 {
			m.bits |= 1 << i
		}
	}
	return m
}

// FromMask converts a mask to a pack with 1 in active lanes and 0 elsewhere.
func FromMask[T Lanes, W Width](m Mask[W]) Pack[T, W] {
	var p Pack[T, W]
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			p.lanes[i] = 1
		}
	}
	return p
}

// Float32Bits reinterprets float32 lanes as their IEEE 754 bit patterns.
func Float32Bits[W Width](v Pack[float32, W]) Pack[uint32, W] {
	var r Pack[uint32, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = math.Float32bits(v.lanes[i])
	}
	return r
}

// Float32FromBits is the inverse of Float32Bits.
func Float32FromBits[W Width](v Pack[uint32, W]) Pack[float32, W] {
	var r Pack[float32, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = math.Float32frombits(v.lanes[i])
	}
	return r
}

// Float64Bits reinterprets float64 lanes as their IEEE 754 bit patterns.
func Float64Bits[W Width](v Pack[float64, W]) Pack[uint64, W] {
	var r Pack[uint64, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = math.Float64bits(v.lanes[i])
	}
	return r
}

// Float64FromBits is the inverse of Float64Bits.
func Float64FromBits[W Width](v Pack[uint64, W]) Pack[float64, W] {
	var r Pack[float64, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = math.Float64frombits(v.lanes[i])
	}
	return r
}
