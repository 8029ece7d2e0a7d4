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
	"math/bits"
	"unsafe"
)

// This file provides bitwise and shift operations for integer packs.
// Shift counts come from a lane of the same type; a negative count panics
// with a runtime error, a count at or beyond the lane size yields 0 (or -1
// for a right shift of a negative signed lane).

// And performs element-wise bitwise AND.
func And[T Integers, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] & b.lanes[i]
	}
	return r
}

// AndScalar computes a & s.
func AndScalar[T Integers, W Width](a Pack[T, W], s T) Pack[T, W] {
	return And(a, Set[W](s))
}

// ScalarAnd computes s & a.
func ScalarAnd[T Integers, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return And(Set[W](s), a)
}

// Or performs element-wise bitwise OR.
func Or[T Integers, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] | b.lanes[i]
	}
	return r
}

// OrScalar computes a | s.
func OrScalar[T Integers, W Width](a Pack[T, W], s T) Pack[T, W] {
	return Or(a, Set[W](s))
}

// ScalarOr computes s | a.
func ScalarOr[T Integers, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return Or(Set[W](s), a)
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] ^ b.lanes[i]
	}
	return r
}

// XorScalar computes a ^ s.
func XorScalar[T Integers, W Width](a Pack[T, W], s T) Pack[T, W] {
	return Xor(a, Set[W](s))
}

// ScalarXor computes s ^ a.
func ScalarXor[T Integers, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return Xor(Set[W](s), a)
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Integers, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = b.lanes[i] &^ a.lanes[i]
	}
	return r
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Integers, W Width](v Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = ^v.lanes[i]
	}
	return r
}

// ShiftLeft shifts each lane of a left by the matching lane of n.
func ShiftLeft[T Integers, W Width](a, n Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] << n.lanes[i]
	}
	return r
}

// ShiftLeftScalar shifts every lane of a left by n.
func ShiftLeftScalar[T Integers, W Width](a Pack[T, W], n T) Pack[T, W] {
	return ShiftLeft(a, Set[W](n))
}

// ScalarShiftLeft computes s << n per lane.
func ScalarShiftLeft[T Integers, W Width](s T, n Pack[T, W]) Pack[T, W] {
	return ShiftLeft(Set[W](s), n)
}

// ShiftRight shifts each lane of a right by the matching lane of n.
// Signed lanes shift arithmetically, unsigned lanes logically.
func ShiftRight[T Integers, W Width](a, n Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] >> n.lanes[i]
	}
	return r
}

// ShiftRightScalar shifts every lane of a right by n.
func ShiftRightScalar[T Integers, W Width](a Pack[T, W], n T) Pack[T, W] {
	return ShiftRight(a, Set[W](n))
}

// ScalarShiftRight computes s >> n per lane.
func ScalarShiftRight[T Integers, W Width](s T, n Pack[T, W]) Pack[T, W] {
	return ShiftRight(Set[W](s), n)
}

// PopCount counts the set bits of every lane.
func PopCount[T Integers, W Width](v Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = T(bits.OnesCount64(uint64(v.lanes[i]) & sizeMask[T]()))
	}
	return r
}

// sizeMask returns a mask covering the bits of T, so that sign extension of
// negative lanes does not leak into the upper bits during uint64 conversion.
func sizeMask[T Integers]() uint64 {
	var zero T
	return ^uint64(0) >> (64 - 8*unsafe.Sizeof(zero))
}
