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

// MaskFromBits creates a mask from a bitset, lane i in bit i.
// Bits at or beyond NumLanes[W]() are ignored.
func MaskFromBits[W Width](b uint64) Mask[W] {
	return Mask[W]{bits: b & laneBits[W]()}
}

// MaskOf creates a mask from exactly NumLanes[W]() booleans.
func MaskOf[W Width](active ...bool) Mask[W] {
	n := NumLanes[W]()
	if len(active) != n {
		panic(&RangeError{Op: "MaskOf", Index: len(active), Len: n})
	}
	var m Mask[W]
	for i, a := range active {
		if a {
			m.bits |= 1 << i
		}
	}
	return m
}

// MaskAll returns a mask with every lane active.
func MaskAll[W Width]() Mask[W] {
	return Mask[W]{bits: laneBits[W]()}
}

// Any reports whether at least one lane is active.
func Any[W Width](m Mask[W]) bool {
	return m.bits != 0
}

// All reports whether every lane is active.
func All[W Width](m Mask[W]) bool {
	return m.bits == laneBits[W]()
}

// None reports whether no lane is active. It is exactly !Any(m).
func None[W Width](m Mask[W]) bool {
	return !Any(m)
}

// CountTrue returns the number of active lanes.
func CountTrue[W Width](m Mask[W]) int {
	return bits.OnesCount64(m.bits)
}

// FindFirstTrue returns the index of the first active lane, or -1.
func FindFirstTrue[W Width](m Mask[W]) int {
	if m.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(m.bits)
}

// MaskAnd returns the lanes active in both a and b.
func MaskAnd[W Width](a, b Mask[W]) Mask[W] {
	return Mask[W]{bits: a.bits & b.bits}
}

// MaskOr returns the lanes active in a or b.
func MaskOr[W Width](a, b Mask[W]) Mask[W] {
	return Mask[W]{bits: a.bits | b.bits}
}

// MaskXor returns the lanes active in exactly one of a and b.
func MaskXor[W Width](a, b Mask[W]) Mask[W] {
	return Mask[W]{bits: a.bits ^ b.bits}
}

// MaskAndNot returns the lanes active in b but not in a (~a & b).
func MaskAndNot[W Width](a, b Mask[W]) Mask[W] {
	return Mask[W]{bits: b.bits &^ a.bits}
}

// MaskNot inverts every lane.
func MaskNot[W Width](m Mask[W]) Mask[W] {
	return Mask[W]{bits: ^m.bits & laneBits[W]()}
}
