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

// Package psimd provides fixed-width data-parallel packs written in portable Go.
//
// A Pack holds a compile-time number of lanes of one scalar type and every
// operation works lane by lane, the way a hardware SIMD register would. The
// lane count is chosen with a width tag (W1, W2, W4, W8, W16), so packs of
// different widths are different types and cannot be mixed by accident.
// Comparisons produce a Mask, a dedicated boolean-lane type that drives
// Select, ForeachActive and the masked memory operations.
//
// Basic usage:
//
//	import "github.com/go-psimd/go-psimd/psimd"
//
//	a := psimd.Load[psimd.W8](data1)
//	b := psimd.Load[psimd.W8](data2)
//	sum := psimd.Add(a, b)
//	big := psimd.GreaterScalar(sum, 10)
//	psimd.StoreMasked(sum, out, big)
//
// Operators are named functions. Forms taking a scalar on the right carry a
// Scalar suffix (SubScalar(p, s) is p - s); forms taking it on the left carry
// a Scalar prefix (ScalarSub(s, p) is s - p). The scalar always has the lane
// type T, so no implicit widening ever happens.
package psimd

import (
	"fmt"
	"strings"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in pack lanes.
type Lanes interface {
	Floats | Integers
}

// Width tags. The array length of the tag is the lane count.
type (
	W1  [1]struct{}
	W2  [2]struct{}
	W4  [4]struct{}
	W8  [8]struct{}
	W16 [16]struct{}
)

// Width is the closed set of supported lane counts.
type Width interface {
	W1 | W2 | W4 | W8 | W16
}

// DefaultWidth is the width used by callers that have no reason to pick one.
type DefaultWidth = W8

// MaxWidth is the lane count of the widest supported pack.
const MaxWidth = 16

// NumLanes returns the number of lanes selected by the width tag W.
func NumLanes[W Width]() int {
	var w W
	return len(w)
}

// Pack is a fixed-width array of lanes of type T.
//
// Pack is a value type: assigning it copies every lane. The zero value is a
// pack with all lanes set to zero. Lanes at or beyond NumLanes[W]() are never
// written and stay zero, which keeps == on packs meaningful.
type Pack[T Lanes, W Width] struct {
	lanes [MaxWidth]T
}

// NumLanes returns the number of lanes in this pack.
func (p Pack[T, W]) NumLanes() int {
	return NumLanes[W]()
}

// Lane returns the value of lane i. It panics with a *RangeError if i is
// not in [0, NumLanes).
func (p Pack[T, W]) Lane(i int) T {
	checkLane[W]("Lane", i)
	return p.lanes[i]
}

// SetLane sets lane i to v. It panics with a *RangeError if i is not in
// [0, NumLanes).
func (p *Pack[T, W]) SetLane(i int, v T) {
	checkLane[W]("SetLane", i)
	p.lanes[i] = v
}

// Slice returns a copy of the lanes as a slice.
// This is primarily for testing and printing.
func (p Pack[T, W]) Slice() []T {
	out := make([]T, NumLanes[W]())
	copy(out, p.lanes[:])
	return out
}

// String formats the lanes as "[a b c ...]".
func (p Pack[T, W]) String() string {
	return fmt.Sprint(p.Slice())
}

// Mask is the result of a lane-wise comparison.
//
// Bit i of the backing bitset is set when lane i is active. Masks carry no
// lane type, so a mask computed from float32 packs can select between int32
// packs of the same width.
type Mask[W Width] struct {
	bits uint64
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[W]) NumLanes() int {
	return NumLanes[W]()
}

// Lane reports whether lane i is active. It panics with a *RangeError if i
// is not in [0, NumLanes).
func (m Mask[W]) Lane(i int) bool {
	checkLane[W]("Mask.Lane", i)
	return m.bits&(1<<i) != 0
}

// SetLane activates or clears lane i.
func (m *Mask[W]) SetLane(i int, active bool) {
	checkLane[W]("Mask.SetLane", i)
	if active {
		m.bits |= 1 << i
	} else {
		m.bits &^= 1 << i
	}
}

// Bits returns the mask as a bitset, lane i in bit i.
func (m Mask[W]) Bits() uint64 {
	return m.bits
}

// String formats the mask as "[1 0 1 0]".
func (m Mask[W]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range NumLanes[W]() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.bits&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// laneBits returns a bitset with the low NumLanes[W]() bits set.
func laneBits[W Width]() uint64 {
	return uint64(1)<<NumLanes[W]() - 1
}

// RangeError reports an index outside the valid range of a lane, slice or
// offset. Operations panic with a *RangeError instead of returning a wrong
// lane value.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("psimd: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

func checkLane[W Width](op string, i int) {
	if n := NumLanes[W](); uint(i) >= uint(n) {
		panic(&RangeError{Op: op, Index: i, Len: n})
	}
}
