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

// This file provides pack construction and the lane-wise arithmetic operators.
// Every loop runs over exactly NumLanes[W]() lanes with no cross-lane
// dependency, which leaves the compiler free to unroll or vectorize it.

// Zero creates a pack with all lanes set to zero.
func Zero[W Width, T Lanes]() Pack[T, W] {
	return Pack[T, W]{}
}

// Undefined returns a pack whose contents callers must not rely on.
// In Go this is a zero-filled pack; use it for outputs that are fully
// written before they are read.
func Undefined[W Width, T Lanes]() Pack[T, W] {
	return Pack[T, W]{}
}

// Set creates a pack with all lanes set to the same value (a broadcast).
func Set[W Width, T Lanes](value T) Pack[T, W] {
	var p Pack[T, W]
	for i := range NumLanes[W]() {
		p.lanes[i] = value
	}
	return p
}

// Iota returns a pack with lanes set to [0, 1, 2, 3, ...].
func Iota[W Width, T Lanes]() Pack[T, W] {
	var p Pack[T, W]
	for i := range NumLanes[W]() {
		p.lanes[i] = T(i)
	}
	return p
}

// FromValues creates a pack from exactly NumLanes[W]() values.
func FromValues[W Width, T Lanes](values ...T) Pack[T, W] {
	n := NumLanes[W]()
	if len(values) != n {
		panic(&RangeError{Op: "FromValues", Index: len(values), Len: n})
	}
	var p Pack[T, W]
	copy(p.lanes[:n], values)
	return p
}

// Add performs element-wise addition.
func Add[T Lanes, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return r
}

// AddScalar adds s to every lane of a.
func AddScalar[T Lanes, W Width](a Pack[T, W], s T) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] + s
	}
	return r
}

// ScalarAdd computes s + a.
func ScalarAdd[T Lanes, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return AddScalar(a, s)
}

// Sub performs element-wise subtraction.
func Sub[T Lanes, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] - b.lanes[i]
	}
	return r
}

// SubScalar computes a - s.
func SubScalar[T Lanes, W Width](a Pack[T, W], s T) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] - s
	}
	return r
}

// ScalarSub computes s - a.
func ScalarSub[T Lanes, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return Sub(Set[W](s), a)
}

// Mul performs element-wise multiplication.
func Mul[T Lanes, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] * b.lanes[i]
	}
	return r
}

// MulScalar multiplies every lane of a by s.
func MulScalar[T Lanes, W Width](a Pack[T, W], s T) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] * s
	}
	return r
}

// ScalarMul computes s * a.
func ScalarMul[T Lanes, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return MulScalar(a, s)
}

// Div performs element-wise division.
//
// Float lanes follow IEEE 754 (x/0 is ±Inf or NaN). Integer lanes panic
// with a runtime error when a divisor lane is zero.
func Div[T Lanes, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] / b.lanes[i]
	}
	return r
}

// DivScalar computes a / s.
func DivScalar[T Lanes, W Width](a Pack[T, W], s T) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] / s
	}
	return r
}

// ScalarDiv computes s / a.
func ScalarDiv[T Lanes, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return Div(Set[W](s), a)
}

// Mod computes the element-wise remainder a % b, with the sign of a.
// It panics with a runtime error when a divisor lane is zero.
func Mod[T Integers, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] % b.lanes[i]
	}
	return r
}

// ModScalar computes a % s.
func ModScalar[T Integers, W Width](a Pack[T, W], s T) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = a.lanes[i] % s
	}
	return r
}

// ScalarMod computes s % a.
func ScalarMod[T Integers, W Width](s T, a Pack[T, W]) Pack[T, W] {
	return Mod(Set[W](s), a)
}

// Neg negates all lanes. Unsigned lanes wrap around.
func Neg[T Lanes, W Width](v Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = -v.lanes[i]
	}
	return r
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes, W Width](v Pack[T, W]) T {
	var sum T
	for i := range NumLanes[W]() {
		sum += v.lanes[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes, W Width](v Pack[T, W]) T {
	m := v.lanes[0]
	for i := 1; i < NumLanes[W](); i++ {
		if v.lanes[i] < m {
			m = v.lanes[i]
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes, W Width](v Pack[T, W]) T {
	m := v.lanes[0]
	for i := 1; i < NumLanes[W](); i++ {
		if v.lanes[i] > m {
			m = v.lanes[i]
		}
	}
	return m
}
