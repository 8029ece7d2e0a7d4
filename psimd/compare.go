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

// Lane-wise comparisons. Lane i of the result is active when the comparison
// holds at lane i. NaN lanes compare false except under NotEqual.

// Equal performs element-wise equality comparison.
func Equal[T Lanes, W Width](a, b Pack[T, W]) Mask[W] {
	var m Mask[W]
	for i := range NumLanes[W]() {
		if a.lanes[i] == b.lanes[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// EqualScalar reports a == s per lane.
func EqualScalar[T Lanes, W Width](a Pack[T, W], s T) Mask[W] {
	return Equal(a, Set[W](s))
}

// ScalarEqual reports s == a per lane.
func ScalarEqual[T Lanes, W Width](s T, a Pack[T, W]) Mask[W] {
	return Equal(Set[W](s), a)
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes, W Width](a, b Pack[T, W]) Mask[W] {
	var m Mask[W]
	for i := range NumLanes[W]() {
		if a.lanes[i] != b.lanes[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// NotEqualScalar reports a != s per lane.
func NotEqualScalar[T Lanes, W Width](a Pack[T, W], s T) Mask[W] {
	return NotEqual(a, Set[W](s))
}

// ScalarNotEqual reports s != a per lane.
func ScalarNotEqual[T Lanes, W Width](s T, a Pack[T, W]) Mask[W] {
	return NotEqual(Set[W](s), a)
}

// Less performs element-wise less-than comparison.
func Less[T Lanes, W Width](a, b Pack[T, W]) Mask[W] {
	var m Mask[W]
	for i := range NumLanes[W]() {
		if a.lanes[i] < b.lanes[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// LessScalar reports a < s per lane.
func LessScalar[T Lanes, W Width](a Pack[T, W], s T) Mask[W] {
	return Less(a, Set[W](s))
}

// ScalarLess reports s < a per lane.
func ScalarLess[T Lanes, W Width](s T, a Pack[T, W]) Mask[W] {
	return Less(Set[W](s), a)
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes, W Width](a, b Pack[T, W]) Mask[W] {
	var m Mask[W]
	for i := range NumLanes[W]() {
		if a.lanes[i] <= b.lanes[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// LessEqualScalar reports a <= s per lane.
func LessEqualScalar[T Lanes, W Width](a Pack[T, W], s T) Mask[W] {
	return LessEqual(a, Set[W](s))
}

// ScalarLessEqual reports s <= a per lane.
func ScalarLessEqual[T Lanes, W Width](s T, a Pack[T, W]) Mask[W] {
	return LessEqual(Set[W](s), a)
}

// Greater performs element-wise greater-than comparison.
func Greater[T Lanes, W Width](a, b Pack[T, W]) Mask[W] {
	return Less(b, a)
}

// GreaterScalar reports a > s per lane.
func GreaterScalar[T Lanes, W Width](a Pack[T, W], s T) Mask[W] {
	return Less(Set[W](s), a)
}

// ScalarGreater reports s > a per lane.
func ScalarGreater[T Lanes, W Width](s T, a Pack[T, W]) Mask[W] {
	return Less(a, Set[W](s))
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes, W Width](a, b Pack[T, W]) Mask[W] {
	return LessEqual(b, a)
}

// GreaterEqualScalar reports a >= s per lane.
func GreaterEqualScalar[T Lanes, W Width](a Pack[T, W], s T) Mask[W] {
	return LessEqual(Set[W](s), a)
}

// ScalarGreaterEqual reports s >= a per lane.
func ScalarGreaterEqual[T Lanes, W Width](s T, a Pack[T, W]) Mask[W] {
	return LessEqual(a, Set[W](s))
}

// IsNaN returns a mask of the lanes holding NaN.
func IsNaN[T Floats, W Width](v Pack[T, W]) Mask[W] {
	return NotEqual(v, v)
}
