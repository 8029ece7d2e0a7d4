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
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	v1 := Set[DefaultWidth](int32(1))
	v2 := Set[DefaultWidth](int32(1))

	if !All(Equal(v1, v2)) {
		t.Error("Equal: want all lanes")
	}
	if !All(ScalarEqual(1, v1)) || !All(EqualScalar(v1, 1)) {
		t.Error("Equal scalar forms: want all lanes")
	}

	v1.SetLane(0, 2)

	if All(Equal(v1, v2)) {
		t.Error("Equal: lane 0 differs, want not all")
	}
	if All(ScalarEqual(1, v1)) || All(EqualScalar(v1, 1)) {
		t.Error("Equal scalar forms: lane 0 differs, want not all")
	}
	if got := Equal(v1, v2).Bits(); got != 0xfe {
		t.Errorf("Equal bits: got %#x, want 0xfe", got)
	}
}

func TestNotEqual(t *testing.T) {
	v1 := Set[DefaultWidth](int32(1))
	v2 := Set[DefaultWidth](int32(2))

	if !All(NotEqual(v1, v2)) || !All(ScalarNotEqual(1, v2)) || !All(NotEqualScalar(v2, 1)) {
		t.Error("NotEqual: want all lanes")
	}

	v1.SetLane(0, 2)

	if All(NotEqual(v1, v2)) {
		t.Error("NotEqual: lane 0 equal, want not all")
	}
}

func TestOrderings(t *testing.T) {
	a := FromValues[W4](int32(1), 5, 3, 3)
	b := FromValues[W4](int32(2), 4, 3, 0)

	tests := []struct {
		name string
		got  Mask[W4]
		want []bool
	}{
		{"Less", Less(a, b), []bool{true, false, false, false}},
		{"LessEqual", LessEqual(a, b), []bool{true, false, true, false}},
		{"Greater", Greater(a, b), []bool{false, true, false, true}},
		{"GreaterEqual", GreaterEqual(a, b), []bool{false, true, true, true}},
		{"LessScalar", LessScalar(a, 3), []bool{true, false, false, false}},
		{"ScalarLess", ScalarLess(3, a), []bool{false, true, false, false}},
		{"LessEqualScalar", LessEqualScalar(a, 3), []bool{true, false, true, true}},
		{"ScalarLessEqual", ScalarLessEqual(3, a), []bool{false, true, true, true}},
		{"GreaterScalar", GreaterScalar(a, 3), []bool{false, true, false, false}},
		{"ScalarGreater", ScalarGreater(3, a), []bool{true, false, false, false}},
		{"GreaterEqualScalar", GreaterEqualScalar(a, 3), []bool{false, true, true, true}},
		{"ScalarGreaterEqual", ScalarGreaterEqual(3, a), []bool{true, false, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				if tt.got.Lane(i) != want {
					t.Errorf("lane %d: got %v, want %v", i, tt.got.Lane(i), want)
				}
			}
		})
	}
}

func TestOrderingsAllLanes(t *testing.T) {
	v1 := Set[DefaultWidth](int32(1))
	v2 := Set[DefaultWidth](int32(2))

	if !All(Less(v1, v2)) || !All(ScalarLess(1, v2)) || !All(LessScalar(v1, 2)) {
		t.Error("Less: want all lanes")
	}
	if !All(Greater(v2, v1)) || !All(ScalarGreater(2, v1)) || !All(GreaterScalar(v2, 1)) {
		t.Error("Greater: want all lanes")
	}

	v0 := v1
	v0.SetLane(0, 2)
	if !All(LessEqual(v0, v2)) || !All(ScalarLessEqual(1, v2)) || !All(LessEqualScalar(v0, 2)) {
		t.Error("LessEqual: want all lanes")
	}

	v3 := Set[DefaultWidth](int32(1))
	v3.SetLane(0, 0)
	if !All(GreaterEqual(v2, v3)) || !All(ScalarGreaterEqual(1, v3)) || !All(GreaterEqualScalar(v2, 2)) {
		t.Error("GreaterEqual: want all lanes")
	}
}

func TestCompareNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := FromValues[W4](nan, 1, nan, 2)
	b := Set[W4](float32(1))

	if got := Equal(a, b).Bits(); got != 0b0010 {
		t.Errorf("Equal with NaN: got %04b, want 0010", got)
	}
	if got := NotEqual(a, b).Bits(); got != 0b1101 {
		t.Errorf("NotEqual with NaN: got %04b, want 1101", got)
	}
	if got := IsNaN(a).Bits(); got != 0b0101 {
		t.Errorf("IsNaN: got %04b, want 0101", got)
	}
	if Any(Less(a, b)) {
		t.Error("Less with NaN lanes or equal lanes: want none")
	}
}
