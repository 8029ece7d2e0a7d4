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

func TestAnyAllNone(t *testing.T) {
	var m Mask[DefaultWidth]
	if Any(m) || All(m) || !None(m) {
		t.Error("empty mask: want !Any, !All, None")
	}

	m.SetLane(0, true)
	if !Any(m) || All(m) || None(m) {
		t.Error("one lane: want Any, !All, !None")
	}

	var p vint
	Foreach(&p, func(l *int32, _ int) { *l = 1 })
	m = ToMask(p)
	if !Any(m) || !All(m) || None(m) {
		t.Error("full mask: want Any, All, !None")
	}
}

// testReductionDuality checks every mask of width W.
func testReductionDuality[W Width](t *testing.T) {
	n := NumLanes[W]()
	for b := uint64(0); b < 1<<n; b++ {
		m := MaskFromBits[W](b)
		if None(m) != !Any(m) {
			t.Fatalf("mask %v: None %v, Any %v", m, None(m), Any(m))
		}
		mixed := b != 0 && b != 1<<n-1
		if mixed && All(m) == Any(m) {
			t.Fatalf("mask %v: mixed lanes but All == Any", m)
		}
		if CountTrue(m) == n != All(m) {
			t.Fatalf("mask %v: CountTrue %d disagrees with All", m, CountTrue(m))
		}
	}
}

func TestReductionDuality(t *testing.T) {
	t.Run("W1", testReductionDuality[W1])
	t.Run("W2", testReductionDuality[W2])
	t.Run("W4", testReductionDuality[W4])
	t.Run("W8", testReductionDuality[W8])
	t.Run("W16", testReductionDuality[W16])
}

func TestMaskAll(t *testing.T) {
	if !All(MaskAll[W1]()) || !All(MaskAll[W16]()) {
		t.Error("MaskAll: want all lanes")
	}
	if got := CountTrue(MaskAll[W8]()); got != 8 {
		t.Errorf("CountTrue(MaskAll): got %d, want 8", got)
	}
}

func TestMaskFromBitsIgnoresHighBits(t *testing.T) {
	m := MaskFromBits[W4](0xff)
	if got := m.Bits(); got != 0xf {
		t.Errorf("MaskFromBits: got %#x, want 0xf", got)
	}
	if !All(m) {
		t.Error("MaskFromBits(0xff) on 4 lanes: want All")
	}
}

func TestMaskLogic(t *testing.T) {
	a := MaskOf[W4](true, true, false, false)
	b := MaskOf[W4](true, false, true, false)

	tests := []struct {
		name string
		got  Mask[W4]
		want uint64
	}{
		{"And", MaskAnd(a, b), 0b0001},
		{"Or", MaskOr(a, b), 0b0111},
		{"Xor", MaskXor(a, b), 0b0110},
		{"AndNot", MaskAndNot(a, b), 0b0100},
		{"Not", MaskNot(a), 0b1100},
	}
	for _, tt := range tests {
		if tt.got.Bits() != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, tt.got.Bits(), tt.want)
		}
	}

	all := MaskAll[DefaultWidth]()
	none := Mask[DefaultWidth]{}
	if !None(MaskAnd(all, none)) {
		t.Error("all && none: want None")
	}
	if !All(MaskOr(all, none)) {
		t.Error("all || none: want All")
	}
	if MaskNot(all) != none {
		t.Error("!all: want none")
	}
}

func TestFindFirstTrue(t *testing.T) {
	if got := FindFirstTrue(Mask[W8]{}); got != -1 {
		t.Errorf("empty: got %d, want -1", got)
	}
	if got := FindFirstTrue(MaskOf[W4](false, false, true, true)); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestMaskSetLane(t *testing.T) {
	var m Mask[W4]
	m.SetLane(3, true)
	m.SetLane(1, true)
	m.SetLane(3, false)
	if got := m.Bits(); got != 0b0010 {
		t.Errorf("SetLane: got %04b, want 0010", got)
	}
	expectRangePanic(t, func() { m.SetLane(4, true) })
	expectRangePanic(t, func() { m.Lane(-1) })
	expectRangePanic(t, func() { MaskOf[W2](true) })
}
