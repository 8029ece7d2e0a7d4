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

// Foreach calls fn once per lane, in lane order, with a pointer to the lane
// and its index. fn may modify the lane in place.
func Foreach[T Lanes, W Width](p *Pack[T, W], fn func(lane *T, i int)) {
	for i := range NumLanes[W]() {
		fn(&p.lanes[i], i)
	}
}

// ForeachActive is Foreach restricted to the lanes active in m.
// Inactive lanes are not visited and keep their values.
func ForeachActive[T Lanes, W Width](m Mask[W], p *Pack[T, W], fn func(lane *T, i int)) {
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			fn(&p.lanes[i], i)
		}
	}
}

// Select returns t where m is active and f elsewhere.
func Select[T Lanes, W Width](m Mask[W], t, f Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		if m.bits&(1<<i) != 0 {
			r.lanes[i] = t.lanes[i]
		} else {
			r.lanes[i] = f.lanes[i]
		}
	}
	return r
}

// SelectZero returns t where m is active and zero elsewhere.
func SelectZero[T Lanes, W Width](m Mask[W], t Pack[T, W]) Pack[T, W] {
	return Select(m, t, Pack[T, W]{})
}
