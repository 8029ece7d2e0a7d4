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

// Elementwise math. Float functions evaluate the Go math function on each
// lane widened to float64 and round the result back to T, so NaN and domain
// behavior match package math lane by lane (Sqrt of a negative lane is NaN).

func mapFloat[T Floats, W Width](v Pack[T, W], f func(float64) float64) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = T(f(float64(v.lanes[i])))
	}
	return r
}

// Abs computes the absolute value of every lane.
// For floats, -0 becomes +0. For signed integers the most negative value
// maps to itself.
func Abs[T Lanes, W Width](v Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		x := v.lanes[i]
		switch {
		case x < 0:
			r.lanes[i] = -x
		case x == 0:
			r.lanes[i] = 0
		default:
			r.lanes[i] = x
		}
	}
	return r
}

// Sqrt computes square root.
func Sqrt[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Sqrt)
}

// RSqrt computes reciprocal square root (1/sqrt(x)).
func RSqrt[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, func(x float64) float64 { return 1 / math.Sqrt(x) })
}

// Sin computes the sine of every lane (radians).
func Sin[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Sin)
}

// Cos computes the cosine of every lane (radians).
func Cos[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Cos)
}

// Tan computes the tangent of every lane (radians).
func Tan[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Tan)
}

// Exp computes e**x.
func Exp[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Exp)
}

// Log computes the natural logarithm. Negative lanes give NaN, zero gives -Inf.
func Log[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Log)
}

// Floor rounds every lane down.
func Floor[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Floor)
}

// Ceil rounds every lane up.
func Ceil[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Ceil)
}

// Round rounds every lane to the nearest integer, half away from zero.
func Round[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Round)
}

// Trunc truncates every lane toward zero.
func Trunc[T Floats, W Width](v Pack[T, W]) Pack[T, W] {
	return mapFloat(v, math.Trunc)
}

// Pow computes base**exp element-wise.
func Pow[T Floats, W Width](base, exp Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = T(math.Pow(float64(base.lanes[i]), float64(exp.lanes[i])))
	}
	return r
}

// MulAdd computes a*b + c per lane with math.FMA. The product of two
// float32 lanes is exact in float64, so float32 lanes see one rounding of the
// sum to float64 and one to float32.
func MulAdd[T Floats, W Width](a, b, c Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = T(math.FMA(float64(a.lanes[i]), float64(b.lanes[i]), float64(c.lanes[i])))
	}
	return r
}

// Min returns element-wise minimum.
func Min[T Lanes, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = min(a.lanes[i], b.lanes[i])
	}
	return r
}

// Max returns element-wise maximum.
func Max[T Lanes, W Width](a, b Pack[T, W]) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = max(a.lanes[i], b.lanes[i])
	}
	return r
}

// Clamp limits every lane of v to [lo, hi].
func Clamp[T Lanes, W Width](v Pack[T, W], lo, hi T) Pack[T, W] {
	var r Pack[T, W]
	for i := range NumLanes[W]() {
		r.lanes[i] = min(max(v.lanes[i], lo), hi)
	}
	return r
}
