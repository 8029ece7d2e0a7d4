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
	"os"
	"strconv"
	"unsafe"
)

// The host target describes the vector registers of the running CPU. Pack
// operations never depend on it: they are portable Go on every host. It is
// reported so callers can pick a pack width that matches the hardware.

// hostWidth is the vector register width in bytes of the running CPU.
// Set by init() in dispatch_*.go files.
var hostWidth int

// hostName is the human-readable name of the host vector extension.
// Set by init() in dispatch_*.go files.
var hostName string

// HostWidth returns the host vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func HostWidth() int {
	return hostWidth
}

// HostName returns the name of the widest host vector extension,
// for example "avx2", "neon", or "scalar".
func HostName() string {
	return hostName
}

// NoSimdEnv checks if the PSIMD_NO_SIMD environment variable is set.
// When set, the host is reported as a 16-byte scalar target regardless of
// CPU capabilities. This is useful for testing and reproducible benchmarks.
func NoSimdEnv() bool {
	val := os.Getenv("PSIMD_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SupportedWidths lists the lane counts of the width tags, ascending.
func SupportedWidths() []int {
	return []int{
		NumLanes[W1](),
		NumLanes[W2](),
		NumLanes[W4](),
		NumLanes[W8](),
		NumLanes[W16](),
	}
}

// PreferredLanes returns the widest supported lane count whose packs of T
// fit in one host vector register. For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int8: 32/1 = 32, clamped to MaxWidth
func PreferredLanes[T Lanes]() int {
	var zero T
	fit := hostWidth / int(unsafe.Sizeof(zero))
	best := 1
	for _, n := range SupportedWidths() {
		if n <= fit {
			best = n
		}
	}
	return best
}
