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

//go:build arm64

package psimd

import "golang.org/x/sys/cpu"

func init() {
	// Check for PSIMD_NO_SIMD environment variable first
	if NoSimdEnv() {
		hostWidth = 16
		hostName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// SVE vector length is implementation-defined; report the NEON width,
	// which every SVE implementation also provides.
	switch {
	case cpu.ARM64.HasSVE:
		hostWidth = 16
		hostName = "sve"
	case cpu.ARM64.HasASIMD:
		hostWidth = 16
		hostName = "neon"
	default:
		hostWidth = 16
		hostName = "scalar"
	}
}
