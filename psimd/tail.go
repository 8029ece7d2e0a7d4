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

// TailMask creates a mask with the first count lanes active.
// Count is clamped to [0, NumLanes[W]()].
//
// Example:
//
//	n := psimd.NumLanes[psimd.W8]()
//	remaining := len(data) % n
//	if remaining > 0 {
//	    m := psimd.TailMask[psimd.W8](remaining)
//	    v := psimd.LoadMasked(m, data[len(data)-remaining:])
//	    // ... process tail
//	    psimd.StoreMasked(v, output[len(output)-remaining:], m)
//	}
func TailMask[W Width](count int) Mask[W] {
	n := NumLanes[W]()
	count = max(0, min(count, n))
	return Mask[W]{bits: uint64(1)<<count - 1}
}

// ProcessWithTail walks [0, size) in steps of NumLanes[W]().
//
// It calls:
//   - fullFn(offset) for each full pack (offset is the starting index)
//   - tailFn(offset, count) once for the remainder, if any
//
// Example:
//
//	psimd.ProcessWithTail[psimd.W8](len(data),
//	    func(offset int) {
//	        v := psimd.Load[psimd.W8](data[offset:])
//	        psimd.Store(psimd.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        m := psimd.TailMask[psimd.W8](count)
//	        v := psimd.LoadMasked(m, data[offset:])
//	        psimd.StoreMasked(psimd.Add(v, v), output[offset:], m)
//	    },
//	)
func ProcessWithTail[W Width](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	n := NumLanes[W]()

	full := size / n
	for i := range full {
		fullFn(i * n)
	}

	if remaining := size % n; remaining > 0 {
		tailFn(full*n, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of the pack width.
// This is useful for allocating buffers that are processed pack by pack.
func AlignedSize[W Width](size int) int {
	n := NumLanes[W]()
	return ((size + n - 1) / n) * n
}

// IsAligned returns true if size is a multiple of the pack width.
func IsAligned[W Width](size int) bool {
	return size%NumLanes[W]() == 0
}
