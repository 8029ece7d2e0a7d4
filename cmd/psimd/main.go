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

// Command psimd renders the Mandelbrot set with the pack engine, checks every
// pack backend against the scalar oracle and benchmarks them.
//
// Usage:
//
//	psimd info
//	psimd render --backend pack8 --out mandelbrot.ppm
//	psimd verify
//	psimd bench --samples 16 --budget 4s
//
// The log level comes from --log-level, or from PSIMD_LOG_LEVEL when the
// flag is not given.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
