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

// Package bench times a function over repeated runs and summarizes the
// samples. A run stops after a fixed number of samples or once a time
// budget is spent, whichever comes first.
package bench

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Defaults match the long-standing psimd benchmark: 16 samples, at most
// four seconds.
const (
	DefaultSamples = 16
	DefaultBudget  = 4 * time.Second
)

// Stats summarizes a set of timing samples.
type Stats struct {
	Samples []time.Duration
	Min     time.Duration
	Max     time.Duration
	Mean    time.Duration
	Median  time.Duration
}

// Summarize computes Stats for samples. It returns the zero Stats for no
// samples.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var median time.Duration
	if n := len(sorted); n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Stats{
		Samples: samples,
		Min:     lo.Min(samples),
		Max:     lo.Max(samples),
		Mean:    lo.Sum(samples) / time.Duration(len(samples)),
		Median:  median,
	}
}

// Run calls fn up to samples times, stopping early once budget has elapsed.
// At least one sample is always taken. Non-positive arguments fall back to
// the defaults.
func Run(samples int, budget time.Duration, fn func()) Stats {
	if samples <= 0 {
		samples = DefaultSamples
	}
	if budget <= 0 {
		budget = DefaultBudget
	}
	deadline := time.Now().Add(budget)

	taken := make([]time.Duration, 0, samples)
	for len(taken) < samples {
		start := time.Now()
		fn()
		taken = append(taken, time.Since(start))
		if time.Now().After(deadline) {
			break
		}
	}
	return Summarize(taken)
}

// Speedup returns how many times faster s is than base, comparing minimums.
// It returns 0 when either minimum is zero.
func (s Stats) Speedup(base Stats) float64 {
	if s.Min <= 0 || base.Min <= 0 {
		return 0
	}
	return float64(base.Min) / float64(s.Min)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// String formats the summary in milliseconds.
func (s Stats) String() string {
	return fmt.Sprintf("min %.3fms median %.3fms mean %.3fms max %.3fms (%d samples)",
		ms(s.Min), ms(s.Median), ms(s.Mean), ms(s.Max), len(s.Samples))
}
