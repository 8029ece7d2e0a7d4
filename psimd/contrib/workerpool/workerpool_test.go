// Copyright 2025 go-psimd Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	require.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	require.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

// coverage counts how many times each index of [0, n) was visited.
func coverage(n int, run func(visit func(i int))) []int32 {
	hits := make([]int32, n)
	run(func(i int) { atomic.AddInt32(&hits[i], 1) })
	return hits
}

func requireOnce(t *testing.T, hits []int32) {
	t.Helper()
	for i, h := range hits {
		require.EqualValuesf(t, 1, h, "index %d visited %d times", i, h)
	}
}

func TestParallelRows(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 100, 801} {
		requireOnce(t, coverage(n, func(visit func(int)) {
			pool.ParallelRows(n, visit)
		}))
	}
}

func TestParallelBatches(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for _, batch := range []int{0, 1, 7, 10, 250} {
		requireOnce(t, coverage(100, func(visit func(int)) {
			pool.ParallelBatches(100, batch, func(start, end int) {
				assert.LessOrEqual(t, end-start, max(batch, 1))
				for i := start; i < end; i++ {
					visit(i)
				}
			})
		}))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 2, 5, 9, 100} {
		requireOnce(t, coverage(n, func(visit func(int)) {
			pool.ParallelFor(n, func(start, end int) {
				assert.Less(t, start, end)
				for i := start; i < end; i++ {
					visit(i)
				}
			})
		}))
	}
}

func TestEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	pool.ParallelRows(0, func(int) { t.Fatal("called for n == 0") })
	pool.ParallelFor(-1, func(int, int) { t.Fatal("called for n < 0") })
}

func TestClosedRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var calls int
	pool.ParallelFor(10, func(start, end int) {
		calls++
		require.Equal(t, 0, start)
		require.Equal(t, 10, end)
	})
	require.Equal(t, 1, calls)

	requireOnce(t, coverage(10, func(visit func(int)) {
		pool.ParallelRows(10, visit)
	}))
}

func TestCloseAfterLoopReturns(t *testing.T) {
	// Close is ordered after the loop on the same goroutine; the loop has
	// finished queueing by then.
	pool := New(3)
	requireOnce(t, coverage(50, func(visit func(int)) {
		pool.ParallelRows(50, visit)
	}))
	pool.Close()
	requireOnce(t, coverage(50, func(visit func(int)) {
		pool.ParallelBatches(50, 7, func(start, end int) {
			for i := start; i < end; i++ {
				visit(i)
			}
		})
	}))
}

func TestReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	for range 50 {
		pool.ParallelRows(20, func(row int) { total.Add(int64(row)) })
	}
	require.Equal(t, int64(50*190), total.Load())
}

func BenchmarkParallelRows(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	out := make([]float32, 800)
	for b.Loop() {
		pool.ParallelRows(len(out), func(row int) {
			out[row] = float32(row) * 0.5
		})
	}
}
