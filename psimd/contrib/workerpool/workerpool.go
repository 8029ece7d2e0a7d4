// Copyright 2025 go-psimd Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs row loops of the fractal renderers on a fixed set
// of long-lived goroutines. A Pool is created once per program (or per
// benchmark) and shared by every render, so no goroutine is spawned per
// frame.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelRows(height, func(row int) {
//	    renderRow(row)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. The zero value is not usable; call New.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts numWorkers workers. If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued tasks finish. It is safe to call more
// than once. Loops issued after Close run on the calling goroutine.
//
// Close must not be called concurrently with a Parallel* call on the same
// pool: a loop that is still queueing tasks would send on a closed channel.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// fanOut runs body on k workers and waits for all of them.
func (p *Pool) fanOut(k int, body func()) {
	var wg sync.WaitGroup
	wg.Add(k)
	for range k {
		p.tasks <- task{run: body, done: &wg}
	}
	wg.Wait()
}

// ParallelRows calls fn once for every row in [0, n). Workers take the next
// unclaimed row from a shared counter, so rows that cost more (a fractal
// row crossing the set) do not hold up the rest.
func (p *Pool) ParallelRows(n int, fn func(row int)) {
	p.ParallelBatches(n, 1, func(start, end int) {
		for row := start; row < end; row++ {
			fn(row)
		}
	})
}

// ParallelBatches calls fn on consecutive ranges [start, end) of at most
// batch indices until [0, n) is covered. Every index is passed exactly once.
func (p *Pool) ParallelBatches(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	batches := (n + batch - 1) / batch
	workers := min(p.numWorkers, batches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.fanOut(workers, func() {
		for {
			start := int(next.Add(int64(batch))) - batch
			if start >= n {
				return
			}
			fn(start, min(start+batch, n))
		}
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn on each. It suits loops with a uniform cost per index.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	workers = (n + chunk - 1) / chunk
	var claimed atomic.Int64
	p.fanOut(workers, func() {
		start := int(claimed.Add(1)-1) * chunk
		fn(start, min(start+chunk, n))
	})
}
