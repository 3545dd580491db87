/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package smp implements the Lazy-SMP parallel search driver: a pool
// of internal/search.ThreadData workers that all iteratively deepen on
// the same root position, sharing nothing but one internal/tt.Table and
// one atomic stop flag. Diversity between workers comes from TT
// interference and a small per-helper depth jitter, not from splitting
// the move tree.
package smp

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/op/go-logging"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/enginelog"
	"github.com/fraTorsello/Triumviratus-3.0/internal/evaluator"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
	"github.com/fraTorsello/Triumviratus-3.0/internal/search"
	"github.com/fraTorsello/Triumviratus-3.0/internal/tt"
)

var log *logging.Logger = enginelog.Search()

// maxThreads bounds the worker pool, per spec §5 ("N ... max 64").
const maxThreads = 64

// Driver owns the shared transposition table and the pool of
// ThreadData workers that search against it. Exactly one Driver exists
// per running engine; internal/uci holds it and dispatches `go`/`stop`
// onto it.
type Driver struct {
	table *tt.Table
	eval  *evaluator.Evaluator

	mu      sync.Mutex
	workers []*search.ThreadData

	stop       *atomic.Bool
	totalNodes atomic.Uint64

	// isRunning serializes searches: a second `go` cannot start while
	// one is in flight, matching the teacher's single-search-at-a-time
	// discipline.
	isRunning *semaphore.Weighted
}

// NewDriver builds a Driver with numThreads workers sharing table and
// eval. numThreads is clamped to [1, maxThreads].
func NewDriver(numThreads int, table *tt.Table, eval *evaluator.Evaluator) *Driver {
	d := &Driver{
		table:     table,
		eval:      eval,
		stop:      &atomic.Bool{},
		isRunning: semaphore.NewWeighted(1),
	}
	d.SetThreads(numThreads)
	return d
}

// SetThreads resizes the worker pool, per `setoption name Threads`.
// Existing workers are discarded; new ones are built lazily against
// whatever root position the next Go call provides.
func (d *Driver) SetThreads(n int) {
	if n < 1 {
		n = 1
	}
	if n > maxThreads {
		n = maxThreads
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.workers) == n {
		return
	}
	d.workers = make([]*search.ThreadData, n)
}

// Threads reports the current worker-pool size.
func (d *Driver) Threads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.workers)
}

// Stop requests early termination of any in-flight search. Safe to
// call whether or not a search is running.
func (d *Driver) Stop() {
	d.stop.Store(true)
}

// IsSearching reports whether a Go call is currently in flight.
func (d *Driver) IsSearching() bool {
	if d.isRunning.TryAcquire(1) {
		d.isRunning.Release(1)
		return false
	}
	return true
}

// Go runs one Lazy-SMP search to completion, per spec §4.5's five-step
// control flow, and returns the main worker's best move. It blocks
// until every worker has stopped, either because the main worker
// reached maxDepth (which then stops the helpers) or because limits/an
// explicit Stop() fired.
func (d *Driver) Go(root *position.Position, limits *search.Limits, reporter search.Reporter) chess.Move {
	if !d.isRunning.TryAcquire(1) {
		log.Warning("search already running, ignoring go")
		return chess.MoveNone
	}
	defer d.isRunning.Release(1)

	start := time.Now()

	// Step 1: reset stop/total_nodes, re-clone root into every worker,
	// clear killers/history/PV.
	d.stop.Store(false)
	d.totalNodes.Store(0)

	d.mu.Lock()
	for i := range d.workers {
		td := search.NewThreadData(i, root, d.table, d.eval, d.stop)
		td.Reset()
		if deadline, ok := limits.StopTime(start, root.SideToMove()); ok {
			td.SetDeadline(deadline, ok)
		}
		d.workers[i] = td
	}
	workers := d.workers
	d.mu.Unlock()

	maxDepth := limits.Depth
	if limits.Infinite || maxDepth <= 0 {
		maxDepth = search.MaxPly - 1
	}

	var group errgroup.Group

	// Step 2: spawn N-1 helpers; the main worker (index 0) runs inline
	// below on the dispatching goroutine.
	for i := 1; i < len(workers); i++ {
		helper := workers[i]
		jitter := i % 2
		group.Go(func() error {
			search.RunWorker(helper, start, maxDepth, jitter, search.NopReporter)
			return nil
		})
	}

	// Step 3: main worker, with info reporting.
	best := search.IterativeDeepening(workers[0], start, maxDepth, reporter)

	// Step 4/5: signal helpers to stop (a completed main search implies
	// the result is final even if helpers are still mid-iteration), then
	// join before reporting bestmove.
	d.stop.Store(true)
	_ = group.Wait()

	for _, w := range workers {
		d.totalNodes.Add(w.Nodes)
	}

	return best
}

// TotalNodes returns the summed node count across every worker from
// the most recently completed (or in-flight) Go call.
func (d *Driver) TotalNodes() uint64 {
	return d.totalNodes.Load()
}

// Table exposes the shared transposition table, e.g. for `ucinewgame`
// clearing or `setoption name Hash`.
func (d *Driver) Table() *tt.Table {
	return d.table
}
