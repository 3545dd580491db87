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

package search

import (
	"sync/atomic"
	"time"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/evaluator"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
	"github.com/fraTorsello/Triumviratus-3.0/internal/tt"
)

// ThreadData is everything one Lazy-SMP worker owns exclusively. Per
// spec §3, only the transposition table and the stop flag ever cross
// between threads; every field here is thread-local and re-initialized
// at the start of every `go` command.
type ThreadData struct {
	ID  int
	Pos *position.Position

	killers killerTable
	history historyTable
	pv      triangularPV

	Nodes uint64
	Stats Statistics

	eval  *evaluator.Evaluator
	table *tt.Table

	// Shared across all threads of one search; never reassigned once
	// the search starts.
	stop     *atomic.Bool
	stopTime time.Time
	hasDeadline bool

	rootDepth int // not set by the search; helper jitter is passed to RunWorker
}

// NewThreadData builds a worker state cloning pos so the worker can
// make/unmake freely without disturbing the caller's position or its
// siblings.
func NewThreadData(id int, pos *position.Position, table *tt.Table, eval *evaluator.Evaluator, stop *atomic.Bool) *ThreadData {
	return &ThreadData{
		ID:    id,
		Pos:   pos.Clone(),
		eval:  eval,
		table: table,
		stop:  stop,
	}
}

// Reset clears killers/history/PV/node count ahead of a new `go`
// command, per spec §3's "ThreadData is re-initialized at the start of
// every go".
func (td *ThreadData) Reset() {
	td.killers = killerTable{}
	td.history = historyTable{}
	td.pv = triangularPV{}
	td.Nodes = 0
	td.Stats = Statistics{}
}

func (td *ThreadData) SetDeadline(deadline time.Time, ok bool) {
	td.stopTime = deadline
	td.hasDeadline = ok
}

// BestMove returns the PV table's current root move, or MoveNone if no
// root move has been recorded since the current iteration started.
func (td *ThreadData) BestMove() chess.Move {
	return td.pv.bestMove()
}

// PV returns the PV table's current full principal variation, which is
// the last completed iteration's when called between iterations.
func (td *ThreadData) PV() []chess.Move {
	return td.pv.Best()
}

// checkStop polls the shared stop flag and, every nodeCheckInterval
// nodes, the wall clock - spec §4.4 step 5 and §5's suspension-point
// policy (no blocking syscalls inside search, bounded latency).
func (td *ThreadData) checkStop() bool {
	if td.stop.Load() {
		return true
	}
	if td.Nodes%nodeCheckInterval != 0 {
		return false
	}
	if td.hasDeadline && !time.Now().Before(td.stopTime) {
		td.stop.Store(true)
		return true
	}
	return false
}
