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
	"time"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
)

// Limits describes how a `go` command bounds a search: a time budget, a
// fixed depth, or an open-ended infinite search. The UCI layer
// populates this; the SMP driver and iterative deepening loop only ever
// read it. Ponder, Mate, Nodes and Moves are stored but not acted on by
// the search.
type Limits struct {
	Infinite bool
	Ponder   bool
	Mate     int

	Depth int
	Nodes uint64
	Moves []chess.Move // root moves named by the go command; the search does not restrict to them

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns an empty Limits, equivalent to "search until stopped".
func NewLimits() *Limits {
	return &Limits{}
}

// StopTime computes the absolute wall-clock deadline for the side to
// move, per spec §4.5's time policy: budget/movestogo minus a 50ms
// safety margin, plus the increment, clamped to be non-negative.
// Reports ok=false when there is no time control to derive a deadline
// from (infinite or depth/node-limited searches).
func (l *Limits) StopTime(start time.Time, side chess.Color) (time.Time, bool) {
	if !l.TimeControl {
		return time.Time{}, false
	}
	if l.MoveTime > 0 {
		return start.Add(l.MoveTime), true
	}

	remaining, inc := l.WhiteTime, l.WhiteInc
	if side == chess.Black {
		remaining, inc = l.BlackTime, l.BlackInc
	}

	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}

	budget := remaining/time.Duration(movesToGo) - 50*time.Millisecond + inc
	if budget < 0 {
		budget = 0
	}
	return start.Add(budget), true
}
