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

// Package search implements iterative-deepening alpha-beta search
// (negamax with PVS), quiescence, and the pruning/ordering heuristics
// that sit on top of internal/position and internal/movegen. It is
// driven either directly (single-threaded use, e.g. perft-adjacent
// debugging) or by internal/smp, which runs several ThreadData
// instances of IterativeDeepening concurrently against one shared
// internal/tt.Table.
package search

import (
	"time"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/movegen"
)

// aspirationWindow is the half-width of the window iterative deepening
// centers on the previous iteration's score, per spec §4.4.
const aspirationWindow = 50

// Info is a progress snapshot for one fully-searched depth, handed to
// a Reporter so the UCI layer can emit it as an `info` line without
// this package knowing anything about UCI text formatting.
type Info struct {
	Depth   int
	Score   int
	Nodes   uint64
	PV      []chess.Move
	Elapsed time.Duration
}

// Reporter receives one Info per completed iteration. UCI's engine
// loop implements this; tests can use a no-op or recording stub.
type Reporter interface {
	ReportInfo(Info)
}

type nopReporter struct{}

func (nopReporter) ReportInfo(Info) {}

// NopReporter discards every report; useful for callers (perft-style
// tooling, tests) that only want the final move.
var NopReporter Reporter = nopReporter{}

// IterativeDeepening runs negamax at increasing depth with an
// aspiration window, up to maxDepth or until td's stop flag fires. It
// returns the best move found by the deepest iteration that completed
// without being interrupted (an interrupted depth-1 iteration is kept
// if it recorded a root move). If td.stop fires before any root move
// has been recorded, the first legal move in generation order is
// returned, so a legal move is always returned from any position with
// one.
func IterativeDeepening(td *ThreadData, start time.Time, maxDepth int, reporter Reporter) chess.Move {
	return iterativeDeepening(td, start, maxDepth, 0, reporter)
}

// RunWorker is IterativeDeepening with a per-worker depth jitter, for
// internal/smp's Lazy-SMP helper threads (spec §4.5: helper i searches
// current_depth + (i mod 2), clamped). The main worker always runs with
// jitter 0, i.e. plain IterativeDeepening.
func RunWorker(td *ThreadData, start time.Time, maxDepth, jitter int, reporter Reporter) chess.Move {
	return iterativeDeepening(td, start, maxDepth, jitter, reporter)
}

// iterativeDeepening is IterativeDeepening plus a jitter term added to
// the depth actually handed to negamax, while the loop counter and
// aspiration bookkeeping still advance one ply at a time. internal/smp
// uses the jitter to give Lazy-SMP helper workers the depth diversity
// spec §4.5 asks for (helper i searches current_depth + (i mod 2)).
func iterativeDeepening(td *ThreadData, start time.Time, maxDepth, jitter int, reporter Reporter) chess.Move {
	if reporter == nil {
		reporter = NopReporter
	}
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	alpha, beta := -Infinity, Infinity
	score := 0
	best := chess.MoveNone

	for depth := 1; depth <= maxDepth; depth++ {
		searchDepth := depth + jitter
		if searchDepth > MaxPly-1 {
			searchDepth = MaxPly - 1
		}

		iterScore := td.negamax(alpha, beta, searchDepth, 0, true)

		if iterScore <= alpha || iterScore >= beta {
			// Aspiration failed: per spec's resolved ambiguity between
			// the single- and multi-threaded source paths, step back
			// one depth before the full-window retry rather than
			// redoing the same depth outright.
			td.Stats.AspirationRetries++
			retryDepth := searchDepth - 1
			if retryDepth < 1 {
				retryDepth = 1
			}
			iterScore = td.negamax(-Infinity, Infinity, retryDepth, 0, true)
		}

		if td.stop.Load() && depth > 1 {
			break
		}

		score = iterScore
		if m := td.BestMove(); m != chess.MoveNone {
			best = m
		}
		reporter.ReportInfo(Info{
			Depth:   depth,
			Score:   score,
			Nodes:   td.Nodes,
			PV:      td.PV(),
			Elapsed: time.Since(start),
		})

		alpha = score - aspirationWindow
		beta = score + aspirationWindow

		if td.stop.Load() {
			break
		}
	}

	if best == chess.MoveNone {
		var list chess.MoveList
		movegen.GenerateAll(td.Pos, &list)
		for _, m := range list.Slice() {
			if td.Pos.DoMove(m, false) {
				td.Pos.UndoMove()
				return m
			}
		}
	}
	return best
}
