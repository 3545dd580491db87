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
	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/config"
	"github.com/fraTorsello/Triumviratus-3.0/internal/movegen"
)

// quiescence extends the search along capture sequences only, to avoid
// misjudging a position mid-exchange (the "horizon effect"). Fails
// hard on beta, like negamax.
func (td *ThreadData) quiescence(alpha, beta, ply int) int {
	if td.checkStop() {
		return alpha
	}
	if ply >= MaxPly-1 {
		return td.eval.Evaluate(td.Pos)
	}

	staticEval := td.eval.Evaluate(td.Pos)

	if config.Settings.Search.UseQSStandpat {
		if staticEval >= beta {
			return beta
		}
		if staticEval+deltaPruningMargin < alpha {
			return alpha
		}
		if staticEval > alpha {
			alpha = staticEval
		}
	}

	var list chess.MoveList
	movegen.GenerateCaptures(td.Pos, &list)
	ordered := orderMoves(td.Pos, list.Slice(), chess.MoveNone, &td.killers, min(ply, MaxPly-1), &td.history)

	for _, sm := range ordered {
		m := sm.move
		if !m.IsCapture() && !m.IsEnPassant() {
			continue
		}
		if config.Settings.Search.UseSEE && staticExchangeEval(td.Pos, m) < seeCaptureMargin {
			continue
		}
		if !td.Pos.DoMove(m, true) {
			continue
		}
		td.Nodes++
		td.Stats.QNodes++
		score := -td.quiescence(-beta, -alpha, ply+1)
		td.Pos.UndoMove()

		if td.stop.Load() {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}
