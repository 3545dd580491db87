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
	"github.com/fraTorsello/Triumviratus-3.0/internal/tt"
)

// negamax is the recursive alpha-beta core, negamax-with-PVS flavored,
// evaluated from the perspective of the side to move. ply counts plies
// from the search root (ply 0); depth counts plies remaining before
// dropping into quiescence.
func (td *ThreadData) negamax(alpha, beta, depth, ply int, isPV bool) int {
	// Step 1: record where this node's PV row starts.
	td.pv.reset(ply)

	// Step 2: draw checks (skipped at the root).
	if ply > 0 {
		if td.Pos.IsRepetition(2) || td.Pos.IsFiftyMoveDraw() || td.Pos.HasInsufficientMaterial() {
			return Draw
		}
	}

	// Step 4: TT probe (skipped at the root). UseTTMove gates whether the
	// stored move feeds move ordering below; UseTTValue gates whether the
	// stored score is trusted for an early cutoff. Either can be turned
	// off in isolation for heuristic regression testing while UseTT keeps
	// the table itself populated.
	var ttMove chess.Move
	if config.Settings.Search.UseTT {
		if res, ok := td.table.Probe(td.Pos.Hash(), ply); ok {
			if config.Settings.Search.UseTTMove {
				ttMove = res.Move
			}
			if config.Settings.Search.UseTTValue && ply > 0 && !isPV && res.Depth >= depth {
				td.Stats.TTHits++
				switch res.Flag {
				case tt.FlagExact:
					td.Stats.TTCuts++
					return res.Score
				case tt.FlagAlpha:
					if res.Score <= alpha {
						td.Stats.TTCuts++
						return alpha
					}
				case tt.FlagBeta:
					if res.Score >= beta {
						td.Stats.TTCuts++
						return beta
					}
				}
			}
		}
	}

	// Step 5: periodic stop poll.
	if td.checkStop() {
		return alpha
	}

	// Step 6: leaf of the depth ladder drops into quiescence.
	if depth <= 0 {
		if !config.Settings.Search.UseQuiescence {
			return td.eval.Evaluate(td.Pos)
		}
		return td.quiescence(alpha, beta, ply)
	}

	// Step 7: ply-limit guard.
	if ply >= MaxPly-1 {
		return td.eval.Evaluate(td.Pos)
	}

	// Step 8: check extension.
	inCheck := td.Pos.InCheck()
	if inCheck && config.Settings.Search.UseCheckExt && config.Settings.Search.UseExt {
		depth++
	}

	// Step 9: static evaluation, used by several prunings below.
	staticEval := td.eval.Evaluate(td.Pos)

	if config.Settings.Search.UseMDP {
		if a := -MateValue + ply; alpha < a {
			alpha = a
		}
		if b := MateValue - ply; beta > b {
			beta = b
		}
		if alpha >= beta {
			td.Stats.MdpCuts++
			return alpha
		}
	}

	// Step 10: reverse futility pruning. The abs(beta-1) guard keeps this
	// off when beta sits near a mate/infinite window, where the margin
	// comparison below is meaningless; !isPV already excludes the only
	// place such windows occur (the root), but the guard stays as a
	// second line of defense if that ever changes.
	if config.Settings.Search.UseRFP && depth < 3 && !isPV && !inCheck && abs(beta-1) < Infinity-100 {
		margin := staticEval - 120*depth
		if margin >= beta {
			td.Stats.RfpCuts++
			return margin
		}
	}

	// Step 11: null-move pruning.
	if config.Settings.Search.UseNullMove && depth >= config.Settings.Search.NmpDepth && !inCheck && ply > 0 {
		td.Pos.DoNullMove()
		score := -td.negamax(-beta, -beta+1, depth-1-config.Settings.Search.NmpReduction, ply+1, false)
		td.Pos.UndoNullMove()
		if td.stop.Load() {
			return alpha
		}
		if score >= beta {
			td.Stats.NullMoveCuts++
			return beta
		}
	}

	// Step 12: razoring.
	if config.Settings.Search.UseRazoring && !isPV && !inCheck && depth <= config.Settings.Search.RazorDepth {
		s := staticEval + 125
		switch depth {
		case 1:
			if s < beta {
				q := td.quiescence(alpha, beta, ply)
				td.Stats.RazorCuts++
				return max(s, q)
			}
		case 2:
			if s < beta {
				s2 := s + 175
				if s2 < beta {
					q := td.quiescence(alpha, beta, ply)
					if q < beta {
						td.Stats.RazorCuts++
						return max(s2, q)
					}
				}
			}
		}
	}

	// Internal iterative deepening: when no TT move is available at
	// meaningful depth, do a shallow search first purely to seed move
	// ordering.
	if config.Settings.Search.UseIID && ttMove == chess.MoveNone && depth >= config.Settings.Search.IIDDepth && isPV {
		td.Stats.IidSearches++
		td.negamax(alpha, beta, depth-config.Settings.Search.IIDReduction, ply, isPV)
		ttMove = td.pv.line[ply][ply]
	}

	// Step 13/14: generate and order moves.
	var list chess.MoveList
	movegen.GenerateAll(td.Pos, &list)
	ordered := orderMoves(td.Pos, list.Slice(), ttMove, &td.killers, ply, &td.history)

	bestScore := -Infinity
	bestMove := chess.MoveNone
	hashFlag := tt.FlagAlpha
	legalMoves := 0

	for i, sm := range ordered {
		m := sm.move
		if !td.Pos.DoMove(m, false) {
			continue // illegal: leaves own king attacked
		}
		legalMoves++
		td.Nodes++

		isCaptureOrPromo := m.IsCapture() || m.IsEnPassant() || m.IsPromotion()

		doLMR := config.Settings.Search.UseLmr &&
			legalMoves > config.Settings.Search.LmrMovesSearched &&
			depth >= config.Settings.Search.LmrDepth &&
			!inCheck && !isCaptureOrPromo

		var score int
		switch {
		case legalMoves == 1:
			score = -td.negamax(-beta, -alpha, depth-1, ply+1, isPV)
		case !config.Settings.Search.UsePVS:
			// PVS disabled: every move gets a full window search, still
			// preceded by an LMR probe at reduced depth when applicable.
			if doLMR {
				score = -td.negamax(-alpha-1, -alpha, depth-2, ply+1, false)
				td.Stats.LmrResearches++
				if score > alpha {
					score = -td.negamax(-beta, -alpha, depth-1, ply+1, isPV)
				}
			} else {
				score = -td.negamax(-beta, -alpha, depth-1, ply+1, isPV)
			}
		default:
			reduced := depth - 2
			if doLMR {
				score = -td.negamax(-alpha-1, -alpha, reduced, ply+1, false)
				td.Stats.LmrResearches++
			} else {
				score = alpha + 1 // force the null-window probe below
			}
			if score > alpha {
				score = -td.negamax(-alpha-1, -alpha, depth-1, ply+1, false)
				if score > alpha && score < beta {
					score = -td.negamax(-beta, -alpha, depth-1, ply+1, true)
				}
			}
		}

		td.Pos.UndoMove()

		if td.stop.Load() {
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score > alpha {
			alpha = score
			td.pv.update(ply, m)
			if !isCaptureOrPromo && config.Settings.Search.UseHistoryCounter {
				td.history.add(m.MovedPiece(), m.To(), depth)
			}
			hashFlag = tt.FlagExact

			if score >= beta {
				td.Stats.recordCutoff(i)
				if config.Settings.Search.UseTT {
					td.table.Store(td.Pos.Hash(), m, depth, beta, tt.FlagBeta, ply)
				}
				if !isCaptureOrPromo && config.Settings.Search.UseKiller {
					td.killers.update(ply, m)
				}
				return beta
			}
		}
	}

	// Step 18: no legal move.
	if legalMoves == 0 {
		if inCheck {
			return -MateValue + ply
		}
		return Draw
	}

	// Step 19: TT store.
	if config.Settings.Search.UseTT {
		td.table.Store(td.Pos.Hash(), bestMove, depth, alpha, hashFlag, ply)
	}
	return alpha
}
