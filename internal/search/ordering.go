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
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
)

// killerTable remembers, per ply, up to two quiet moves that recently
// caused a beta cutoff and are worth trying early at sibling nodes.
type killerTable [MaxPly][2]chess.Move

func (k *killerTable) update(ply int, move chess.Move) {
	if k[ply][0] == move {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = move
}

// historyTable scores quiet moves by how often they have raised alpha
// across the whole search tree, indexed by moved piece and destination
// square.
type historyTable [chess.PieceLength][64]int

func (h *historyTable) add(piece chess.Piece, to chess.Square, depth int) {
	h[piece][to] += depth
}

func (h *historyTable) score(piece chess.Piece, to chess.Square) int {
	return h[piece][to]
}

// Move ordering scores, per spec §4.4 step 14: TT/PV move first, then
// good captures, then killers, then losing captures, then quiet
// history. The tier bases below are disjoint, but history scores are
// not capped, so a quiet move with a large history count can sort
// ahead of a losing capture or a killer.
const (
	scoreTTMove       = 30_000
	scoreGoodCapture  = 10_000
	scoreKiller1      = 9_000
	scoreKiller2      = 8_000
	scoreLosingCapBase = 5_000
)

type scoredMove struct {
	move  chess.Move
	score int
}

// orderMoves scores every pseudo-legal move in list and selection-sorts
// it in place (spec's own words: "a simple selection sort suffices").
func orderMoves(p *position.Position, moves []chess.Move, ttMove chess.Move, killers *killerTable, ply int, history *historyTable) []scoredMove {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(p, m, ttMove, killers, ply, history)}
	}
	for i := 0; i < len(scored); i++ {
		best := i
		for j := i + 1; j < len(scored); j++ {
			if scored[j].score > scored[best].score {
				best = j
			}
		}
		if best != i {
			scored[i], scored[best] = scored[best], scored[i]
		}
	}
	return scored
}

func scoreMove(p *position.Position, m chess.Move, ttMove chess.Move, killers *killerTable, ply int, history *historyTable) int {
	if ttMove != chess.MoveNone && m == ttMove {
		return scoreTTMove
	}
	if m.IsCapture() || m.IsEnPassant() {
		see := staticExchangeEval(p, m)
		if see >= 0 {
			return scoreGoodCapture + see
		}
		return scoreLosingCapBase + see
	}
	if killers[ply][0] == m {
		return scoreKiller1
	}
	if killers[ply][1] == m {
		return scoreKiller2
	}
	return history.score(m.MovedPiece(), m.To())
}
