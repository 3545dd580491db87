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

// Package evaluator adapts a Position's bitboards into the sentinel
// terminated piece/square arrays the static evaluator expects, and
// loads its per-piece-type weights from an external file. The scoring
// function itself is a pure function of (side, pieces, squares,
// weights) - it never touches the board or search state directly.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/config"
	"github.com/fraTorsello/Triumviratus-3.0/internal/enginelog"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
)

var log *logging.Logger

func init() {
	log = enginelog.Std()
}

// maxPieces bounds the sentinel-terminated arrays passed to evaluate:
// a legal chess position holds at most 32 pieces (2 kings + 15 other
// pieces per side), so 34 is never exceeded.
const maxPieces = 34

// pieceNone terminates the pieces/squares arrays, mirroring spec §9's
// "sentinel-terminated" contract.
const pieceNone = chess.PieceNone

// Evaluator owns the loaded weights and reusable scratch arrays so
// Evaluate never allocates on the search hot path.
type Evaluator struct {
	weights *Weights
	pieces  [maxPieces + 1]chess.Piece
	squares [maxPieces + 1]chess.Square
}

// New creates an Evaluator with weights loaded from path. A missing or
// unreadable weights file is not an error here - it degrades to a
// zero-weight evaluator per spec §7, logged once at info level.
func New(path string) *Evaluator {
	w, err := LoadWeights(path)
	if err != nil {
		log.Infof("evaluator: weights file %q not usable (%v), falling back to zero weights", path, err)
		w = zeroWeights()
	}
	return &Evaluator{weights: w}
}

// Evaluate scores the position from the perspective of the side to
// move, in centipawns, scaled towards zero as the fifty-move clock
// approaches its limit so the search is biased towards draws near
// that boundary.
func (e *Evaluator) Evaluate(p *position.Position) int {
	side := p.SideToMove()
	n := e.marshal(p, side)
	cp := evaluate(side, e.pieces[:n], e.squares[:n], e.weights)
	return cp * (100 - p.FiftyMoveCounter()) / 100
}

// marshal fills the reusable scratch arrays: kings first, always at
// fixed absolute slots (slot 0 = White, slot 1 = Black) regardless of
// who is to move, since external evaluators key king features by
// color rather than by us/them. Remaining pieces of either color
// follow in bitboard iteration order relative to us/them, terminated
// by pieceNone/SqNone. Returns the number of entries written (not
// counting the sentinel).
func (e *Evaluator) marshal(p *position.Position, us chess.Color) int {
	them := us.Other()
	n := 0
	e.pieces[n], e.squares[n] = chess.MakePiece(chess.White, chess.King), p.KingSquare(chess.White)
	n++
	e.pieces[n], e.squares[n] = chess.MakePiece(chess.Black, chess.King), p.KingSquare(chess.Black)
	n++

	for _, c := range [2]chess.Color{us, them} {
		for pt := chess.Pawn; pt < chess.King; pt++ {
			bb := p.PieceBb(chess.MakePiece(c, pt))
			for bb != chess.BbZero {
				sq := bb.PopLsb()
				if n >= maxPieces {
					log.Warning("evaluator: piece array truncated, position has more than 34 pieces")
					return n
				}
				e.pieces[n], e.squares[n] = chess.MakePiece(c, pt), sq
				n++
			}
		}
	}

	e.pieces[n] = pieceNone
	e.squares[n] = chess.SqNone
	return n
}

// evaluate is the pure scoring function spec §9 treats as an external
// collaborator. In the absence of the real trained network this repo
// ships a material-only stand-in driven by the same externally loaded
// Weights - every other component (marshaling, weights loading,
// fifty-move scaling) exercises the full contract regardless of what
// eventually fills in the scoring itself.
func evaluate(side chess.Color, pieces []chess.Piece, squares []chess.Square, w *Weights) int {
	_ = squares
	var score [chess.ColorLength]int
	for _, pc := range pieces {
		if pc == pieceNone {
			break
		}
		score[pc.ColorOf()] += w.pieceValue[pc.TypeOf()]
	}
	cp := score[side] - score[side.Other()]
	return cp
}

// NewFromConfig is a convenience constructor reading the weights path
// out of the global search/eval configuration, used by internal/uci's
// NewHandler.
func NewFromConfig() *Evaluator {
	return New(config.Settings.Eval.WeightsFile)
}
