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

// maxSeeDepth bounds the capture sequence SEE will simulate on one
// square; no legal position has more attackers on a square than this.
const maxSeeDepth = 32

// staticExchangeEval estimates the net material result of a capture
// sequence on move's target square, assuming both sides always
// recapture with their least valuable attacker. Never mutates p.
func staticExchangeEval(p *position.Position, move chess.Move) int {
	if move.IsEnPassant() {
		// The captured pawn is worth a pawn and the exchange practically
		// never loses the capturing pawn to a cheaper attacker sitting
		// behind it, so treat it as a simple winning capture.
		return chess.Pawn.SeeValue()
	}

	var gain [maxSeeDepth]int
	depth := 0

	toSq := move.To()
	fromSq := move.From()
	movedPiece := move.MovedPiece()
	side := move.MovedPiece().ColorOf()

	occupied := p.Occupied()
	attackers := attacksTo(p, toSq, occupied, chess.White) | attacksTo(p, toSq, occupied, chess.Black)

	gain[0] = p.PieceOn(toSq).SeeValue()

	for {
		depth++
		side = side.Other()

		if move.IsPromotion() && depth == 1 {
			gain[depth] = move.PromotionType().SeeValue() - chess.Pawn.SeeValue() - gain[depth-1]
		} else {
			gain[depth] = movedPiece.SeeValue() - gain[depth-1]
		}

		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attackers.PopSquare(fromSq)
		occupied.PopSquare(fromSq)
		attackers |= revealedAttacks(p, toSq, occupied, chess.White) | revealedAttacks(p, toSq, occupied, chess.Black)

		fromSq = leastValuableAttacker(p, attackers, side)
		if fromSq == chess.SqNone {
			break
		}
		movedPiece = p.PieceOn(fromSq)

		if depth == maxSeeDepth-1 {
			break
		}
	}

	depth--
	for depth > 0 {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
		depth--
	}
	return gain[0]
}

func attacksTo(p *position.Position, sq chess.Square, occupied chess.Bitboard, by chess.Color) chess.Bitboard {
	return (chess.PawnAttacks(by.Other(), sq) & p.PieceBb(chess.MakePiece(by, chess.Pawn))) |
		(chess.KnightAttacks(sq) & p.PieceBb(chess.MakePiece(by, chess.Knight))) |
		(chess.KingAttacks(sq) & p.PieceBb(chess.MakePiece(by, chess.King))) |
		(chess.RookAttacks(sq, occupied) & (p.PieceBb(chess.MakePiece(by, chess.Rook)) | p.PieceBb(chess.MakePiece(by, chess.Queen)))) |
		(chess.BishopAttacks(sq, occupied) & (p.PieceBb(chess.MakePiece(by, chess.Bishop)) | p.PieceBb(chess.MakePiece(by, chess.Queen))))
}

// revealedAttacks re-derives slider attacks once a piece has been
// removed from occupied, surfacing x-rays behind it. Only sliders can
// ever be revealed this way.
func revealedAttacks(p *position.Position, sq chess.Square, occupied chess.Bitboard, by chess.Color) chess.Bitboard {
	return (chess.RookAttacks(sq, occupied) & (p.PieceBb(chess.MakePiece(by, chess.Rook)) | p.PieceBb(chess.MakePiece(by, chess.Queen))) & occupied) |
		(chess.BishopAttacks(sq, occupied) & (p.PieceBb(chess.MakePiece(by, chess.Bishop)) | p.PieceBb(chess.MakePiece(by, chess.Queen))) & occupied)
}

func leastValuableAttacker(p *position.Position, attackers chess.Bitboard, by chess.Color) chess.Square {
	for pt := chess.Pawn; pt < chess.PieceTypeLength; pt++ {
		bb := attackers & p.PieceBb(chess.MakePiece(by, pt))
		if bb != chess.BbZero {
			return bb.Lsb()
		}
	}
	return chess.SqNone
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}
