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

// Package movegen generates pseudo-legal moves from a position. Legality
// (own king left in check) is not checked here - the caller applies the
// move via position.DoMove, which rejects it and restores state if it
// turns out illegal.
package movegen

import (
	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
)

// GenerateAll appends every pseudo-legal move (quiet and capturing) for
// the side to move into list.
func GenerateAll(p *position.Position, list *chess.MoveList) {
	generate(p, list, false)
}

// GenerateCaptures appends only pseudo-legal captures (including
// capturing promotions and en passant), for use by quiescence search.
// Non-capturing promotions are not generated.
func GenerateCaptures(p *position.Position, list *chess.MoveList) {
	generate(p, list, true)
}

func generate(p *position.Position, list *chess.MoveList, capturesOnly bool) {
	side := p.SideToMove()
	own := p.OccupiedBy(side)
	enemy := p.OccupiedBy(side.Other())
	occAll := p.Occupied()

	generatePawnMoves(p, list, side, own, enemy, capturesOnly)
	generateLeaperMoves(p, list, chess.MakePiece(side, chess.Knight), chess.KnightAttacks, own, enemy, capturesOnly)
	generateLeaperMoves(p, list, chess.MakePiece(side, chess.King), chess.KingAttacks, own, enemy, capturesOnly)
	generateSliderMoves(p, list, chess.MakePiece(side, chess.Bishop), chess.Bishop, own, enemy, occAll, capturesOnly)
	generateSliderMoves(p, list, chess.MakePiece(side, chess.Rook), chess.Rook, own, enemy, occAll, capturesOnly)
	generateSliderMoves(p, list, chess.MakePiece(side, chess.Queen), chess.Queen, own, enemy, occAll, capturesOnly)
	if !capturesOnly {
		generateCastlingMoves(p, list, side, occAll)
	}
}

func generateLeaperMoves(p *position.Position, list *chess.MoveList, piece chess.Piece, attacksOf func(chess.Square) chess.Bitboard, own, enemy chess.Bitboard, capturesOnly bool) {
	bb := p.PieceBb(piece)
	for bb != chess.BbZero {
		from := bb.PopLsb()
		targets := attacksOf(from) &^ own
		if capturesOnly {
			targets &= enemy
		}
		for targets != chess.BbZero {
			to := targets.PopLsb()
			list.Add(chess.NewMove(from, to, piece, chess.MoveFlags{Capture: enemy.Has(to)}))
		}
	}
}

func generateSliderMoves(p *position.Position, list *chess.MoveList, piece chess.Piece, pt chess.PieceType, own, enemy, occAll chess.Bitboard, capturesOnly bool) {
	bb := p.PieceBb(piece)
	for bb != chess.BbZero {
		from := bb.PopLsb()
		targets := chess.SliderAttacks(pt, from, occAll) &^ own
		if capturesOnly {
			targets &= enemy
		}
		for targets != chess.BbZero {
			to := targets.PopLsb()
			list.Add(chess.NewMove(from, to, piece, chess.MoveFlags{Capture: enemy.Has(to)}))
		}
	}
}

func generatePawnMoves(p *position.Position, list *chess.MoveList, side chess.Color, own, enemy chess.Bitboard, capturesOnly bool) {
	piece := chess.MakePiece(side, chess.Pawn)
	pawns := p.PieceBb(piece)
	occAll := own | enemy
	push := chess.PawnPushDirection(side)
	promoRank := side.PromotionRank()
	startRank := side.PawnStartRank()

	for bb := pawns; bb != chess.BbZero; {
		from := bb.PopLsb()

		if !capturesOnly {
			one := from.To(push)
			if one != chess.SqNone && !occAll.Has(one) {
				addPawnMoves(list, piece, from, one, false, promoRank)
				if from.RankOf() == startRank {
					two := one.To(push)
					if two != chess.SqNone && !occAll.Has(two) {
						list.Add(chess.NewMove(from, two, piece, chess.MoveFlags{DoublePush: true}))
					}
				}
			}
		}

		captures := chess.PawnAttacks(side, from) & enemy
		for captures != chess.BbZero {
			to := captures.PopLsb()
			addPawnMoves(list, piece, from, to, true, promoRank)
		}

		if ep := p.EnPassant(); ep != chess.SqNone && chess.PawnAttacks(side, from).Has(ep) {
			list.Add(chess.NewMove(from, ep, piece, chess.MoveFlags{Capture: true, EnPassant: true}))
		}
	}
}

func addPawnMoves(list *chess.MoveList, piece chess.Piece, from, to chess.Square, capture bool, promoRank chess.Rank) {
	if to.RankOf() == promoRank {
		for _, promo := range [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
			list.Add(chess.NewMove(from, to, piece, chess.MoveFlags{Capture: capture, Promotion: promo}))
		}
		return
	}
	list.Add(chess.NewMove(from, to, piece, chess.MoveFlags{Capture: capture}))
}

func generateCastlingMoves(p *position.Position, list *chess.MoveList, side chess.Color, occAll chess.Bitboard) {
	castle := p.Castling()
	opponent := side.Other()

	if side == chess.White {
		if castle.Has(chess.WhiteKingside) &&
			occAll&chess.SquaresBb(chess.SqF1, chess.SqG1) == chess.BbZero &&
			!p.IsAttacked(chess.SqE1, opponent) && !p.IsAttacked(chess.SqF1, opponent) {
			list.Add(chess.NewMove(chess.SqE1, chess.SqG1, chess.WhiteKing, chess.MoveFlags{Castling: true}))
		}
		if castle.Has(chess.WhiteQueenside) &&
			occAll&chess.SquaresBb(chess.SqB1, chess.SqC1, chess.SqD1) == chess.BbZero &&
			!p.IsAttacked(chess.SqE1, opponent) && !p.IsAttacked(chess.SqD1, opponent) {
			list.Add(chess.NewMove(chess.SqE1, chess.SqC1, chess.WhiteKing, chess.MoveFlags{Castling: true}))
		}
		return
	}

	if castle.Has(chess.BlackKingside) &&
		occAll&chess.SquaresBb(chess.SqF8, chess.SqG8) == chess.BbZero &&
		!p.IsAttacked(chess.SqE8, opponent) && !p.IsAttacked(chess.SqF8, opponent) {
		list.Add(chess.NewMove(chess.SqE8, chess.SqG8, chess.BlackKing, chess.MoveFlags{Castling: true}))
	}
	if castle.Has(chess.BlackQueenside) &&
		occAll&chess.SquaresBb(chess.SqB8, chess.SqC8, chess.SqD8) == chess.BbZero &&
		!p.IsAttacked(chess.SqE8, opponent) && !p.IsAttacked(chess.SqD8, opponent) {
		list.Add(chess.NewMove(chess.SqE8, chess.SqC8, chess.BlackKing, chess.MoveFlags{Castling: true}))
	}
}
