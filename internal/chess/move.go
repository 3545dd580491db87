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

package chess

import "strings"

// Move packs a chess move into the low 24 bits of a uint32:
//
//	bits  0- 5: source square
//	bits  6-11: target square
//	bits 12-15: moved piece            (0..11)
//	bits 16-19: promotion piece type   (0 = none, else Knight..Queen)
//	bit     20: capture flag
//	bit     21: double pawn push flag
//	bit     22: en-passant flag
//	bit     23: castling flag
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePieceShift = 12
	movePromoShift = 16

	moveCaptureBit  = 20
	moveDoubleBit   = 21
	moveEpBit       = 22
	moveCastleBit   = 23

	moveSquareMask = 0x3F
	movePieceMask  = 0xF
	movePromoMask  = 0xF
)

// MoveNone is the zero value and never a legal move.
const MoveNone Move = 0

// MoveFlags bundles the boolean flags of a move for the constructor.
type MoveFlags struct {
	Capture     bool
	DoublePush  bool
	EnPassant   bool
	Castling    bool
	Promotion   PieceType // the zero value (Pawn, 0) means no promotion
}

// NewMove packs a move. promo should be PieceType's zero value (Pawn,
// which can never legally be a promotion target) when there is no
// promotion, or one of Knight/Bishop/Rook/Queen otherwise.
func NewMove(from, to Square, moved Piece, flags MoveFlags) Move {
	m := Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(moved)<<movePieceShift |
		Move(flags.Promotion)<<movePromoShift
	if flags.Capture {
		m |= 1 << moveCaptureBit
	}
	if flags.DoublePush {
		m |= 1 << moveDoubleBit
	}
	if flags.EnPassant {
		m |= 1 << moveEpBit
	}
	if flags.Castling {
		m |= 1 << moveCastleBit
	}
	return m
}

func (m Move) From() Square  { return Square((m >> moveFromShift) & moveSquareMask) }
func (m Move) To() Square    { return Square((m >> moveToShift) & moveSquareMask) }
func (m Move) MovedPiece() Piece { return Piece((m >> movePieceShift) & movePieceMask) }

// PromotionType returns Pawn (the zero value) when the move is not a
// promotion, otherwise Knight/Bishop/Rook/Queen.
func (m Move) PromotionType() PieceType {
	return PieceType((m >> movePromoShift) & movePromoMask)
}

func (m Move) IsPromotion() bool { return m.PromotionType() != Pawn }
func (m Move) IsCapture() bool   { return m&(1<<moveCaptureBit) != 0 }
func (m Move) IsDoublePush() bool { return m&(1<<moveDoubleBit) != 0 }
func (m Move) IsEnPassant() bool  { return m&(1<<moveEpBit) != 0 }
func (m Move) IsCastling() bool   { return m&(1<<moveCastleBit) != 0 }

func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.MovedPiece().IsValid()
}

// UCI returns the UCI wire representation of the move, e.g. "e2e4" or
// "a7a8q" for a promotion.
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var s strings.Builder
	s.WriteString(m.From().String())
	s.WriteString(m.To().String())
	if m.IsPromotion() {
		s.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return s.String()
}

func (m Move) String() string {
	return m.UCI()
}
