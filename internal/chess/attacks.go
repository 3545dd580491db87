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

var (
	pawnAttacks   [ColorLength][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard

	rookMagics   [64]Magic
	bishopMagics [64]Magic
	rookTable    []Bitboard
	bishopTable  []Bitboard
)

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

var knightSteps = [8]Direction{
	North + North + East, North + North + West,
	South + South + East, South + South + West,
	East + East + North, East + East + South,
	West + West + North, West + West + South,
}

var kingSteps = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

func init() {
	initLeaperAttacks()
	initMagicBitboards()
}

func initLeaperAttacks() {
	for sq := SqA8; sq < SqNone; sq++ {
		// White pawns capture towards rank 8 (North); black towards rank 1 (South).
		pawnAttacks[White][sq] = leaperTargets(sq, []Direction{Northeast, Northwest})
		pawnAttacks[Black][sq] = leaperTargets(sq, []Direction{Southeast, Southwest})
		knightAttacks[sq] = leaperTargets(sq, knightSteps[:])
		kingAttacks[sq] = leaperTargets(sq, kingSteps[:])
	}
}

// leaperTargets builds the attack set for a one-step leaper (pawn capture,
// knight, king) by walking each direction and keeping squares no further
// than two Chebyshev steps away, so wrap-around jumps across the board
// edge are rejected.
func leaperTargets(sq Square, steps []Direction) Bitboard {
	var b Bitboard
	for _, d := range steps {
		to := sq.To(d)
		if to.IsValid() && SquareDistance(sq, to) <= 2 {
			b.PushSquare(to)
		}
	}
	return b
}

func initMagicBitboards() {
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

func PawnAttacks(c Color, sq Square) Bitboard   { return pawnAttacks[c][sq] }
func KnightAttacks(sq Square) Bitboard          { return knightAttacks[sq] }
func KingAttacks(sq Square) Bitboard            { return kingAttacks[sq] }
func RookMask(sq Square) Bitboard               { return rookMagics[sq].Mask }
func BishopMask(sq Square) Bitboard             { return bishopMagics[sq].Mask }

func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// SliderAttacks dispatches to the right magic table for a sliding piece
// type. Panics for non-slider types, matching the teacher's GetAttacksBb
// contract (pawns in particular are never addressed this way since their
// attacks depend on color, not just square).
func SliderAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		panic("SliderAttacks: not a sliding piece type")
	}
}
