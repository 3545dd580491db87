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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares. Bit k set means square k occupied.
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// Bb returns the singleton bitboard for a square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << sq
}

func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// Lsb returns the index of the least significant set bit.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the index of the most significant set bit.
func (b Bitboard) Msb() Square {
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

func (b Bitboard) String() string {
	var s strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Square(row*8 + col)
			if b.Has(sq) {
				s.WriteByte('1')
			} else {
				s.WriteByte('0')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}

var (
	fileBb [FileLength]Bitboard
	rankBb [RankLength]Bitboard
)

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		fileBb[sq.FileOf()].PushSquare(sq)
		rankBb[sq.RankOf()].PushSquare(sq)
	}
}

func (f File) Bb() Bitboard { return fileBb[f] }
func (r Rank) Bb() Bitboard { return rankBb[r] }

// ShiftBitboard shifts every set square one step in direction d,
// discarding squares that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return (b << 8) & BbAll
	case East:
		return (b &^ FileH.Bb()) << 1
	case West:
		return (b &^ FileA.Bb()) >> 1
	case Northeast:
		return (b &^ FileH.Bb()) >> 7
	case Northwest:
		return (b &^ FileA.Bb()) >> 9
	case Southeast:
		return ((b &^ FileH.Bb()) << 9) & BbAll
	case Southwest:
		return ((b &^ FileA.Bb()) << 7) & BbAll
	default:
		return BbZero
	}
}

// SquaresBb ORs together the bitboards of a variadic list of squares.
func SquaresBb(squares ...Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b.PushSquare(sq)
	}
	return b
}
