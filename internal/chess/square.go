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

// Square is a board square. Square 0 is a8, square 63 is h1: rank-major,
// top-down. File a..h are columns 0..7 within each rank.
type Square uint8

const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
)

// File is a board column, 0 = a .. 7 = h.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength
)

func (f File) IsValid() bool { return f >= FileA && f < FileLength }
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + f))
}

// Rank is the chess rank number, 0 = rank1 .. 7 = rank8 (NOT the row
// index used internally by Square, which runs the opposite way).
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankLength
)

func (r Rank) IsValid() bool { return r >= Rank1 && r < RankLength }
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + r))
}

// row returns the internal top-down row (0 = rank8's row).
func (sq Square) row() int { return int(sq) / 8 }
func (sq Square) col() int { return int(sq) % 8 }

func (sq Square) IsValid() bool { return sq < SqNone }

func (sq Square) FileOf() File { return File(sq.col()) }

func (sq Square) RankOf() Rank { return Rank(7 - sq.row()) }

// SquareOf returns the square for a given file and rank, or SqNone if
// either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	row := 7 - int(r)
	return Square(row*8 + int(f))
}

// MakeSquare parses a two-character algebraic square like "e4".
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return SquareOf(f, r)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by moving one step in the given
// direction, or SqNone if that would leave the board.
func (sq Square) To(d Direction) Square {
	col := sq.col()
	switch d {
	case East, Northeast, Southeast:
		if col == 7 {
			return SqNone
		}
	case West, Northwest, Southwest:
		if col == 0 {
			return SqNone
		}
	}
	n := int(sq) + int(d)
	if n < 0 || n > 63 {
		return SqNone
	}
	return Square(n)
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	df := a.FileOf() - b.FileOf()
	if df < 0 {
		df = -df
	}
	dr := a.RankOf() - b.RankOf()
	if dr < 0 {
		dr = -dr
	}
	if int(df) > int(dr) {
		return int(df)
	}
	return int(dr)
}
