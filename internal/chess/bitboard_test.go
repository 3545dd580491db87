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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareNumbering(t *testing.T) {
	assert.EqualValues(t, 0, SqA8)
	assert.EqualValues(t, 63, SqH1)
	assert.Equal(t, "a8", SqA8.String())
	assert.Equal(t, "h1", SqH1.String())
	assert.Equal(t, "e4", SqE4.String())
}

func TestSquareOfRoundTrip(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		got := SquareOf(sq.FileOf(), sq.RankOf())
		assert.Equal(t, sq, got, "square %s did not round-trip", sq)
	}
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA8, MakeSquare("a8"))
	assert.Equal(t, SqH1, MakeSquare("h1"))
	assert.Equal(t, SqE4, MakeSquare("e4"))
}

func TestBitboardSetAndPop(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	b.PushSquare(SqD5)
	assert.True(t, b.Has(SqE4))
	assert.True(t, b.Has(SqD5))
	assert.Equal(t, 2, b.PopCount())

	sq := b.PopLsb()
	assert.Equal(t, 1, b.PopCount())
	assert.False(t, b.Has(sq))
}

func TestShiftBitboardNoWrap(t *testing.T) {
	h := SqH4.Bb()
	assert.Equal(t, BbZero, ShiftBitboard(h, East))

	a := SqA4.Bb()
	assert.Equal(t, BbZero, ShiftBitboard(a, West))
}

func TestShiftBitboardNorthSouth(t *testing.T) {
	e4 := SqE4.Bb()
	assert.Equal(t, SqE5.Bb(), ShiftBitboard(e4, North))
	assert.Equal(t, SqE3.Bb(), ShiftBitboard(e4, South))
}

func TestSquareToDirection(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD4, SqE4.To(West))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA4.To(West))
}
