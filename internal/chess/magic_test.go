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

func TestRookAttacksEmptyBoardCorners(t *testing.T) {
	att := RookAttacks(SqA8, BbZero)
	assert.Equal(t, 14, att.PopCount())
	assert.True(t, att.Has(SqH8))
	assert.True(t, att.Has(SqA1))
	assert.False(t, att.Has(SqA8))
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := SquaresBb(SqE4, SqE6, SqA4, SqH4)
	att := RookAttacks(SqE4, occ)
	assert.True(t, att.Has(SqE5))
	assert.True(t, att.Has(SqE6))
	assert.False(t, att.Has(SqE7))
	assert.True(t, att.Has(SqA4))
	assert.True(t, att.Has(SqH4))
	assert.False(t, att.Has(SqE4))
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	att := BishopAttacks(SqE4, BbZero)
	assert.True(t, att.Has(SqA8))
	assert.True(t, att.Has(SqH1))
	assert.True(t, att.Has(SqB1))
	assert.True(t, att.Has(SqH7))
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := SquaresBb(SqE6, SqC4)
	rook := RookAttacks(SqE4, occ)
	bishop := BishopAttacks(SqE4, occ)
	queen := QueenAttacks(SqE4, occ)
	assert.Equal(t, rook|bishop, queen)
}

func TestKnightAttacksCorner(t *testing.T) {
	att := KnightAttacks(SqA8)
	assert.Equal(t, 2, att.PopCount())
	assert.True(t, att.Has(SqB6))
	assert.True(t, att.Has(SqC7))
}

func TestKingAttacksCenterVsCorner(t *testing.T) {
	assert.Equal(t, 8, KingAttacks(SqE4).PopCount())
	assert.Equal(t, 3, KingAttacks(SqA8).PopCount())
}

func TestPawnAttacks(t *testing.T) {
	white := PawnAttacks(White, SqE4)
	assert.True(t, white.Has(SqD5))
	assert.True(t, white.Has(SqF5))
	assert.Equal(t, 2, white.PopCount())

	black := PawnAttacks(Black, SqE4)
	assert.True(t, black.Has(SqD3))
	assert.True(t, black.Has(SqF3))
}
