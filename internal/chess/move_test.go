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

func TestNewMoveQuiet(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, MoveFlags{DoublePush: true})
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.MovedPiece())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, "e2e4", m.UCI())
}

func TestNewMoveCapture(t *testing.T) {
	m := NewMove(SqD4, SqE5, WhiteBishop, MoveFlags{Capture: true})
	assert.True(t, m.IsCapture())
	assert.Equal(t, "d4e5", m.UCI())
}

func TestNewMovePromotion(t *testing.T) {
	m := NewMove(SqA7, SqA8, WhitePawn, MoveFlags{Promotion: Queen})
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "a7a8q", m.UCI())
}

func TestNewMoveEnPassantAndCastling(t *testing.T) {
	ep := NewMove(SqE5, SqD6, WhitePawn, MoveFlags{Capture: true, EnPassant: true})
	assert.True(t, ep.IsEnPassant())
	assert.True(t, ep.IsCapture())

	castle := NewMove(SqE1, SqG1, WhiteKing, MoveFlags{Castling: true})
	assert.True(t, castle.IsCastling())
	assert.Equal(t, "e1g1", castle.UCI())
}

func TestMoveNoneUCI(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.UCI())
	assert.False(t, MoveNone.IsValid())
}

func TestMoveListBasics(t *testing.T) {
	var l MoveList
	assert.Equal(t, 0, l.Len())
	l.Add(NewMove(SqE2, SqE4, WhitePawn, MoveFlags{DoublePush: true}))
	l.Add(NewMove(SqG1, SqF3, WhiteKnight, MoveFlags{}))
	assert.Equal(t, 2, l.Len())

	l.Swap(0, 1)
	assert.Equal(t, WhiteKnight, l.At(0).MovedPiece())
	assert.Equal(t, WhitePawn, l.At(1).MovedPiece())

	l.Clear()
	assert.Equal(t, 0, l.Len())
}
