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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
)

func TestNewStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, chess.White, p.SideToMove())
	assert.Equal(t, chess.AllCastling, p.Castling())
	assert.Equal(t, chess.SqNone, p.EnPassant())
	assert.Equal(t, chess.SqE1, p.KingSquare(chess.White))
	assert.Equal(t, chess.SqE8, p.KingSquare(chess.Black))
	assert.Equal(t, 16, p.OccupiedBy(chess.White).PopCount())
	assert.Equal(t, 16, p.OccupiedBy(chess.Black).PopCount())
}

func TestFenRoundTrip(t *testing.T) {
	p := New()
	assert.Equal(t, StartFen, p.Fen())
}

func TestDoUndoMoveRestoresHash(t *testing.T) {
	p := New()
	before := p.Hash()

	m := chess.NewMove(chess.SqE2, chess.SqE4, chess.WhitePawn, chess.MoveFlags{DoublePush: true})
	ok := p.DoMove(m, false)
	assert.True(t, ok)
	assert.NotEqual(t, before, p.Hash())
	assert.Equal(t, chess.SqE3, p.EnPassant())
	assert.Equal(t, chess.Black, p.SideToMove())

	p.UndoMove()
	assert.Equal(t, before, p.Hash())
	assert.Equal(t, chess.White, p.SideToMove())
	assert.Equal(t, chess.SqNone, p.EnPassant())
	assert.Equal(t, chess.WhitePawn, p.PieceOn(chess.SqE2))
	assert.Equal(t, chess.PieceNone, p.PieceOn(chess.SqE4))
}

func TestCastlingUpdatesRightsAndRookSquare(t *testing.T) {
	p, err := NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	m := chess.NewMove(chess.SqE1, chess.SqG1, chess.WhiteKing, chess.MoveFlags{Castling: true})
	ok := p.DoMove(m, false)
	assert.True(t, ok)
	assert.Equal(t, chess.WhiteKing, p.PieceOn(chess.SqG1))
	assert.Equal(t, chess.WhiteRook, p.PieceOn(chess.SqF1))
	assert.False(t, p.Castling().Has(chess.WhiteKingside))
	assert.False(t, p.Castling().Has(chess.WhiteQueenside))
	assert.True(t, p.Castling().Has(chess.BlackKingside))

	before := p.Fen()
	p.UndoMove()
	assert.Equal(t, chess.WhiteKing, p.PieceOn(chess.SqE1))
	assert.Equal(t, chess.WhiteRook, p.PieceOn(chess.SqH1))
	assert.True(t, p.Castling().Has(chess.WhiteKingside))
	assert.NotEqual(t, before, p.Fen())
}

func TestIllegalMoveLeavesKingInCheckIsRejected(t *testing.T) {
	// White king on e1 pinned by the black rook on e8; moving the e2 knight
	// off the e-file exposes check and must be rejected with full state
	// restoration.
	p, err := NewFromFen("4r3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := p.Fen()

	m := chess.NewMove(chess.SqE2, chess.SqC3, chess.WhiteKnight, chess.MoveFlags{})
	ok := p.DoMove(m, false)
	assert.False(t, ok)
	assert.Equal(t, before, p.Fen())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewFromFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)

	m := chess.NewMove(chess.SqE5, chess.SqD6, chess.WhitePawn, chess.MoveFlags{Capture: true, EnPassant: true})
	ok := p.DoMove(m, false)
	assert.True(t, ok)
	assert.Equal(t, chess.WhitePawn, p.PieceOn(chess.SqD6))
	assert.Equal(t, chess.PieceNone, p.PieceOn(chess.SqD5))

	p.UndoMove()
	assert.Equal(t, chess.WhitePawn, p.PieceOn(chess.SqE5))
	assert.Equal(t, chess.BlackPawn, p.PieceOn(chess.SqD5))
	assert.Equal(t, chess.PieceNone, p.PieceOn(chess.SqD6))
}

func TestPromotionCapture(t *testing.T) {
	p, err := NewFromFen("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	m := chess.NewMove(chess.SqA7, chess.SqB8, chess.WhitePawn, chess.MoveFlags{Capture: true, Promotion: chess.Queen})
	ok := p.DoMove(m, false)
	assert.True(t, ok)
	assert.Equal(t, chess.WhiteQueen, p.PieceOn(chess.SqB8))

	p.UndoMove()
	assert.Equal(t, chess.WhitePawn, p.PieceOn(chess.SqA7))
	assert.Equal(t, chess.BlackKnight, p.PieceOn(chess.SqB8))
}

func TestInsufficientMaterial(t *testing.T) {
	p, err := NewFromFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())

	p2, err := NewFromFen("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p2.HasInsufficientMaterial())

	p3, err := NewFromFen("4k3/8/8/8/8/8/8/RN2K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p3.HasInsufficientMaterial())
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	c := p.Clone()
	m := chess.NewMove(chess.SqE2, chess.SqE4, chess.WhitePawn, chess.MoveFlags{DoublePush: true})
	c.DoMove(m, false)
	assert.NotEqual(t, p.Hash(), c.Hash())
	assert.Equal(t, chess.WhitePawn, p.PieceOn(chess.SqE2))
}
