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

// Piece enumerates the 12 piece kinds: white P,N,B,R,Q,K occupy 0..5,
// black p,n,b,r,q,k occupy 6..11, matching piece_bb[12] indexing.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	PieceLength = 12
	PieceNone   = Piece(PieceLength)
)

var pieceChar = [PieceLength]string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k"}

// MakePiece composes a Piece from a Color and a PieceType.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*PieceTypeLength + int(pt))
}

func (p Piece) ColorOf() Color {
	if p < PieceTypeLength {
		return White
	}
	return Black
}

func (p Piece) TypeOf() PieceType {
	return PieceType(int(p) % PieceTypeLength)
}

func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceLength
}

func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return pieceChar[p]
}

func (p Piece) String() string {
	return p.Char()
}
