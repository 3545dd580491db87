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

// PieceType is a piece kind independent of color.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King

	PieceTypeLength = 6
	PieceTypeNone   = PieceType(PieceTypeLength)
)

var pieceTypeChar = [PieceTypeLength]string{"P", "N", "B", "R", "Q", "K"}

func (pt PieceType) Char() string {
	if pt < 0 || pt >= PieceTypeLength {
		return "-"
	}
	return pieceTypeChar[pt]
}

func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt < PieceTypeLength
}

// SeeValue returns the material value used by Static Exchange Evaluation
// and by move-ordering MVV-LVA, per spec §9's standard piece values.
var seeValue = [PieceTypeLength]int{100, 320, 330, 500, 900, 20000}

func (pt PieceType) SeeValue() int {
	return seeValue[pt]
}
