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

func (lhs CastlingRights) Has(rhs CastlingRights) bool { return lhs&rhs != 0 }

func (lhs *CastlingRights) Remove(rhs CastlingRights) { *lhs &^= rhs }

func (lhs *CastlingRights) Add(rhs CastlingRights) { *lhs |= rhs }

func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	s := ""
	if c.Has(WhiteKingside) {
		s += "K"
	}
	if c.Has(WhiteQueenside) {
		s += "Q"
	}
	if c.Has(BlackKingside) {
		s += "k"
	}
	if c.Has(BlackQueenside) {
		s += "q"
	}
	return s
}

// castlingRightsMask[sq] holds every right NOT invalidated by a king or
// rook moving from or to sq; the remaining rights after any move are
// castle & castlingRightsMask(from) & castlingRightsMask(to).
var castlingRightsMask [64]CastlingRights

func init() {
	for sq := range castlingRightsMask {
		castlingRightsMask[sq] = AllCastling
	}
	castlingRightsMask[SqE1] = AllCastling &^ (WhiteKingside | WhiteQueenside)
	castlingRightsMask[SqA1] = AllCastling &^ WhiteQueenside
	castlingRightsMask[SqH1] = AllCastling &^ WhiteKingside
	castlingRightsMask[SqE8] = AllCastling &^ (BlackKingside | BlackQueenside)
	castlingRightsMask[SqA8] = AllCastling &^ BlackQueenside
	castlingRightsMask[SqH8] = AllCastling &^ BlackKingside
}

func CastlingRightsMask(sq Square) CastlingRights { return castlingRightsMask[sq] }
