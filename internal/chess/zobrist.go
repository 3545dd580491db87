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

// Zobrist holds the random keys used to incrementally maintain a
// position's hash. A position's hash is the XOR of: the key for every
// piece on its square, the side-to-move key (applied when it is
// black's turn), the key for the current castling-rights mask, and the
// key for the en-passant file, if any.
var (
	zobristPieceSquare [PieceLength][64]uint64
	zobristCastling    [16]uint64
	zobristEpFile      [FileLength]uint64
	zobristSideToMove  uint64
)

// CastlingRights is a 4-bit mask: bit0 white kingside, bit1 white
// queenside, bit2 black kingside, bit3 black queenside.
type CastlingRights uint8

const (
	WhiteKingside  CastlingRights = 1 << 0
	WhiteQueenside CastlingRights = 1 << 1
	BlackKingside  CastlingRights = 1 << 2
	BlackQueenside CastlingRights = 1 << 3
	NoCastling     CastlingRights = 0
	AllCastling    CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

func init() {
	rng := newPrnG(0x9D2C5680)
	for p := Piece(0); p < PieceLength; p++ {
		for sq := SqA8; sq < SqNone; sq++ {
			zobristPieceSquare[p][sq] = rng.rand64()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.rand64()
	}
	for f := FileA; f < FileLength; f++ {
		zobristEpFile[f] = rng.rand64()
	}
	zobristSideToMove = rng.rand64()
}

func ZobristPieceSquare(p Piece, sq Square) uint64 { return zobristPieceSquare[p][sq] }
func ZobristCastling(rights CastlingRights) uint64 { return zobristCastling[rights] }
func ZobristEpFile(f File) uint64                  { return zobristEpFile[f] }
func ZobristSideToMove() uint64                    { return zobristSideToMove }
