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
	"fmt"
	"strconv"
	"strings"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
)

var fenPieceChar = map[byte]chess.Piece{
	'P': chess.WhitePawn, 'N': chess.WhiteKnight, 'B': chess.WhiteBishop,
	'R': chess.WhiteRook, 'Q': chess.WhiteQueen, 'K': chess.WhiteKing,
	'p': chess.BlackPawn, 'n': chess.BlackKnight, 'b': chess.BlackBishop,
	'r': chess.BlackRook, 'q': chess.BlackQueen, 'k': chess.BlackKing,
}

// NewFromFen builds a Position from a FEN board/state description.
// FEN parsing is boundary plumbing, not core engine logic - it exists
// here only so tests and the UCI `position fen ...` command have a way
// to construct non-start positions.
func NewFromFen(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: fen %q has too few fields", fen)
	}

	p := &Position{ep: chess.SqNone}
	for sq := range p.board {
		p.board[sq] = chess.PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: fen %q does not have 8 ranks", fen)
	}
	sq := chess.SqA8
	for _, rankStr := range ranks {
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				sq += chess.Square(c - '0')
				continue
			}
			pc, ok := fenPieceChar[c]
			if !ok {
				return nil, fmt.Errorf("position: fen %q has invalid piece char %q", fen, c)
			}
			p.putPiece(pc, sq)
			sq++
		}
	}

	switch fields[1] {
	case "w":
		p.side = chess.White
	case "b":
		p.side = chess.Black
		p.hash ^= chess.ZobristSideToMove()
	default:
		return nil, fmt.Errorf("position: fen %q has invalid side to move %q", fen, fields[1])
	}

	p.castle = chess.NoCastling
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castle.Add(chess.WhiteKingside)
			case 'Q':
				p.castle.Add(chess.WhiteQueenside)
			case 'k':
				p.castle.Add(chess.BlackKingside)
			case 'q':
				p.castle.Add(chess.BlackQueenside)
			default:
				return nil, fmt.Errorf("position: fen %q has invalid castling char %q", fen, c)
			}
		}
	}
	p.hash ^= chess.ZobristCastling(p.castle)

	if fields[3] != "-" {
		p.ep = chess.MakeSquare(fields[3])
		if p.ep == chess.SqNone {
			return nil, fmt.Errorf("position: fen %q has invalid en passant square %q", fen, fields[3])
		}
		p.hash ^= chess.ZobristEpFile(p.ep.FileOf())
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("position: fen %q has invalid half-move clock: %w", fen, err)
		}
		p.fifty = n
	}

	p.repetitionHistory = append(p.repetitionHistory, p.hash)

	return p, nil
}

// Fen renders the current position as a FEN string (board, side,
// castling, en passant and half-move clock; the full-move number is
// not tracked by Position and is always written as 1).
func (p *Position) Fen() string {
	var b strings.Builder
	for rank := chess.Rank8; ; rank-- {
		empty := 0
		for file := chess.FileA; file < chess.FileLength; file++ {
			sq := chess.SquareOf(file, rank)
			pc := p.board[sq]
			if pc == chess.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank == chess.Rank1 {
			break
		}
		b.WriteByte('/')
	}

	if p.side == chess.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}
	b.WriteString(p.castle.String())
	b.WriteByte(' ')
	if p.ep == chess.SqNone {
		b.WriteByte('-')
	} else {
		b.WriteString(p.ep.String())
	}
	fmt.Fprintf(&b, " %d 1", p.fifty)
	return b.String()
}
