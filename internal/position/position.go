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

// Package position implements the mutable chess board: piece bitboards,
// make/unmake with full state restoration, Zobrist hashing and
// repetition tracking. It knows nothing about search or move generation
// beyond the attack tables it needs for legality and check detection.
package position

import (
	"fmt"
	"strings"

	"github.com/fraTorsello/Triumviratus-3.0/internal/assert"
	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	occWhite = 0
	occBlack = 1
	occBoth  = 2
)

// undoState snapshots everything DoMove cannot cheaply reconstruct on
// UndoMove: the captured piece (if any) and the four pieces of state
// that a move may touch (castling, en passant, fifty-move clock, hash).
type undoState struct {
	move          chess.Move
	capturedPiece chess.Piece
	castle        chess.CastlingRights
	ep            chess.Square
	fifty         int
	hash          uint64
}

// Position is the board state for one line of play. It is not safe for
// concurrent use - each search thread owns its own clone.
type Position struct {
	pieceBb [chess.PieceLength]chess.Bitboard
	occ     [3]chess.Bitboard
	board   [64]chess.Piece

	side   chess.Color
	ep     chess.Square
	castle chess.CastlingRights
	fifty  int
	hash   uint64

	kingSquare [chess.ColorLength]chess.Square

	history []undoState

	// repetitionHistory holds the hash after every half-move since the
	// start of the game (including hashes inherited from a FEN's move
	// history, when known) plus every hash reached inside the current
	// search line. rep_index is simply len(repetitionHistory)-1.
	repetitionHistory []uint64
}

// New creates the standard start position.
func New() *Position {
	p, err := NewFromFen(StartFen)
	if err != nil {
		panic("position: invalid built-in start FEN: " + err.Error())
	}
	return p
}

// Clone returns a deep copy, used to hand each search thread its own
// independent board.
func (p *Position) Clone() *Position {
	c := &Position{}
	*c = *p
	c.history = append([]undoState(nil), p.history...)
	c.repetitionHistory = append([]uint64(nil), p.repetitionHistory...)
	return c
}

// DoMove applies move m, which must be pseudo-legal for the side to
// move. It returns false (and fully restores the position) if the move
// leaves the mover's own king attacked - the sole legality filter per
// the make_move contract. capturesOnly restricts the move to captures,
// promotions and en passant; any other move is refused immediately
// without touching position state.
func (p *Position) DoMove(m chess.Move, capturesOnly bool) bool {
	if capturesOnly && !(m.IsCapture() || m.IsEnPassant() || m.IsPromotion()) {
		return false
	}

	assert.Assert(m.IsValid(), "DoMove: invalid move %s", m.String())

	fromSq := m.From()
	toSq := m.To()
	fromPc := p.board[fromSq]
	mover := fromPc.ColorOf()

	assert.Assert(fromPc != chess.PieceNone, "DoMove: no piece on %s", fromSq.String())
	assert.Assert(mover == p.side, "DoMove: piece on %s does not belong to side to move", fromSq.String())

	targetPc := p.board[toSq]

	p.history = append(p.history, undoState{
		move:          m,
		capturedPiece: targetPc,
		castle:        p.castle,
		ep:            p.ep,
		fifty:         p.fifty,
		hash:          p.hash,
	})

	switch {
	case m.IsCastling():
		p.doCastle(fromSq, toSq, mover)
	case m.IsEnPassant():
		p.doEnPassant(fromSq, toSq, mover)
	case m.IsPromotion():
		p.doPromotion(m, fromSq, toSq, mover, targetPc)
	default:
		p.doNormal(fromSq, toSq, fromPc, targetPc, mover)
	}

	p.updateCastlingRights(fromSq, toSq)

	p.side = p.side.Other()
	p.hash ^= chess.ZobristSideToMove()

	p.repetitionHistory = append(p.repetitionHistory, p.hash)

	if p.isAttacked(p.kingSquare[mover], mover.Other()) {
		p.UndoMove()
		return false
	}
	return true
}

// UndoMove reverts the most recent DoMove (or DoNullMove).
func (p *Position) UndoMove() {
	assert.Assert(len(p.history) > 0, "UndoMove: no move to undo")

	p.repetitionHistory = p.repetitionHistory[:len(p.repetitionHistory)-1]

	p.side = p.side.Other()
	last := len(p.history) - 1
	st := p.history[last]
	m := st.move

	if m != chess.MoveNone {
		switch {
		case m.IsCastling():
			p.undoCastle(m)
		case m.IsEnPassant():
			p.undoEnPassant(m)
		case m.IsPromotion():
			p.undoPromotion(m, st.capturedPiece)
		default:
			p.undoNormal(m, st.capturedPiece)
		}
	}

	p.castle = st.castle
	p.ep = st.ep
	p.fifty = st.fifty
	p.hash = st.hash

	p.history = p.history[:last]
}

// DoNullMove flips the side to move without moving a piece, used by
// null-move pruning. The en passant square (if any) is cleared, same as
// a real move would observe on the following ply.
func (p *Position) DoNullMove() {
	p.history = append(p.history, undoState{
		move:   chess.MoveNone,
		castle: p.castle,
		ep:     p.ep,
		fifty:  p.fifty,
		hash:   p.hash,
	})
	p.clearEnPassant()
	p.side = p.side.Other()
	p.hash ^= chess.ZobristSideToMove()
	p.repetitionHistory = append(p.repetitionHistory, p.hash)
}

// UndoNullMove reverts DoNullMove.
func (p *Position) UndoNullMove() {
	p.UndoMove()
}

func (p *Position) doNormal(fromSq, toSq chess.Square, fromPc, targetPc chess.Piece, mover chess.Color) {
	p.clearEnPassant()
	if targetPc != chess.PieceNone {
		p.removePiece(toSq)
		p.fifty = 0
	} else if fromPc.TypeOf() == chess.Pawn {
		p.fifty = 0
		if chess.SquareDistance(fromSq, toSq) == 2 {
			p.ep = toSq.To(chess.PawnPushDirection(mover.Other()))
			p.hash ^= chess.ZobristEpFile(p.ep.FileOf())
		}
	} else {
		p.fifty++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) undoNormal(m chess.Move, captured chess.Piece) {
	p.movePiece(m.To(), m.From())
	if captured != chess.PieceNone {
		p.putPiece(captured, m.To())
	}
}

func (p *Position) doCastle(fromSq, toSq chess.Square, mover chess.Color) {
	p.movePiece(fromSq, toSq)
	switch toSq {
	case chess.SqG1:
		p.movePiece(chess.SqH1, chess.SqF1)
	case chess.SqC1:
		p.movePiece(chess.SqA1, chess.SqD1)
	case chess.SqG8:
		p.movePiece(chess.SqH8, chess.SqF8)
	case chess.SqC8:
		p.movePiece(chess.SqA8, chess.SqD8)
	default:
		panic("position: invalid castling target " + toSq.String())
	}
	p.clearEnPassant()
	p.fifty++
}

func (p *Position) undoCastle(m chess.Move) {
	p.movePiece(m.To(), m.From())
	switch m.To() {
	case chess.SqG1:
		p.movePiece(chess.SqF1, chess.SqH1)
	case chess.SqC1:
		p.movePiece(chess.SqD1, chess.SqA1)
	case chess.SqG8:
		p.movePiece(chess.SqF8, chess.SqH8)
	case chess.SqC8:
		p.movePiece(chess.SqD8, chess.SqA8)
	}
}

func (p *Position) doEnPassant(fromSq, toSq chess.Square, mover chess.Color) {
	capSq := toSq.To(chess.PawnPushDirection(mover.Other()))
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.fifty = 0
}

func (p *Position) undoEnPassant(m chess.Move) {
	mover := p.side // side is already flipped back to the mover by UndoMove
	p.movePiece(m.To(), m.From())
	capSq := m.To().To(chess.PawnPushDirection(mover.Other()))
	p.putPiece(chess.MakePiece(mover.Other(), chess.Pawn), capSq)
}

func (p *Position) doPromotion(m chess.Move, fromSq, toSq chess.Square, mover chess.Color, targetPc chess.Piece) {
	if targetPc != chess.PieceNone {
		p.removePiece(toSq)
	}
	p.removePiece(fromSq)
	p.putPiece(chess.MakePiece(mover, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.fifty = 0
}

func (p *Position) undoPromotion(m chess.Move, captured chess.Piece) {
	p.removePiece(m.To())
	p.putPiece(chess.MakePiece(p.side, chess.Pawn), m.From())
	if captured != chess.PieceNone {
		p.putPiece(captured, m.To())
	}
}

// updateCastlingRights narrows p.castle by whatever rights the moving
// piece's origin and destination squares invalidate - rooks and kings
// leaving their home squares, or a rook being captured on its home
// square.
func (p *Position) updateCastlingRights(fromSq, toSq chess.Square) {
	newCastle := p.castle & chess.CastlingRightsMask(fromSq) & chess.CastlingRightsMask(toSq)
	if newCastle != p.castle {
		p.hash ^= chess.ZobristCastling(p.castle)
		p.castle = newCastle
		p.hash ^= chess.ZobristCastling(p.castle)
	}
}

func (p *Position) movePiece(from, to chess.Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) putPiece(piece chess.Piece, sq chess.Square) {
	assert.Assert(p.board[sq] == chess.PieceNone, "putPiece: %s already occupied", sq.String())
	color := piece.ColorOf()
	p.board[sq] = piece
	if piece.TypeOf() == chess.King {
		p.kingSquare[color] = sq
	}
	p.pieceBb[piece].PushSquare(sq)
	p.occ[color].PushSquare(sq)
	p.occ[occBoth].PushSquare(sq)
	p.hash ^= chess.ZobristPieceSquare(piece, sq)
}

func (p *Position) removePiece(sq chess.Square) chess.Piece {
	removed := p.board[sq]
	assert.Assert(removed != chess.PieceNone, "removePiece: %s already empty", sq.String())
	color := removed.ColorOf()
	p.board[sq] = chess.PieceNone
	p.pieceBb[removed].PopSquare(sq)
	p.occ[color].PopSquare(sq)
	p.occ[occBoth].PopSquare(sq)
	p.hash ^= chess.ZobristPieceSquare(removed, sq)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.ep != chess.SqNone {
		p.hash ^= chess.ZobristEpFile(p.ep.FileOf())
		p.ep = chess.SqNone
	}
}

// isAttacked reports whether sq is attacked by any piece of color by,
// via a reverse attack probe: walk an attacker of each kind outward
// from sq and see if it would hit a matching piece.
func (p *Position) isAttacked(sq chess.Square, by chess.Color) bool {
	occAll := p.occ[occBoth]
	if chess.PawnAttacks(by.Other(), sq)&p.pieceBb[chess.MakePiece(by, chess.Pawn)] != 0 {
		return true
	}
	if chess.KnightAttacks(sq)&p.pieceBb[chess.MakePiece(by, chess.Knight)] != 0 {
		return true
	}
	if chess.KingAttacks(sq)&p.pieceBb[chess.MakePiece(by, chess.King)] != 0 {
		return true
	}
	bishopsQueens := p.pieceBb[chess.MakePiece(by, chess.Bishop)] | p.pieceBb[chess.MakePiece(by, chess.Queen)]
	if chess.BishopAttacks(sq, occAll)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieceBb[chess.MakePiece(by, chess.Rook)] | p.pieceBb[chess.MakePiece(by, chess.Queen)]
	if chess.RookAttacks(sq, occAll)&rooksQueens != 0 {
		return true
	}
	return false
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func (p *Position) IsAttacked(sq chess.Square, by chess.Color) bool {
	return p.isAttacked(sq, by)
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.isAttacked(p.kingSquare[p.side], p.side.Other())
}

// IsRepetition reports whether the current hash has occurred at least
// reps times earlier within the tracked history (game history plus the
// current search line), which is the threefold-repetition draw check.
func (p *Position) IsRepetition(reps int) bool {
	if len(p.repetitionHistory) == 0 {
		return false
	}
	current := p.repetitionHistory[len(p.repetitionHistory)-1]
	count := 0
	// Repetitions require an identical side to move and castling rights,
	// which an identical hash already encodes; only positions since the
	// last irreversible move (capture or pawn move) can repeat, so the
	// scan can stop at the fifty-move-clock horizon.
	last := len(p.repetitionHistory) - 1
	limit := last - p.fifty
	if limit < 0 {
		limit = 0
	}
	for i := last - 2; i >= limit; i -= 2 {
		if p.repetitionHistory[i] == current {
			count++
			if count >= reps {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the half-move clock has reached the
// 100-ply (50 full move) threshold.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.fifty >= 100
}

// HasInsufficientMaterial reports the trivial draws: bare kings, or
// king plus a single minor piece against a bare king. A minor piece on
// each side is not reported as insufficient.
func (p *Position) HasInsufficientMaterial() bool {
	nonKingPieces := p.occ[occBoth] &^ (p.pieceBb[chess.WhiteKing] | p.pieceBb[chess.BlackKing])
	if nonKingPieces == chess.BbZero {
		return true
	}
	if nonKingPieces.PopCount() != 1 {
		return false
	}
	minor := p.pieceBb[chess.WhiteKnight] | p.pieceBb[chess.WhiteBishop] |
		p.pieceBb[chess.BlackKnight] | p.pieceBb[chess.BlackBishop]
	return nonKingPieces&minor != 0
}

// Hash returns the current Zobrist key.
func (p *Position) Hash() uint64 { return p.hash }

// SideToMove returns whose turn it is.
func (p *Position) SideToMove() chess.Color { return p.side }

// PieceOn returns the piece on sq, or PieceNone.
func (p *Position) PieceOn(sq chess.Square) chess.Piece { return p.board[sq] }

// PieceBb returns the bitboard for a single piece kind.
func (p *Position) PieceBb(pc chess.Piece) chess.Bitboard { return p.pieceBb[pc] }

// Occupied returns the combined occupancy of both sides.
func (p *Position) Occupied() chess.Bitboard { return p.occ[occBoth] }

// OccupiedBy returns the occupancy of one side.
func (p *Position) OccupiedBy(c chess.Color) chess.Bitboard {
	if c == chess.White {
		return p.occ[occWhite]
	}
	return p.occ[occBlack]
}

// EnPassant returns the en passant target square, or SqNone.
func (p *Position) EnPassant() chess.Square { return p.ep }

// Castling returns the current castling-rights mask.
func (p *Position) Castling() chess.CastlingRights { return p.castle }

// FiftyMoveCounter returns the half-move clock.
func (p *Position) FiftyMoveCounter() int { return p.fifty }

// KingSquare returns the square of the king of color c.
func (p *Position) KingSquare(c chess.Color) chess.Square { return p.kingSquare[c] }

// LastMove returns the most recently made move, or MoveNone at the root.
func (p *Position) LastMove() chess.Move {
	if len(p.history) == 0 {
		return chess.MoveNone
	}
	return p.history[len(p.history)-1].move
}

// String renders an ASCII board for debugging/logging.
func (p *Position) String() string {
	var b strings.Builder
	for sq := chess.SqA8; sq < chess.SqNone; sq++ {
		pc := p.board[sq]
		if pc == chess.PieceNone {
			b.WriteByte('.')
		} else {
			b.WriteString(pc.Char())
		}
		if sq.FileOf() == chess.FileH {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	fmt.Fprintf(&b, "side=%s castle=%s ep=%s fifty=%d hash=%016x\n",
		p.side, p.castle, p.ep, p.fifty, p.hash)
	return b.String()
}
