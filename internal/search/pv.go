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

package search

import "github.com/fraTorsello/Triumviratus-3.0/internal/chess"

// triangularPV holds the principal variation of an in-progress search.
// line[ply] holds the continuation starting at ply; length[ply] is how
// much of that row is populated. Row ply only ever needs columns
// ply..MaxPly-1, hence "triangular".
type triangularPV struct {
	line   [MaxPly][MaxPly]chess.Move
	length [MaxPly]int
}

func (t *triangularPV) reset(ply int) {
	t.length[ply] = ply
}

// update records move as the best move at ply and appends the
// continuation found one ply deeper, per spec step 17 ("write current
// move at PV[ply][ply], copy descendant PV to PV[ply][ply+1..]").
func (t *triangularPV) update(ply int, move chess.Move) {
	t.line[ply][ply] = move
	for next := ply + 1; next < t.length[ply+1]; next++ {
		t.line[ply][next] = t.line[ply+1][next]
	}
	t.length[ply] = t.length[ply+1]
}

// Best returns the full principal variation currently held for the
// root, root move first.
func (t *triangularPV) Best() []chess.Move {
	n := t.length[0]
	if n <= 0 {
		return nil
	}
	out := make([]chess.Move, n)
	copy(out, t.line[0][:n])
	return out
}

func (t *triangularPV) bestMove() chess.Move {
	if t.length[0] <= 0 {
		return chess.MoveNone
	}
	return t.line[0][0]
}
