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

// MaxMoves is a generous upper bound on the number of pseudo-legal moves
// any chess position can produce.
const MaxMoves = 256

// MoveList is a fixed-capacity, allocation-free vector of moves, reused
// across plies by the search so move generation never touches the heap.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

func (l *MoveList) Clear() { l.n = 0 }
func (l *MoveList) Len() int { return l.n }

func (l *MoveList) Add(m Move) {
	if l.n < MaxMoves {
		l.moves[l.n] = m
		l.n++
	}
}

func (l *MoveList) At(i int) Move { return l.moves[i] }
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

func (l *MoveList) Slice() []Move { return l.moves[:l.n] }

// Swap exchanges the moves at i and j, used by the search's in-place
// selection sort over move-ordering scores.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}
