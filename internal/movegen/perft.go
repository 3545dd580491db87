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

package movegen

import (
	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
)

// Perft counts the number of leaf nodes reachable in exactly depth
// plies, generating and making every pseudo-legal move and discarding
// the ones make rejects as illegal. It exists to certify the move
// generator against the standard perft vectors - it is not used by the
// search itself.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list chess.MoveList
	GenerateAll(p, &list)

	if depth == 1 {
		var count uint64
		for i := 0; i < list.Len(); i++ {
			if p.DoMove(list.At(i), false) {
				count++
				p.UndoMove()
			}
		}
		return count
	}

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		if p.DoMove(list.At(i), false) {
			nodes += Perft(p, depth-1)
			p.UndoMove()
		}
	}
	return nodes
}

// PerftResult holds the per-root-move breakdown PerftDivide produces,
// matching the `perft divide` convention most engines expose for
// debugging move-generator discrepancies against a reference engine.
type PerftResult struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide runs Perft one ply deeper for every legal root move,
// returning the per-move leaf counts in generation order.
func PerftDivide(p *position.Position, depth int) []PerftResult {
	var list chess.MoveList
	GenerateAll(p, &list)

	results := make([]PerftResult, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !p.DoMove(m, false) {
			continue
		}
		var nodes uint64
		if depth > 1 {
			nodes = Perft(p, depth-1)
		} else {
			nodes = 1
		}
		p.UndoMove()
		results = append(results, PerftResult{Move: m, Nodes: nodes})
	}
	return results
}
