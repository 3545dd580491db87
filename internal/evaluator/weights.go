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

package evaluator

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
)

// Weights holds the evaluator's tunable parameters, loaded from a flat
// binary file: six little-endian int32 piece values, in Pawn..King
// order. There is no ecosystem-standard format for this (it mirrors
// whatever the external network's export step produces), so the
// encoding/binary stdlib package is the right tool - no third-party
// example in the pack reaches for a serialization library here either.
type Weights struct {
	pieceValue [chess.PieceTypeLength]int
}

// LoadWeights reads a weights file. A missing file is reported as an
// error to the caller, which per spec §7 degrades to a zero-weight
// evaluator rather than failing engine startup.
func LoadWeights(path string) (*Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw [chess.PieceTypeLength]int32
	if err := binary.Read(f, binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("evaluator: reading weights from %q: %w", path, err)
	}

	w := &Weights{}
	for pt := chess.Pawn; pt < chess.PieceTypeLength; pt++ {
		w.pieceValue[pt] = int(raw[pt])
	}
	return w, nil
}

// zeroWeights produces a fallback evaluator, per spec §7's "weights file
// missing: evaluator returns 0; degrades gracefully".
func zeroWeights() *Weights {
	return &Weights{}
}
