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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
)

func TestMissingWeightsFileDegradesToZero(t *testing.T) {
	e := New("/nonexistent/weights.bin")
	p := position.New()
	assert.Equal(t, 0, e.Evaluate(p))
}

func TestSymmetricStartPositionIsZero(t *testing.T) {
	e := &Evaluator{weights: &Weights{pieceValue: [6]int{100, 320, 330, 500, 900, 20000}}}
	p := position.New()
	assert.Equal(t, 0, e.Evaluate(p))
}

func TestMaterialAdvantageIsPositiveForSideUp(t *testing.T) {
	e := &Evaluator{weights: &Weights{pieceValue: [6]int{100, 320, 330, 500, 900, 20000}}}
	p, err := position.NewFromFen("4k3/8/8/8/8/8/8/QQ2K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, e.Evaluate(p), 0)
}

func TestMarshalKingSlotsAreAbsoluteNotRelative(t *testing.T) {
	e := &Evaluator{weights: &Weights{pieceValue: [6]int{100, 320, 330, 500, 900, 20000}}}
	p, err := position.NewFromFen("4k3/8/8/8/8/8/8/QQ2K3 w - - 0 1")
	assert.NoError(t, err)

	e.marshal(p, chess.White)
	assert.Equal(t, chess.MakePiece(chess.White, chess.King), e.pieces[0])
	assert.Equal(t, chess.MakePiece(chess.Black, chess.King), e.pieces[1])

	e.marshal(p, chess.Black)
	assert.Equal(t, chess.MakePiece(chess.White, chess.King), e.pieces[0])
	assert.Equal(t, chess.MakePiece(chess.Black, chess.King), e.pieces[1])
}

func TestFiftyMoveScalingShrinksScore(t *testing.T) {
	e := &Evaluator{weights: &Weights{pieceValue: [6]int{100, 320, 330, 500, 900, 20000}}}
	p, err := position.NewFromFen("4k3/8/8/8/8/8/8/QQ2K3 w - - 90 1")
	assert.NoError(t, err)
	full, err := position.NewFromFen("4k3/8/8/8/8/8/8/QQ2K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Less(t, e.Evaluate(p), e.Evaluate(full))
}
