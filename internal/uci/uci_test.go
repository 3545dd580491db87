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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUciCommandEmitsIdAndUciok(t *testing.T) {
	h := NewHandler()
	result := h.Command("uci")
	assert.Contains(t, result, "id name")
	assert.Contains(t, result, "id author")
	assert.Contains(t, result, "option name Hash")
	assert.Contains(t, result, "option name Threads")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyEmitsReadyOk(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposThenMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1", h.pos.Fen())
}

func TestPositionFen(t *testing.T) {
	h := NewHandler()
	fen := "4k3/8/8/8/4q3/8/3N4/4K3 w - - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.Fen())
}

func TestPositionRejectsIllegalMoveInList(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e2e4")
	// Second move is illegal (no white piece left on e2 to move again);
	// it and everything after it is silently dropped, so only the first
	// e2e4 is applied.
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", h.pos.Fen())
}

func TestGoDepthEmitsBestmove(t *testing.T) {
	h := NewHandler()
	h.Command("position fen 6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	result := h.Command("go depth 4")
	assert.Contains(t, result, "bestmove a1a8")
}

func TestStopDoesNotPanicWithoutSearch(t *testing.T) {
	h := NewHandler()
	assert.NotPanics(t, func() { h.Command("stop") })
}

func TestSetOptionHashResizesTable(t *testing.T) {
	h := NewHandler()
	h.Command("setoption name Hash value 8")
	assert.LessOrEqual(t, h.driver.Table().SizeInBytes(), uint64(8*1024*1024))
}

func TestSetOptionThreadsResizesPool(t *testing.T) {
	h := NewHandler()
	h.Command("setoption name Threads value 3")
	assert.Equal(t, 3, h.driver.Threads())
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	h := NewHandler()
	assert.NotPanics(t, func() { h.Command("frobnicate") })
}

func TestLoopStopsOnQuit(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}
