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

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/evaluator"
	"github.com/fraTorsello/Triumviratus-3.0/internal/movegen"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
	"github.com/fraTorsello/Triumviratus-3.0/internal/tt"
)

func newTestThreadData(t *testing.T, fen string) *ThreadData {
	t.Helper()
	p, err := position.NewFromFen(fen)
	assert.NoError(t, err)
	table := tt.New(4)
	eval := evaluator.New("/nonexistent/weights.bin")
	var stop atomic.Bool
	return NewThreadData(0, p, table, eval, &stop)
}

func TestFindsMateInOne(t *testing.T) {
	// White rook delivers back-rank mate with Ra8#.
	td := newTestThreadData(t, "6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	best := IterativeDeepening(td, time.Now(), 4, NopReporter)
	assert.Equal(t, "a1a8", best.UCI())
}

func TestCapturesHangingQueen(t *testing.T) {
	// Black queen hangs to the white knight, with nothing to recapture
	// with; the engine must prefer grabbing it over any other move.
	td := newTestThreadData(t, "4k3/8/8/8/4q3/8/3N4/4K3 w - - 0 1")
	best := IterativeDeepening(td, time.Now(), 5, NopReporter)
	assert.Equal(t, "d2e4", best.UCI())
}

func TestAvoidsStalemateInWinningEndgame(t *testing.T) {
	// Engine must not play a move that stalemates the defender when a
	// won continuation exists.
	td := newTestThreadData(t, "8/8/8/4k3/8/4K3/4Q3/8 w - - 0 1")
	best := IterativeDeepening(td, time.Now(), 6, NopReporter)

	after := td.Pos.Clone()
	assert.True(t, after.DoMove(best, false))
	assert.False(t, isStalemate(after))
}

func isStalemate(p *position.Position) bool {
	if p.InCheck() {
		return false
	}
	var list chess.MoveList
	movegen.GenerateAll(p, &list)
	for _, m := range list.Slice() {
		clone := p.Clone()
		if clone.DoMove(m, false) {
			return false
		}
	}
	return true
}

func TestNodesAreCounted(t *testing.T) {
	td := newTestThreadData(t, position.StartFen)
	IterativeDeepening(td, time.Now(), 3, NopReporter)
	assert.Greater(t, td.Nodes, uint64(0))
}

func TestStopFlagHaltsSearchButReturnsAMove(t *testing.T) {
	td := newTestThreadData(t, position.StartFen)
	td.stop.Store(true)
	best := IterativeDeepening(td, time.Now(), 10, NopReporter)
	assert.True(t, best.IsValid())
}

func TestReporterReceivesOnePerCompletedDepth(t *testing.T) {
	td := newTestThreadData(t, position.StartFen)
	rec := &recordingReporter{}
	IterativeDeepening(td, time.Now(), 3, rec)
	assert.Equal(t, 3, len(rec.infos))
	assert.Equal(t, 1, rec.infos[0].Depth)
	assert.Equal(t, 3, rec.infos[2].Depth)
}

type recordingReporter struct {
	infos []Info
}

func (r *recordingReporter) ReportInfo(i Info) {
	r.infos = append(r.infos, i)
}
