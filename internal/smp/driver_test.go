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

package smp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fraTorsello/Triumviratus-3.0/internal/evaluator"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
	"github.com/fraTorsello/Triumviratus-3.0/internal/search"
	"github.com/fraTorsello/Triumviratus-3.0/internal/tt"
)

func newTestDriver(t *testing.T, threads int) *Driver {
	t.Helper()
	table := tt.New(4)
	eval := evaluator.New("/nonexistent/weights.bin")
	return NewDriver(threads, table, eval)
}

func TestGoReturnsLegalMoveSingleThreaded(t *testing.T) {
	d := newTestDriver(t, 1)
	p, err := position.NewFromFen("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	assert.NoError(t, err)

	limits := search.NewLimits()
	limits.Depth = 4
	best := d.Go(p, limits, search.NopReporter)
	assert.Equal(t, "a1a8", best.UCI())
}

func TestGoReturnsLegalMoveMultiThreaded(t *testing.T) {
	d := newTestDriver(t, 4)
	p, err := position.NewFromFen(position.StartFen)
	assert.NoError(t, err)

	limits := search.NewLimits()
	limits.Depth = 3
	best := d.Go(p, limits, search.NopReporter)
	assert.True(t, best.IsValid())
	assert.Greater(t, d.TotalNodes(), uint64(0))
}

func TestSetThreadsClampsToRange(t *testing.T) {
	d := newTestDriver(t, 1)
	d.SetThreads(0)
	assert.Equal(t, 1, d.Threads())
	d.SetThreads(200)
	assert.Equal(t, maxThreads, d.Threads())
}

func TestStopHaltsSearchPromptly(t *testing.T) {
	d := newTestDriver(t, 2)
	p, err := position.NewFromFen(position.StartFen)
	assert.NoError(t, err)

	limits := search.NewLimits()
	limits.Infinite = true

	done := make(chan struct{})

	go func() {
		defer close(done)
		d.Go(p, limits, search.NopReporter)
	}()

	time.Sleep(20 * time.Millisecond)
	d.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop after Stop()")
	}
}

func TestIsSearchingReflectsState(t *testing.T) {
	d := newTestDriver(t, 1)
	assert.False(t, d.IsSearching())

	p, err := position.NewFromFen(position.StartFen)
	assert.NoError(t, err)
	limits := search.NewLimits()
	limits.Infinite = true

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Go(p, limits, search.NopReporter)
	}()
	time.Sleep(20 * time.Millisecond)
	assert.True(t, d.IsSearching())

	d.Stop()
	<-done
	assert.False(t, d.IsSearching())
}
