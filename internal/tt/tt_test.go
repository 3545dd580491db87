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

package tt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
)

func TestResizeIsPowerOfTwoEntries(t *testing.T) {
	table := New(1)
	n := len(table.entries)
	assert.Greater(t, n, 0)
	assert.Equal(t, n, n&-n, "entry count must be a power of 2")
}

func TestStoreThenProbeRoundTrips(t *testing.T) {
	table := New(1)
	m := chess.NewMove(chess.SqE2, chess.SqE4, chess.WhitePawn, chess.MoveFlags{DoublePush: true})
	table.Store(0xABCDEF0123456789, m, 6, 37, FlagExact, 0)

	res, ok := table.Probe(0xABCDEF0123456789, 0)
	assert.True(t, ok)
	assert.Equal(t, m, res.Move)
	assert.Equal(t, 6, res.Depth)
	assert.Equal(t, 37, res.Score)
	assert.Equal(t, FlagExact, res.Flag)
}

func TestProbeMissOnUnstoredKey(t *testing.T) {
	table := New(1)
	_, ok := table.Probe(0x1, 0)
	assert.False(t, ok)
}

func TestProbeMissOnKeyCollisionAtSameIndex(t *testing.T) {
	table := New(1)
	mask := table.indexMask
	key1 := uint64(0x10) & ^mask // 0x10 lies inside the index mask, so key1 is 0 (index 0)
	key2 := key1 | 0xDEADBEEF00000000 &^ mask
	table.Store(key1, chess.MoveNone, 1, 10, FlagExact, 0)
	_, ok := table.Probe(key2, 0)
	assert.False(t, ok)
}

func TestAlwaysReplaceOverwritesExistingEntry(t *testing.T) {
	table := New(1)
	key := uint64(0x42)
	m1 := chess.NewMove(chess.SqA2, chess.SqA4, chess.WhitePawn, chess.MoveFlags{DoublePush: true})
	m2 := chess.NewMove(chess.SqG1, chess.SqF3, chess.WhiteKnight, chess.MoveFlags{})
	table.Store(key, m1, 10, 100, FlagExact, 0)
	table.Store(key, m2, 2, -5, FlagAlpha, 0)

	res, ok := table.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, m2, res.Move)
	assert.Equal(t, 2, res.Depth)
	assert.Equal(t, -5, res.Score)
	assert.Equal(t, FlagAlpha, res.Flag)
}

func TestMateScoreNormalizedAcrossPly(t *testing.T) {
	table := New(1)
	key := uint64(0x99)
	mateScore := MateThreshold + 5 // a "mate in a few" score as seen at ply 3
	table.Store(key, chess.MoveNone, 4, mateScore, FlagExact, 3)

	// Probing from the root (ply 0) should recover a score adjusted by
	// the stored node's depth from root, i.e. larger (closer to mate).
	res, ok := table.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, mateScore+3, res.Score)
}

func TestClearEmptiesTable(t *testing.T) {
	table := New(1)
	table.Store(0x55, chess.MoveNone, 1, 1, FlagExact, 0)
	assert.Equal(t, uint64(1), table.Len())
	table.Clear()
	assert.Equal(t, uint64(0), table.Len())
	_, ok := table.Probe(0x55, 0)
	assert.False(t, ok)
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	table := New(1)
	assert.Equal(t, 0, table.Hashfull())
	// Hashfull is in permill with integer division, so at least
	// len(entries)/1000+1 distinct slots must be used to reach 1.
	for k := uint64(1); k <= uint64(len(table.entries))/1000+1; k++ {
		table.Store(k, chess.MoveNone, 1, 1, FlagExact, 0)
	}
	assert.Greater(t, table.Hashfull(), 0)
}

func TestConcurrentAccessNeverPanicsOrReturnsTornHit(t *testing.T) {
	table := New(1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := uint64(i) * 0x9E3779B97F4A7C15
			for j := 0; j < 1000; j++ {
				table.Store(key, chess.MoveNone, j%64, j, FlagExact, 0)
				if res, ok := table.Probe(key, 0); ok {
					// Any accepted hit must carry a self-consistent
					// depth/score pairing from one of this goroutine's
					// own writes - not a torn mix of two writes.
					assert.Equal(t, res.Score%64, res.Depth)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestZeroSizeTableDoesNotStoreOrPanic(t *testing.T) {
	table := New(0)
	assert.NotPanics(t, func() {
		table.Store(0x1, chess.MoveNone, 1, 1, FlagExact, 0)
	})
	_, ok := table.Probe(0x1, 0)
	assert.False(t, ok)
}
