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
	"sync/atomic"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
)

// Flag records which bound a stored score represents.
type Flag uint8

const (
	// FlagNone marks an empty slot.
	FlagNone Flag = iota
	// FlagExact means the stored score fell strictly inside (alpha, beta).
	FlagExact
	// FlagAlpha means the stored score is an upper bound (search failed low).
	FlagAlpha
	// FlagBeta means the stored score is a lower bound (search failed high).
	FlagBeta
)

// entrySize is the fixed per-slot footprint: two 64-bit words, key and
// data, with no locks and no bucket metadata.
const entrySize = 16

// data field layout, packed into 64 bits:
//
//	bits  0-31  move        (chess.Move, 24 bits used, stored widened to 32)
//	bits 32-39  flag
//	bits 40-47  depth
//	bits 48-63  score, biased by +32768 so it fits an unsigned field
const (
	moveShift  = 0
	flagShift  = 32
	depthShift = 40
	scoreShift = 48
	scoreBias  = 32768
)

func packData(move chess.Move, depth int, flag Flag, score int) uint64 {
	d := uint8(depth)
	if depth < 0 {
		d = 0
	} else if depth > 255 {
		d = 255
	}
	s := uint16(score + scoreBias)
	return uint64(move)<<moveShift |
		uint64(flag)<<flagShift |
		uint64(d)<<depthShift |
		uint64(s)<<scoreShift
}

func unpackMove(data uint64) chess.Move {
	return chess.Move(uint32(data >> moveShift))
}

func unpackFlag(data uint64) Flag {
	return Flag(uint8(data >> flagShift))
}

func unpackDepth(data uint64) int {
	return int(uint8(data >> depthShift))
}

func unpackScore(data uint64) int {
	return int(uint16(data>>scoreShift)) - scoreBias
}

// entry is one lockless slot: two independently stored atomic words. A
// writer composes key = trueKey ^ data and stores data, then key (order
// does not matter for correctness, only for which half a torn reader
// sees). A reader loads both words and accepts the slot only if
// loadedKey ^ loadedData reproduces the probe key - any interleaving
// with a concurrent writer on the same slot fails that check and is
// treated as a miss, never as a hit on garbage.
type entry struct {
	key  atomic.Uint64
	data atomic.Uint64
}

func (e *entry) load(probeKey uint64) (uint64, bool) {
	data := e.data.Load()
	key := e.key.Load()
	if key^data != probeKey {
		return 0, false
	}
	return data, true
}

func (e *entry) store(trueKey, data uint64) {
	e.data.Store(data)
	e.key.Store(trueKey ^ data)
}

func (e *entry) occupied() bool {
	return e.data.Load() != 0 || e.key.Load() != 0
}
