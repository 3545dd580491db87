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

// Package tt implements the engine's shared transposition table: a
// fixed-size, power-of-2 sized array of lockless entries that every
// search worker probes and stores into concurrently without a mutex.
// Safety under concurrent writers comes entirely from the XOR
// self-check described on Table.Probe and Table.Store, not from any
// synchronization around the slots themselves.
package tt

import (
	"math"
	"sync/atomic"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/enginelog"
)

var out = message.NewPrinter(language.English)

var log *logging.Logger

func init() {
	log = enginelog.Std()
}

const (
	mb = 1024 * 1024

	// MaxSizeInMB caps a single resize request; larger requests are
	// clamped and logged rather than rejected.
	MaxSizeInMB = 65_536

	// MateThreshold is the absolute score above which a value is
	// treated as a mate score subject to ply normalization on
	// TT round-trips, per spec §4.3.
	MateThreshold = 32000 - 1000
)

// Result is what Probe hands back to the caller: the fields needed for
// move ordering and for deciding whether the stored score resolves the
// current search node outright.
type Result struct {
	Move  chess.Move
	Score int
	Depth int
	Flag  Flag
}

// Table is the transposition table. The zero value is not usable; call
// New.
type Table struct {
	entries     []entry
	indexMask   uint64
	numEntries  atomic.Uint64
	probes      atomic.Uint64
	hits        atomic.Uint64
	misses      atomic.Uint64
	collisions  atomic.Uint64
	sizeInBytes uint64
}

// New creates a Table sized to at most sizeInMB megabytes, rounded down
// to the nearest power-of-2 entry count.
func New(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table, discarding all entries. Not safe to
// call while a search thread may be probing or storing concurrently -
// callers serialize this against `setoption name Hash` and
// `ucinewgame` the same way the teacher's table documents for its own
// Resize/Clear.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		log.Warningf(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB))
		sizeInMB = MaxSizeInMB
	}
	if sizeInMB < 0 {
		sizeInMB = 0
	}

	for {
		n, err := allocate(sizeInMB)
		if err == nil {
			t.entries = n
			break
		}
		log.Errorf(out.Sprintf("TT allocation at %d MB failed, retrying at half size", sizeInMB))
		sizeInMB /= 2
		if sizeInMB < 1 {
			// Last resort: a single-entry table. Search still
			// functions, just without any caching benefit.
			t.entries = make([]entry, 1)
			break
		}
	}

	maxEntries := uint64(len(t.entries))
	if maxEntries == 0 {
		t.indexMask = 0
	} else {
		t.indexMask = maxEntries - 1
	}
	t.sizeInBytes = maxEntries * entrySize
	t.numEntries.Store(0)
	t.probes.Store(0)
	t.hits.Store(0)
	t.misses.Store(0)
	t.collisions.Store(0)

	log.Infof(out.Sprintf("TT resized to %d MByte, %d entries (%d bytes each)",
		t.sizeInBytes/mb, maxEntries, entrySize))
}

// allocate computes the largest power-of-2 entry count fitting in
// sizeInMB and makes the backing slice. A slice allocation panics on
// OOM rather than returning an error; recover here turns that into the
// retry-at-half-size policy spec §5 demands of TT allocation failure.
func allocate(sizeInMB int) (s []entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, errAllocFailed
		}
	}()
	sizeInBytes := uint64(sizeInMB) * mb
	if sizeInBytes < entrySize {
		return make([]entry, 0), nil
	}
	maxEntries := uint64(1) << uint64(math.Floor(math.Log2(float64(sizeInBytes/entrySize))))
	return make([]entry, maxEntries), nil
}

var errAllocFailed = allocError{}

type allocError struct{}

func (allocError) Error() string { return "tt: allocation failed" }

func (t *Table) index(key uint64) uint64 {
	return key & t.indexMask
}

// scoreToTT converts a score expressed relative to the current search
// node (ply from root) into one expressed relative to the root itself,
// so that a stored mate score remains meaningful however deep in the
// tree it is later retrieved from. Reversed by scoreFromTT.
func scoreToTT(score, ply int) int {
	switch {
	case score >= MateThreshold:
		return score + ply
	case score <= -MateThreshold:
		return score - ply
	default:
		return score
	}
}

func scoreFromTT(score, ply int) int {
	switch {
	case score >= MateThreshold:
		return score - ply
	case score <= -MateThreshold:
		return score + ply
	default:
		return score
	}
}

// Probe looks up key and, if the slot passes its XOR self-check,
// returns its contents with the stored score re-expressed relative to
// ply. A failed self-check - whether from a genuine miss or from a
// torn read racing a concurrent writer - is reported identically as
// `ok == false`; per spec §4.3 that ambiguity is the entire point,
// since tolerating spurious misses is what lets the table skip locks.
func (t *Table) Probe(key uint64, ply int) (Result, bool) {
	if len(t.entries) == 0 {
		return Result{}, false
	}
	t.probes.Add(1)
	e := &t.entries[t.index(key)]
	data, ok := e.load(key)
	if !ok {
		t.misses.Add(1)
		return Result{}, false
	}
	t.hits.Add(1)
	return Result{
		Move:  unpackMove(data),
		Score: scoreFromTT(unpackScore(data), ply),
		Depth: unpackDepth(data),
		Flag:  unpackFlag(data),
	}, true
}

// Store writes an entry unconditionally (always-replace, per spec
// §4.3 - no depth-preferred or aging scheme). move may be MoveNone to
// preserve no move hint; callers that already hold a TT move for this
// node and are only updating the score should still pass it through,
// since a blind overwrite would otherwise discard it.
func (t *Table) Store(key uint64, move chess.Move, depth int, score int, flag Flag, ply int) {
	if len(t.entries) == 0 {
		return
	}
	e := &t.entries[t.index(key)]
	switch {
	case !e.occupied():
		t.numEntries.Add(1)
	default:
		if _, sameKey := e.load(key); !sameKey {
			t.collisions.Add(1)
		}
	}
	data := packData(move, depth, flag, scoreToTT(score, ply))
	e.store(key, data)
}

// Clear discards all entries by replacing the backing array with a
// fresh one of the same size.
func (t *Table) Clear() {
	t.entries = make([]entry, len(t.entries))
	t.numEntries.Store(0)
	t.probes.Store(0)
	t.hits.Store(0)
	t.misses.Store(0)
	t.collisions.Store(0)
}

// Hashfull reports table occupancy in permill, as UCI's `info
// hashfull` expects.
func (t *Table) Hashfull() int {
	if len(t.entries) == 0 {
		return 0
	}
	return int((1000 * t.numEntries.Load()) / uint64(len(t.entries)))
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.numEntries.Load()
}

// SizeInBytes returns the table's real memory footprint.
func (t *Table) SizeInBytes() uint64 {
	return t.sizeInBytes
}

// String reports table size and probe statistics, in the teacher's
// single-line summary style.
func (t *Table) String() string {
	probes := t.probes.Load()
	hits := t.hits.Load()
	misses := t.misses.Load()
	return out.Sprintf("TT: %d MB, %d entries, %d used (%d%%), probes %d hits %d (%d%%) misses %d (%d%%) collisions %d",
		t.sizeInBytes/mb, len(t.entries), t.numEntries.Load(), t.Hashfull()/10,
		probes, hits, (hits*100)/(1+probes), misses, (misses*100)/(1+probes), t.collisions.Load())
}
