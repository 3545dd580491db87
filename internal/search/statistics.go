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

// Statistics accumulates counters over one ThreadData's search, purely
// for engine introspection - nothing in the search algorithm itself
// reads these back, and the UCI layer does not print them.
type Statistics struct {
	Nodes             uint64
	QNodes            uint64
	TTHits            uint64
	TTCuts            uint64
	BetaCutoffs       uint64
	FirstMoveCutoffs  uint64 // beta cutoffs on the first move searched (move-ordering quality)
	NullMoveCuts      uint64
	RazorCuts         uint64
	RfpCuts           uint64
	LmrResearches     uint64
	IidSearches       uint64
	AspirationRetries uint64
	MdpCuts           uint64
}

func (s *Statistics) recordCutoff(moveIndex int) {
	s.BetaCutoffs++
	if moveIndex == 0 {
		s.FirstMoveCutoffs++
	}
}

// OrderingQuality returns the fraction of beta cutoffs that landed on
// the first move searched, a standard proxy for move-ordering
// effectiveness (1.0 is ideal).
func (s *Statistics) OrderingQuality() float64 {
	if s.BetaCutoffs == 0 {
		return 0
	}
	return float64(s.FirstMoveCutoffs) / float64(s.BetaCutoffs)
}
