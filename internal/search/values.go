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

import "github.com/fraTorsello/Triumviratus-3.0/internal/tt"

const (
	// MaxPly bounds recursion depth, the killer table, and both PV table
	// axes.
	MaxPly = 128

	// Infinity is wider than any real evaluation and used as the
	// unbounded aspiration-window edge.
	Infinity = 32_001

	// MateValue is the score of delivering mate on the move; a mate
	// found at ply k is reported as MateValue-k.
	MateValue = 32_000

	// MateThreshold mirrors tt.MateThreshold: any score with a larger
	// magnitude is a mate score subject to the TT's ply normalization.
	MateThreshold = tt.MateThreshold

	// Draw is the static score of a drawn position.
	Draw = 0

	// nodeCheckInterval is how often (in visited nodes) the search
	// polls the stop flag and wall clock, per spec §4.4 step 5.
	nodeCheckInterval = 2048

	// seeCaptureMargin is the SEE floor below which quiescence refuses
	// to consider a capture at all (spec's quiescence section).
	seeCaptureMargin = -200

	// deltaPruningMargin is quiescence's "biggest plausible swing"
	// cutoff, approximating a queen's value.
	deltaPruningMargin = 975
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
