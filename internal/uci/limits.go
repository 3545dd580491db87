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
	"strconv"
	"time"

	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
	"github.com/fraTorsello/Triumviratus-3.0/internal/search"
)

// parseLimits reads the subcommands of a `go` line into a search.Limits,
// the way the teacher's readSearchLimits does — one token-consuming
// switch arm per subcommand, ms-to-Duration conversion on the time
// fields. Returns ok=false on anything malformed.
func parseLimits(tokens []string, pos *position.Position) (*search.Limits, bool) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.Depth = v
			i += 2
		case "nodes":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.Nodes = uint64(v)
			i += 2
		case "mate":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.Mate = v
			i += 2
		case "movetime":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i += 2
		case "wtime":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i += 2
		case "btime":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i += 2
		case "winc":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.WhiteInc = time.Duration(v) * time.Millisecond
			i += 2
		case "binc":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.BlackInc = time.Duration(v) * time.Millisecond
			i += 2
		case "movestogo":
			v, ok := intArg(tokens, i)
			if !ok {
				return nil, false
			}
			limits.MovesToGo = v
			i += 2
		default:
			return nil, false
		}
	}
	return limits, true
}

func intArg(tokens []string, i int) (int, bool) {
	if i+1 >= len(tokens) {
		return 0, false
	}
	v, err := strconv.Atoi(tokens[i+1])
	if err != nil {
		return 0, false
	}
	return v, true
}
