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

// Package uci contains the Handler data structure and functionality to
// handle the UCI protocol communication between the chess GUI and the
// engine underneath (internal/smp's Lazy-SMP driver over
// internal/search and internal/position).
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fraTorsello/Triumviratus-3.0/internal/chess"
	"github.com/fraTorsello/Triumviratus-3.0/internal/config"
	"github.com/fraTorsello/Triumviratus-3.0/internal/enginelog"
	"github.com/fraTorsello/Triumviratus-3.0/internal/evaluator"
	"github.com/fraTorsello/Triumviratus-3.0/internal/movegen"
	"github.com/fraTorsello/Triumviratus-3.0/internal/position"
	"github.com/fraTorsello/Triumviratus-3.0/internal/search"
	"github.com/fraTorsello/Triumviratus-3.0/internal/smp"
	"github.com/fraTorsello/Triumviratus-3.0/internal/tt"
)

var out = message.NewPrinter(language.English)

const engineName = "Triumviratus 3.0"
const engineAuthor = "fraTorsello"

// Handler owns the position, the Lazy-SMP driver and the I/O streams,
// and turns UCI protocol lines into calls against them.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *position.Position
	driver *smp.Driver
	log    *logging.Logger
	uciLog *logging.Logger

	searching bool
}

// NewHandler builds a Handler wired to stdin/stdout, an evaluator
// loaded from config.Settings.Eval.WeightsFile, and a Driver sized from
// config.Settings.Search.Threads/HashSizeMB.
func NewHandler() *Handler {
	eval := evaluator.NewFromConfig()
	table := tt.New(config.Settings.Search.HashSizeMB)
	driver := smp.NewDriver(config.Settings.Search.Threads, table, eval)
	p, _ := position.NewFromFen(position.StartFen)
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    p,
		driver: driver,
		log:    enginelog.Std(),
		uciLog: enginelog.UCI(),
	}
}

// Loop reads lines from InIo until a "quit" command, dispatching each.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.dispatch(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single UCI line against this Handler and returns
// whatever it wrote, for tests and scripted debugging — the same
// redirect-OutIo idiom the teacher's own uci package uses.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.dispatch(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// dispatch handles one line, returning true iff it was "quit".
func (h *Handler) dispatch(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)

	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		h.driver.Stop()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos, _ = position.NewFromFen(position.StartFen)
		h.driver.Table().Clear()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.driver.Stop()
	case "setoption":
		h.setOptionCommand(tokens)
	default:
		h.log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send(fmt.Sprintf("id name %s", engineName))
	h.send(fmt.Sprintf("id author %s", engineAuthor))
	h.send("option name Hash type spin default 64 min 1 max 1024")
	h.send(fmt.Sprintf("option name Threads type spin default 1 min 1 max %d", runtime.NumCPU()))
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		h.sendInfoString("setoption malformed")
		return
	}
	switch name {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			h.sendInfoString("Hash value not a number: " + value)
			return
		}
		h.driver.Table().Resize(mb)
	case "Threads":
		n, err := strconv.Atoi(value)
		if err != nil {
			h.sendInfoString("Threads value not a number: " + value)
			return
		}
		h.driver.SetThreads(n)
	default:
		h.sendInfoString(out.Sprintf("no such option '%s'", name))
	}
}

// parseSetOption pulls "name <n...> value <v>" apart; the option name
// may itself contain spaces, same as the teacher's parser.
func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 2 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i+1 < len(tokens) && tokens[i] == "value" {
		value = tokens[i+1]
	}
	return name, value, name != ""
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("position malformed")
		return
	}
	i := 1
	fen := position.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		if trimmed := strings.TrimSpace(b.String()); trimmed != "" {
			fen = trimmed
		}
	default:
		h.sendInfoString("position malformed: " + cmdJoin(tokens))
		return
	}

	p, err := position.NewFromFen(fen)
	if err != nil {
		h.sendInfoString("position malformed fen: " + fen)
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := parseUciMove(h.pos, tokens[i])
			if !m.IsValid() || !h.pos.DoMove(m, false) {
				// Illegal move in the list: stop applying further moves
				// silently, per spec §7.
				break
			}
		}
	}
}

func cmdJoin(tokens []string) string { return strings.Join(tokens, " ") }

// parseUciMove resolves a UCI move string against the legal moves of
// p, since the packed Move encoding carries more than from/to/promo can
// express on its own (capture/en-passant/castling flags).
func parseUciMove(p *position.Position, uci string) chess.Move {
	var list chess.MoveList
	movegen.GenerateAll(p, &list)
	for _, m := range list.Slice() {
		if m.UCI() == uci {
			return m
		}
	}
	return chess.MoveNone
}

func (h *Handler) goCommand(tokens []string) {
	limits, ok := parseLimits(tokens, h.pos)
	if !ok {
		h.sendInfoString("go malformed: " + cmdJoin(tokens))
		return
	}
	best := h.driver.Go(h.pos, limits, reporterFunc(func(info search.Info) {
		h.sendIterationInfo(info)
	}))
	h.sendBestMove(best)
}

type reporterFunc func(search.Info)

func (f reporterFunc) ReportInfo(i search.Info) { f(i) }

func (h *Handler) sendIterationInfo(info search.Info) {
	nps := uint64(0)
	if info.Elapsed > 0 {
		nps = uint64(float64(info.Nodes) / info.Elapsed.Seconds())
	}
	h.send(out.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		info.Depth, scoreString(info.Score), info.Nodes, nps, info.Elapsed.Milliseconds(), pvString(info.PV)))
}

// scoreString renders a centipawn score, switching to UCI's "mate n"
// form near the mate threshold; n counts moves (not plies) to mate.
func scoreString(score int) string {
	if score > search.MateThreshold {
		pliesToMate := search.MateValue - score
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	}
	if score < -search.MateThreshold {
		pliesToMate := search.MateValue + score
		return fmt.Sprintf("mate -%d", (pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

func pvString(pv []chess.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.UCI()
	}
	return strings.Join(parts, " ")
}

func (h *Handler) sendBestMove(m chess.Move) {
	if !m.IsValid() {
		h.send("bestmove (none)")
		return
	}
	h.send("bestmove " + m.UCI())
}

func (h *Handler) sendInfoString(s string) {
	h.send("info string " + s)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
