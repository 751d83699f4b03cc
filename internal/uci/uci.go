/*
 * QuintGo - UCI chess engine in GO for learning purposes
 *
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

// Package uci contains the UCI protocol handler - the line oriented
// front end between a chess ui and the engine. It drives the search
// worker and relays its reports. A go command received while a search
// is still running is ignored with a warning.
package uci

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/QuintGo/internal/config"
	myLogging "github.com/frankkopp/QuintGo/internal/logging"
	"github.com/frankkopp/QuintGo/internal/movegen"
	"github.com/frankkopp/QuintGo/internal/position"
	"github.com/frankkopp/QuintGo/internal/search"
	"github.com/frankkopp/QuintGo/internal/transpositiontable"
	. "github.com/frankkopp/QuintGo/internal/types"
	"github.com/frankkopp/QuintGo/internal/version"
)

var out = message.NewPrinter(language.German)

// UciHandler handles all communication with the chess ui via UCI
// and controls the search when receiving UCI commands
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	log    *logging.Logger
	uciLog *logging.Logger

	mySearch   *search.Search
	myMoveGen  *movegen.Movegen
	myPosition *position.Position

	uciEnabled bool
}

// NewUciHandler creates a new UciHandler instance using stdin and
// stdout for the communication with the chess ui
func NewUciHandler() *UciHandler {
	u := &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		log:        myLogging.GetLog(),
		uciLog:     myLogging.GetUciLog(),
		mySearch:   search.NewSearch(),
		myMoveGen:  movegen.NewMovegen(),
		myPosition: position.NewPosition(),
	}
	u.mySearch.SetUciHandler(u)
	return u
}

// Loop starts the main processing loop of the UCI handler reading
// commands from the input stream until quit
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		cmd := strings.TrimSpace(u.InIo.Text())
		if cmd == "" {
			continue
		}
		u.uciLog.Debugf("<< %s", cmd)
		if !u.handleReceivedCommand(cmd) {
			break
		}
	}
	u.log.Info("Quitting engine")
	u.mySearch.StopSearch()
}

// Command handles a single UCI command - used by the loop and by
// tests. Returns false when the engine should quit.
func (u *UciHandler) Command(cmd string) bool {
	return u.handleReceivedCommand(cmd)
}

func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	tokens := strings.Fields(cmd)
	switch tokens[0] {
	case "uci":
		u.uciCommand()
	case "quit":
		return false
	default:
		// all other commands require the uci handshake first
		if !u.uciEnabled {
			u.log.Warningf("Command before uci handshake ignored: %s", cmd)
			return true
		}
		switch tokens[0] {
		case "isready":
			u.send("readyok")
		case "setoption":
			u.setOptionCommand(tokens)
		case "ucinewgame":
			u.mySearch.NewGame()
			u.myPosition = position.NewPosition()
		case "position":
			u.positionCommand(tokens)
		case "go":
			u.goCommand(tokens)
		case "stop":
			u.mySearch.StopSearch()
		case "ponderhit":
			// pondering is informational only
		case "perft":
			u.perftCommand(tokens)
		default:
			u.log.Warningf("Unknown command ignored: %s", cmd)
		}
	}
	return true
}

func (u *UciHandler) uciCommand() {
	u.send("id name QuintGo " + version.Version())
	u.send("id author Frank Kopp, Germany")
	u.send(out.Sprintf("option name Hash type spin default %d min 10 max 26", config.Settings.Search.TTSize))
	u.send("option name Ponder type check default false")
	u.send("uciok")
	u.uciEnabled = true
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	name, value := "", ""
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "name":
			if i+1 < len(tokens) {
				name = tokens[i+1]
			}
		case "value":
			if i+1 < len(tokens) {
				value = tokens[i+1]
			}
		}
	}
	switch name {
	case "Hash":
		if power, err := strconv.Atoi(value); err == nil && power >= 10 && power <= 26 {
			config.Settings.Search.TTSize = uint(power)
			u.mySearch.ResizeCache()
		} else {
			u.log.Warningf("setoption Hash: invalid value %q", value)
		}
	default:
		u.log.Warningf("setoption: unknown option %q", name)
	}
}

func (u *UciHandler) positionCommand(tokens []string) {
	fen := position.StartFen
	i := 1
	if i < len(tokens) && tokens[i] == "startpos" {
		i++
	} else if i < len(tokens) && tokens[i] == "fen" {
		i++
		fenParts := make([]string, 0, 6)
		for ; i < len(tokens) && tokens[i] != "moves"; i++ {
			fenParts = append(fenParts, tokens[i])
		}
		fen = strings.Join(fenParts, " ")
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		u.sendInfoString(out.Sprintf("position command rejected: %s", err))
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := u.myMoveGen.GetMoveFromUci(p, tokens[i])
			if m == MoveNone {
				u.sendInfoString(out.Sprintf("position command rejected: invalid move %s", tokens[i]))
				return
			}
			p.DoMove(m)
		}
	}
	u.myPosition = p
}

func (u *UciHandler) goCommand(tokens []string) {
	if u.mySearch.IsSearching() {
		u.log.Warning("go command while searching ignored")
		return
	}
	sl, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	u.mySearch.StartSearch(*u.myPosition, *sl)
}

func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	go func() {
		perft := movegen.NewPerft()
		perft.StartPerft(u.myPosition.StringFen(), depth, true)
	}()
}

func (u *UciHandler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	sl := search.NewLimits()
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "searchmoves":
			for i+1 < len(tokens) {
				m := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i+1])
				if m == MoveNone {
					break
				}
				sl.SearchMoves.PushBack(m)
				i++
			}
		case "ponder":
			sl.Ponder = true
		case "infinite":
			sl.Infinite = true
		case "wtime":
			sl.WhiteTime = u.readMilliseconds(tokens, &i)
		case "btime":
			sl.BlackTime = u.readMilliseconds(tokens, &i)
		case "winc":
			sl.WhiteInc = u.readMilliseconds(tokens, &i)
		case "binc":
			sl.BlackInc = u.readMilliseconds(tokens, &i)
		case "movetime":
			sl.MoveTime = u.readMilliseconds(tokens, &i)
		case "movestogo":
			sl.MovesToGo = u.readInt(tokens, &i)
		case "depth":
			sl.Depth = u.readInt(tokens, &i)
		case "mate":
			sl.Mate = u.readInt(tokens, &i)
		case "nodes":
			sl.Nodes = uint64(u.readInt(tokens, &i))
		default:
			u.log.Warningf("go: unknown token ignored: %s", tokens[i])
		}
	}
	if err := sl.Validate(); err != nil {
		u.sendInfoString(err.Error())
		return nil, false
	}
	return sl, true
}

func (u *UciHandler) readInt(tokens []string, i *int) int {
	if *i+1 >= len(tokens) {
		return 0
	}
	*i++
	v, err := strconv.Atoi(tokens[*i])
	if err != nil {
		u.log.Warningf("go: invalid number %q", tokens[*i])
		return 0
	}
	return v
}

func (u *UciHandler) readMilliseconds(tokens []string, i *int) time.Duration {
	return time.Duration(u.readInt(tokens, i)) * time.Millisecond
}

// //////////////////////////////////////////////////////
// // uciInterface.UciDriver
// //////////////////////////////////////////////////////

// SendInfoString sends an info string to the chess ui
func (u *UciHandler) SendInfoString(info string) {
	u.send(out.Sprintf("info string %s", info))
}

// SendIterationEndInfo sends the info line after a completed
// iterative deepening iteration to the chess ui
func (u *UciHandler) SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv Move) {
	u.send(out.Sprintf("info depth %d seldepth %d multipv 1 score cp %s nodes %d nps %d hashfull 0 tbhits 0 tthitrate %.2f time %d pv %s",
		depth, seldepth, value.String(), nodes, nps, transpositiontable.Hitrate(), time.Milliseconds(), pv.StringUci()))
}

// SendSearchUpdate sends the periodic info line during search to the
// chess ui
func (u *UciHandler) SendSearchUpdate(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration) {
	u.send(out.Sprintf("info depth %d seldepth %d multipv 1 score cp %s nodes %d nps %d hashfull 0 tbhits 0 tthitrate %.2f time %d",
		depth, seldepth, value.String(), nodes, nps, transpositiontable.Hitrate(), time.Milliseconds()))
}

// SendResult sends the best move of a finished search to the
// chess ui
func (u *UciHandler) SendResult(bestMove Move) {
	u.send("bestmove " + bestMove.StringUci())
}

func (u *UciHandler) send(s string) {
	u.uciLog.Debugf(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}

func (u *UciHandler) sendInfoString(info string) {
	u.SendInfoString(info)
}
