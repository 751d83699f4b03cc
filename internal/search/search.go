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

// Package search implements the search of the chess engine: an
// iterative deepening principal variation search with aspiration
// windows, null move pruning, a transposition table, butterfly
// history move ordering and a quiescence extension at the leaves.
//
// The search runs single threaded in its own worker goroutine. A
// second actor (e.g. the UCI handler) may stop it at any time through
// the shared atomic stop flag.
package search

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/frankkopp/QuintGo/internal/config"
	"github.com/frankkopp/QuintGo/internal/evaluator"
	"github.com/frankkopp/QuintGo/internal/history"
	myLogging "github.com/frankkopp/QuintGo/internal/logging"
	"github.com/frankkopp/QuintGo/internal/movegen"
	"github.com/frankkopp/QuintGo/internal/moveslice"
	"github.com/frankkopp/QuintGo/internal/position"
	"github.com/frankkopp/QuintGo/internal/transpositiontable"
	. "github.com/frankkopp/QuintGo/internal/types"
	"github.com/frankkopp/QuintGo/internal/uciInterface"
	"github.com/frankkopp/QuintGo/internal/util"
)

var out = message.NewPrinter(language.German)

// nodes between the periodic search update info lines
const updateInterval = 250_000

// aspiration window half width in centipawns
const aspirationDelta = Value(50)

// MoveGenerator is the capability the search consumes from the move
// generator: legal moves and the checker set of a position.
type MoveGenerator interface {
	GenerateLegalMoves(p *position.Position) *moveslice.MoveSlice
	GenerateCheckers(p *position.Position) Bitboard
}

// Evaluator is the capability the search consumes from the static
// evaluation: a side-relative value of a position.
type Evaluator interface {
	Evaluate(p *position.Position) Value
}

// Result stores the result of a finished search
type Result struct {
	BestMove     Move
	Value        Value
	Depth        int
	SelDepth     int
	NodesVisited uint64
	SearchTime   time.Duration
	MoveValues   map[Move]Value
}

// Search represents the data structure for a chess engine search.
// Create a new instance with NewSearch().
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt      *transpositiontable.TtTable
	eval    Evaluator
	mg      MoveGenerator
	history *history.History

	// shared with the controlling thread - read once per node entry
	stopFlag *util.Bool

	// previous search
	lastSearchResult *Result
	hasResult        bool

	// current search state
	startTime     time.Time
	limits        *Limits
	softTimeLimit time.Duration // 0 = no soft limit
	hardTimeLimit time.Duration // 0 = no hard limit
	nodesVisited  uint64
	currentDepth  int
	selDepth      int
	pvValue       Value
	lastUciUpdate time.Time
}

// NewSearch creates a new Search instance. If no uci handler is set
// all output will be sent to the standard log.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
		mg:            movegen.NewMovegen(),
		history:       history.NewHistory(),
		stopFlag:      util.NewBool(false),
	}
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewGame stops any running searches and resets the search state
// to be ready for a different game. Any caches or states will be reset.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history.Clear()
	transpositiontable.ResetHitrate()
}

// StartSearch starts the search on the given position with the given
// search limits. The search runs in a separate goroutine; this call
// returns as soon as the search has been initialized. Use
// WaitWhileSearching() to wait for the result.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go s.run(&p, &sl)
	// wait until the search is initialized before returning
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible. The
// search will finish with the best move of the last completed
// iteration.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// IsSearching checks if the search is currently running
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until the current search has finished
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler sets the UCI handler the search reports to. If not
// set the search reports through the standard log.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// ClearHash clears the transposition table
func (s *Search) ClearHash() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

// ResizeCache resizes the transposition table to the entry count
// power of two from the configuration. All entries are lost.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		s.log.Warning("Can't resize hash while searching")
		return
	}
	s.tt = transpositiontable.NewTtTableSized(config.Settings.Search.TTSize)
}

// LastSearchResult returns a copy of the last search result
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{BestMove: MoveNone}
	}
	return *s.lastSearchResult
}

// HasResult returns true if a previous search produced a result
func (s *Search) HasResult() bool {
	return s.hasResult
}

// NodesVisited returns the number of nodes visited in the last search
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is started in a goroutine by StartSearch. It initializes the
// search state and runs the iterative deepening loop to completion.
func (s *Search) run(p *position.Position, sl *Limits) {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	defer s.isRunning.Release(1)

	if err := sl.Validate(); err != nil {
		s.log.Error(err.Error())
		s.sendInfoString(err.Error())
		s.initSemaphore.Release(1)
		s.sendResult(&Result{BestMove: MoveNone})
		return
	}

	// initialize for this search
	s.stopFlag.Store(false)
	s.startTime = time.Now()
	s.lastUciUpdate = s.startTime
	s.limits = sl
	s.nodesVisited = 0
	s.selDepth = 0
	s.pvValue = ValueDraw
	if s.tt == nil && config.Settings.Search.UseTT {
		s.tt = transpositiontable.NewTtTableSized(config.Settings.Search.TTSize)
	}
	transpositiontable.ResetHitrate()
	s.setupTimeControl(p, sl)

	// release the init semaphore so StartSearch can return
	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(p)

	s.lastSearchResult = result
	s.hasResult = true

	s.slog.Debug(out.Sprintf("Search finished: best %s value %s nodes %d time %d ms",
		result.BestMove.StringUci(), result.Value.String(), result.NodesVisited,
		result.SearchTime.Milliseconds()))

	s.sendResult(result)
}

// iterativeDeepening searches the position with increasing depth
// until a depth, time or node limit is reached. Each iteration
// searches every root move with principal variation search and an
// aspiration window around the value of the previous iteration.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	maxDepth := s.limits.maxIterativeDepth()

	moves := s.mg.GenerateLegalMoves(p)
	if s.limits.SearchMoves.Len() > 0 {
		searchMoves := s.limits.SearchMoves
		moves.FilterFunc(func(m Move) bool { return searchMoves.Has(m) })
	}
	if moves.Len() == 0 {
		// checkmate or stalemate at the root
		value := ValueDraw
		if s.mg.GenerateCheckers(p) != 0 {
			value = ValueMin
		}
		s.pvValue = value
		return &Result{BestMove: MoveNone, Value: value, SearchTime: time.Since(s.startTime)}
	}

	bestMove := MoveNone
	moveValues := map[Move]Value{}
	finalMoveValues := map[Move]Value{}

depthLoop:
	for depth := 1; depth <= maxDepth; depth++ {
		iterationStart := time.Now()
		s.currentDepth = depth

		for _, m := range *moves {
			value, aborted := s.searchRootMove(p, m, depth, moveValues)
			if aborted {
				s.sendSearchUpdate()
				break depthLoop
			}
			moveValues[m] = value
		}

		for k, v := range moveValues {
			finalMoveValues[k] = v
		}

		// sort the root moves by descending value for the next
		// iteration - the first one is the best move so far
		ms := *moves
		sort.SliceStable(ms, func(i, j int) bool {
			return moveValues[ms[i]] > moveValues[ms[j]]
		})
		bestMove = moves.At(0)
		s.pvValue = moveValues[bestMove]

		s.sendIterationEndInfo(depth, bestMove)

		// do not start another iteration when the soft time limit
		// would most likely be exceeded by it
		if s.softTimeLimit > 0 &&
			time.Since(s.startTime)+time.Since(iterationStart) > s.softTimeLimit {
			break
		}
	}

	return &Result{
		BestMove:     bestMove,
		Value:        s.pvValue,
		Depth:        s.currentDepth,
		SelDepth:     s.selDepth,
		NodesVisited: s.nodesVisited,
		SearchTime:   time.Since(s.startTime),
		MoveValues:   finalMoveValues,
	}
}

// searchRootMove searches a single root move at the given iteration
// depth with an aspiration window around its value from the previous
// iteration. A failing bound is squared (widened aggressively) and
// the search repeated until the window holds the true value.
func (s *Search) searchRootMove(p *position.Position, m Move, depth int, moveValues map[Move]Value) (Value, bool) {
	alpha, beta := ValueMin, ValueMax
	if prev, ok := moveValues[m]; ok && depth >= 4 && config.Settings.Search.UseAspiration {
		alpha = prev - aspirationDelta
		beta = prev + aspirationDelta
	}

	u := p.DoMove(m)
	defer p.UndoMove(m, u)

	for {
		v, ok := s.pvs(p, depth-1, 1, beta.Flip(), alpha.Flip())
		if !ok {
			return ValueDraw, true
		}
		value := v.Flip()

		switch {
		case alpha != ValueMin && value <= alpha:
			// squaring does not widen bounds near zero
			if widened := ValueFromMul(alpha, alpha).Flip(); widened < alpha {
				alpha = widened
			} else {
				alpha = ValueMin
			}
		case beta != ValueMax && value >= beta:
			if widened := ValueFromMul(beta, beta); widened > beta {
				beta = widened
			} else {
				beta = ValueMax
			}
		default:
			return value, false
		}
	}
}

// stopConditions checks if the search should be terminated: the stop
// flag has been set, the node limit is reached or the hard time
// limit has elapsed.
func (s *Search) stopConditions() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.limits.Infinite {
		return false
	}
	if s.limits.Nodes > 0 && s.nodesVisited >= s.limits.Nodes {
		return true
	}
	if s.hardTimeLimit > 0 && time.Since(s.startTime) >= s.hardTimeLimit {
		return true
	}
	return false
}

// setupTimeControl derives the soft and hard time limits from the
// given limits. An explicit move time is used as the hard limit
// directly. Otherwise the limits are calculated from the clock state
// of the side to move.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) {
	s.softTimeLimit = 0
	s.hardTimeLimit = 0
	if sl.Infinite {
		return
	}

	timeLeft, inc := sl.WhiteTime, sl.WhiteInc
	if p.NextPlayer() == Black {
		timeLeft, inc = sl.BlackTime, sl.BlackInc
	}
	if timeLeft > 0 {
		s.softTimeLimit, s.hardTimeLimit = calcTimeToUse(timeLeft, inc, sl.MovesToGo)
	}
	if sl.MoveTime > 0 {
		s.hardTimeLimit = sl.MoveTime
		s.softTimeLimit = 0
	}

	s.slog.Debug(out.Sprintf("Time for this move: soft limit %d ms hard limit %d ms",
		s.softTimeLimit.Milliseconds(), s.hardTimeLimit.Milliseconds()))
}

// calcTimeToUse calculates the soft and hard time limit for a move
// from the remaining time, the increment and the number of moves to
// the next time control.
func calcTimeToUse(timeLeft time.Duration, inc time.Duration, movesToGo int) (time.Duration, time.Duration) {
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}
	usable := timeLeft - timeLeft/20
	soft := usable/time.Duration(movesToGo) + inc
	hard := 2 * soft
	return soft, hard
}

// //////////////////////////////////////////////////////
// // Reporting
// //////////////////////////////////////////////////////

func (s *Search) sendResult(result *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(result.BestMove)
	}
}

func (s *Search) sendInfoString(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
}

// sendIterationEndInfo sends the info line after each completed
// iterative deepening iteration.
func (s *Search) sendIterationEndInfo(depth int, bestMove Move) {
	elapsed := time.Since(s.startTime)
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(depth, s.selDepth, s.pvValue, s.nodesVisited,
			util.Nps(s.nodesVisited, elapsed), elapsed, bestMove)
		return
	}
	s.slog.Info(out.Sprintf("info depth %d seldepth %d multipv 1 score cp %s nodes %d nps %d hashfull 0 tbhits 0 tthitrate %.2f time %d pv %s",
		depth, s.selDepth, s.pvValue.String(), s.nodesVisited, util.Nps(s.nodesVisited, elapsed),
		transpositiontable.Hitrate(), elapsed.Milliseconds(), bestMove.StringUci()))
}

// sendSearchUpdate sends the periodic info line during long searches.
func (s *Search) sendSearchUpdate() {
	elapsed := time.Since(s.startTime)
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(s.currentDepth, s.selDepth, s.pvValue, s.nodesVisited,
			util.Nps(s.nodesVisited, elapsed), elapsed)
		return
	}
	s.slog.Info(out.Sprintf("info depth %d seldepth %d multipv 1 score cp %s nodes %d nps %d hashfull 0 tbhits 0 tthitrate %.2f time %d",
		s.currentDepth, s.selDepth, s.pvValue.String(), s.nodesVisited,
		util.Nps(s.nodesVisited, elapsed), transpositiontable.Hitrate(), elapsed.Milliseconds()))
}
