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

package search

import (
	"math"
	"sort"

	"github.com/frankkopp/QuintGo/internal/config"
	"github.com/frankkopp/QuintGo/internal/moveslice"
	"github.com/frankkopp/QuintGo/internal/position"
	"github.com/frankkopp/QuintGo/internal/transpositiontable"
	. "github.com/frankkopp/QuintGo/internal/types"
)

// null move pruning needs at least this remaining depth
const nullMovePruningDepth = 3

// null move depth reduction
const nullMoveReduction = 2

// pvs is the recursive principal variation search. remaining is the
// remaining nominal search depth, ply the distance from the root.
// The window (alpha, beta] and the returned value are relative to the
// side to move of the position.
// The bool return is false when the search has been terminated (stop
// flag, node limit or hard time limit) - the value is meaningless in
// that case and every frame up the stack unwinds without changing
// any result state.
func (s *Search) pvs(p *position.Position, remaining int, ply int, alpha Value, beta Value) (Value, bool) {
	if s.stopConditions() {
		return ValueDraw, false
	}
	s.nodesVisited++
	if ply > s.selDepth {
		s.selDepth = ply
	}
	if s.nodesVisited%updateInterval == 0 {
		s.sendSearchUpdate()
	}

	// leaves are extended by the quiescence search
	if remaining <= 0 {
		if !config.Settings.Search.UseQuiescence {
			return s.eval.Evaluate(p), true
		}
		return s.quiescence(p, ply, alpha, beta)
	}

	if p.IsDraw() {
		return ValueDraw, true
	}

	// probe the transposition table - a deep enough entry may resolve
	// this node, otherwise its move is the first ordering hint.
	// Positions which already occurred in the game are not resolved
	// from the table as the path to them decides over repetition draws.
	ttMove := MoveNone
	if s.tt != nil && config.Settings.Search.UseTT {
		if e := s.tt.Probe(p.ZobristKey()); e != nil {
			if e.Depth() >= remaining && !p.IsRepetitionPossible() {
				switch e.Type() {
				case transpositiontable.Exact:
					return e.Eval(), true
				case transpositiontable.LowerBound:
					if e.Eval() >= beta {
						return e.Eval(), true
					}
				case transpositiontable.UpperBound:
					if e.Eval() <= alpha {
						return e.Eval(), true
					}
				}
			}
			ttMove = e.Move()
		}
	}

	isPVNode := alpha != beta-1
	checkers := s.mg.GenerateCheckers(p)

	// null move pruning: give the opponent a free move - when a
	// reduced search still fails high the node is pruned. Unsound in
	// check and without non pawn material (zugzwang).
	if config.Settings.Search.UseNullMove &&
		!isPVNode && checkers == 0 && remaining >= nullMovePruningDepth &&
		p.HasNonPawnMaterial(p.NextPlayer()) && s.eval.Evaluate(p) >= beta {

		ep := p.DoNullMove()
		v, ok := s.pvs(p, remaining-nullMoveReduction, ply+1, beta.Flip(), beta.Flip()+1)
		p.UndoNullMove(ep)
		if !ok {
			return ValueDraw, false
		}
		if value := v.Flip(); value >= beta {
			return value, true
		}
	}

	moves := s.mg.GenerateLegalMoves(p)
	if moves.Len() == 0 {
		if checkers != 0 {
			return ValueMin, true // checkmate
		}
		return ValueDraw, true // stalemate
	}

	s.orderMoves(moves, p, ttMove)

	bestValue := ValueMin
	bestMove := moves.At(0)
	originalAlpha := alpha

	for i, m := range *moves {
		s.history.RecordConsidered(m)

		u := p.DoMove(m)

		var value Value
		if i == 0 || !config.Settings.Search.UsePVS {
			// first move gets the full window
			v, ok := s.pvs(p, remaining-1, ply+1, beta.Flip(), alpha.Flip())
			if !ok {
				p.UndoMove(m, u)
				return ValueDraw, false
			}
			value = v.Flip()
		} else {
			// later moves get a zero window probe first and are
			// re-searched with the full window only on a fail high
			v, ok := s.pvs(p, remaining-1, ply+1, alpha.Flip()-1, alpha.Flip())
			if !ok {
				p.UndoMove(m, u)
				return ValueDraw, false
			}
			value = v.Flip()
			if alpha < value && value < beta {
				v, ok = s.pvs(p, remaining-1, ply+1, beta.Flip(), alpha.Flip())
				if !ok {
					p.UndoMove(m, u)
					return ValueDraw, false
				}
				value = v.Flip()
			}
		}

		p.UndoMove(m, u)

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
			}
		}
		if alpha >= beta {
			s.history.RecordCutoff(m)
			break
		}
	}

	if s.tt != nil && config.Settings.Search.UseTT {
		evalType := transpositiontable.Exact
		switch {
		case bestValue >= beta:
			evalType = transpositiontable.LowerBound
		case bestValue <= originalAlpha:
			evalType = transpositiontable.UpperBound
		}
		s.tt.Put(p.ZobristKey(), bestMove, bestValue, evalType, remaining)
	}

	return bestValue, true
}

// quiescence extends the search at the leaves with captures and
// queen/knight promotions only (all moves while in check) to settle
// tactical sequences before the static evaluation is trusted.
// Its depth is bounded by three times the nominal iteration depth.
func (s *Search) quiescence(p *position.Position, ply int, alpha Value, beta Value) (Value, bool) {
	if s.stopConditions() {
		return ValueDraw, false
	}
	s.nodesVisited++
	if ply > s.selDepth {
		s.selDepth = ply
	}
	if s.nodesVisited%updateInterval == 0 {
		s.sendSearchUpdate()
	}

	if p.IsDraw() {
		return ValueDraw, true
	}

	checkers := s.mg.GenerateCheckers(p)

	bestValue := ValueMin
	if checkers == 0 {
		standPat := s.eval.Evaluate(p)
		if ply >= 3*s.currentDepth {
			return standPat, true
		}
		if standPat >= beta {
			return standPat, true
		}
		if standPat > alpha {
			alpha = standPat
		}
		bestValue = standPat
	}

	moves := s.mg.GenerateLegalMoves(p)
	if moves.Len() == 0 {
		if checkers != 0 {
			return ValueMin, true // checkmate
		}
		return ValueDraw, true // stalemate
	}

	// outside of check only noisy moves are searched
	if checkers == 0 {
		moves.FilterFunc(func(m Move) bool {
			return p.IsCapture(m) ||
				m.PromotionType() == Queen || m.PromotionType() == Knight
		})
	}

	s.orderMoves(moves, p, MoveNone)

	for _, m := range *moves {
		u := p.DoMove(m)
		v, ok := s.quiescence(p, ply+1, beta.Flip(), alpha.Flip())
		p.UndoMove(m, u)
		if !ok {
			return ValueDraw, false
		}
		value := v.Flip()

		if value >= beta {
			return value, true
		}
		if value > bestValue {
			bestValue = value
		}
		if value > alpha {
			alpha = value
		}
	}

	return bestValue, true
}

// orderMoves sorts the moves for the search: the move from the
// transposition table first, then captures by MVV/LVA, then quiet
// moves by their butterfly history ratio.
func (s *Search) orderMoves(moves *moveslice.MoveSlice, p *position.Position, ttMove Move) {
	ms := *moves
	keys := make(map[Move]int64, len(ms))
	for _, m := range ms {
		keys[m] = s.moveSortKey(p, m, ttMove)
	}
	sort.SliceStable(ms, func(i, j int) bool {
		return keys[ms[i]] > keys[ms[j]]
	})
}

// capture sort keys rank above every quiet move key
const captureSortBase = int64(1_000_000)

func (s *Search) moveSortKey(p *position.Position, m Move, ttMove Move) int64 {
	if m == ttMove && m != MoveNone {
		return math.MaxInt64
	}
	if p.IsCapture(m) {
		return captureSortBase + mvvLva(p, m)
	}
	if config.Settings.Search.UseHistory {
		return s.history.Score(m)
	}
	return 0
}

// mvvLva scores a capture by most valuable victim / least valuable
// attacker: 10 * victim piece index + (5 - attacker piece index).
func mvvLva(p *position.Position, m Move) int64 {
	attacker, _ := p.PieceOn(m.From())
	victim, _ := p.PieceOn(m.To())
	if victim == PtNone {
		// en passant - the victim is a pawn
		victim = Pawn
	}
	return int64(victim)*10 + (5 - int64(attacker))
}
