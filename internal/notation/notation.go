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

// Package notation encodes moves into standard algebraic notation
// (SAN) - e.g. Nb5, O-O, dxe6, e1Q, Rdf8, Qf8f6+ - for a given
// position.
package notation

import (
	"fmt"
	"strings"

	"github.com/frankkopp/QuintGo/internal/movegen"
	"github.com/frankkopp/QuintGo/internal/moveslice"
	"github.com/frankkopp/QuintGo/internal/position"
	. "github.com/frankkopp/QuintGo/internal/types"
)

// NotationError is returned when a move can not be encoded for the
// given position.
type NotationError struct {
	Msg string
}

func (e *NotationError) Error() string {
	return "notation: " + e.Msg
}

// MoveToSan encodes a legal move of the position into standard
// algebraic notation. Returns an error when no piece of the side to
// move is on the move's from square or the move is not legal in the
// position.
func MoveToSan(p *position.Position, mg *movegen.Movegen, m Move) (string, error) {
	us := p.NextPlayer()
	them := us.Flip()

	piece, color := p.PieceOn(m.From())
	if piece == PtNone || color != us {
		return "", &NotationError{Msg: fmt.Sprintf("no piece at move src %s", m.From().String())}
	}

	legalMoves := mg.GenerateLegalMoves(p)
	if !legalMoves.Has(m) {
		return "", &NotationError{Msg: fmt.Sprintf("invalid move %s", m.StringUci())}
	}

	var sb strings.Builder

	// castling
	if piece == King && SquareDistance(m.From(), m.To()) == 2 {
		if m.From() < m.To() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		sb.WriteString(checkSuffix(p, mg, m))
		return sb.String(), nil
	}

	if piece != Pawn {
		sb.WriteByte(upper(piece.Char()))
	}

	isCapture := p.OccupiedBb(them).Has(m.To())
	// a pawn moving diagonally to an empty square captures en passant
	isEpCapture := piece == Pawn && !isCapture && m.From().FileOf() != m.To().FileOf()
	if isCapture || isEpCapture {
		if piece == Pawn {
			sb.WriteString(m.From().FileOf().String())
		}
		sb.WriteByte('x')
	}

	// disambiguate between several rooks or queens which can reach
	// the same destination square
	if piece == Rook || piece == Queen {
		sb.WriteString(disambiguation(p, legalMoves, m, piece))
	}

	sb.WriteString(m.To().String())

	if m.IsPromotion() {
		sb.WriteByte(upper(m.PromotionType().Char()))
	}

	sb.WriteString(checkSuffix(p, mg, m))
	return sb.String(), nil
}

// disambiguation returns the file and/or rank of the from square as
// needed to distinguish the move from other legal moves of the same
// piece type to the same destination.
func disambiguation(p *position.Position, legalMoves *moveslice.MoveSlice, m Move, piece PieceType) string {
	var others []Move
	for _, other := range *legalMoves {
		if other.To() != m.To() || other.From() == m.From() {
			continue
		}
		otherPiece, _ := p.PieceOn(other.From())
		if otherPiece == piece {
			others = append(others, other)
		}
	}
	if len(others) == 0 {
		return ""
	}

	ambiguousRank := false
	ambiguousFile := false
	for _, other := range others {
		if other.From().RankOf() == m.From().RankOf() {
			ambiguousRank = true
		}
		if other.From().FileOf() == m.From().FileOf() {
			ambiguousFile = true
		}
	}

	s := ""
	if ambiguousRank || len(others) > 1 {
		s += m.From().FileOf().String()
	}
	if ambiguousFile || len(others) > 1 {
		s += m.From().RankOf().String()
	}
	return s
}

// checkSuffix returns "+" if the move gives check, "#" if it gives
// checkmate and "" otherwise.
func checkSuffix(p *position.Position, mg *movegen.Movegen, m Move) string {
	u := p.DoMove(m)
	defer p.UndoMove(m, u)

	if mg.GenerateCheckers(p) != 0 {
		if mg.GenerateLegalMoves(p).Len() == 0 {
			return "#"
		}
		return "+"
	}
	return ""
}

func upper(c byte) byte {
	return c - 'a' + 'A'
}
