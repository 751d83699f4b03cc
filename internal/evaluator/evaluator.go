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

// Package evaluator contains the static evaluation of chess
// positions. Evaluation is pure material balance and is returned from
// the point of view of the side to move so every search level can
// treat higher as better.
package evaluator

import (
	"github.com/frankkopp/QuintGo/internal/position"
	. "github.com/frankkopp/QuintGo/internal/types"
)

// piece values in centipawns, calibrated on the AlphaZero piece
// value estimates
var pieceValues = [PtLength]Value{
	100,     // pawn
	305,     // knight
	333,     // bishop
	563,     // rook
	950,     // queen
	100_000, // king
}

// PieceValue returns the material value of a piece type in
// centipawns
func PieceValue(pt PieceType) Value {
	return pieceValues[pt]
}

// Evaluator represents a data structure and functionality for
// static evaluation of chess positions.
type Evaluator struct{}

// NewEvaluator creates a new instance of an Evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the material balance of the position relative to
// the side to move (positive = side to move is ahead).
func (e *Evaluator) Evaluate(p *position.Position) Value {
	var value Value
	for pt := Pawn; pt <= King; pt++ {
		diff := p.PiecesBb(White, pt).PopCount() - p.PiecesBb(Black, pt).PopCount()
		value += Value(diff) * pieceValues[pt]
	}
	if p.NextPlayer() == Black {
		value = value.Flip()
	}
	return value
}
