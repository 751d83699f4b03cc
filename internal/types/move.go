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

package types

// Move is a 16-bit encoded chess move:
//  Bit  0 -  5: to square     (0-63)
//  Bit  6 - 11: from square   (0-63)
//  Bit 12 - 14: promotion type + 1 (0 when no promotion)
// There is no move kind tag - castling, en passant and double pawn
// pushes are recognized from the move in the context of a position.
type Move uint16

// MoveNone empty non valid move
const MoveNone Move = 0

const (
	toMask    Move = 0x3f
	fromShift uint = 6
	promShift uint = 12
)

// CreateMove returns a move with the given from and to square
func CreateMove(from Square, to Square) Move {
	return Move(from)<<fromShift | Move(to)
}

// CreatePromotionMove returns a pawn promotion move with the given
// from and to square and the promotion piece type
func CreatePromotionMove(from Square, to Square, pt PieceType) Move {
	return Move(pt+1)<<promShift | Move(from)<<fromShift | Move(to)
}

// From returns the from square of the move
func (m Move) From() Square {
	return Square(m>>fromShift) & Square(toMask)
}

// To returns the to square of the move
func (m Move) To() Square {
	return Square(m & toMask)
}

// PromotionType returns the promotion piece type of the move
// or PtNone if the move is no promotion
func (m Move) PromotionType() PieceType {
	p := PieceType(m >> promShift)
	if p == 0 {
		return PtNone
	}
	return p - 1
}

// IsPromotion returns true if the move promotes a pawn
func (m Move) IsPromotion() bool {
	return m>>promShift != 0
}

// MoveFromUci parses a move in UCI long algebraic notation
// (e.g. e2e4, e7e8q). Returns MoveNone for malformed strings.
// The move is not checked for legality.
func MoveFromUci(s string) Move {
	if len(s) < 4 || len(s) > 5 {
		return MoveNone
	}
	from := MakeSquareFromString(s[0:2])
	to := MakeSquareFromString(s[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone
	}
	if len(s) == 5 {
		pt := PieceTypeFromChar(s[4])
		if pt == PtNone || pt == Pawn || pt == King {
			return MoveNone
		}
		return CreatePromotionMove(from, to, pt)
	}
	return CreateMove(from, to)
}

// StringUci returns the move in UCI long algebraic notation
// (e.g. e2e4, e7e8q)
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionType().String()
	}
	return s
}

// String returns the UCI notation of the move
func (m Move) String() string {
	return m.StringUci()
}
