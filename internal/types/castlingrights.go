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

// CastlingRights encodes the castling state of a game as bit flags
type CastlingRights uint8

// CastlingRights constants
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingAny      CastlingRights = CastlingWhiteOO | CastlingWhiteOOO | CastlingBlackOO | CastlingBlackOOO
)

// CastlingRightsLength number of castling rights
const CastlingRightsLength = 4

// Has checks if the state has the given castling right set
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r != 0
}

// Add adds the given right to the castling state
func (cr *CastlingRights) Add(r CastlingRights) {
	*cr |= r
}

// Remove removes the given right from the castling state
func (cr *CastlingRights) Remove(r CastlingRights) {
	*cr &^= r
}

// CastlingRightsOf returns both castling rights of the given color
func CastlingRightsOf(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOO | CastlingWhiteOOO
	}
	return CastlingBlackOO | CastlingBlackOOO
}

// String returns the fen field for the castling rights
// in canonical order KQkq or "-" when no right is left.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
