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

// PieceType is a set of constants for piece types in chess
type PieceType int8

// PieceType constants
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength int = iota
)

// PtNone is the undefined piece type (e.g. an empty square)
const PtNone PieceType = -1

// IsValid checks if pt is a valid piece type
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// IsSlider returns true if the piece type is a sliding piece
// (bishop, rook or queen)
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeChars = [PtLength]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the lower case fen character of the piece type
func (pt PieceType) Char() byte {
	if !pt.IsValid() {
		return '-'
	}
	return pieceTypeChars[pt]
}

// PieceTypeFromChar returns the piece type for the given lower case
// fen character or PtNone if the character is not a piece letter.
func PieceTypeFromChar(c byte) PieceType {
	for pt := Pawn; pt <= King; pt++ {
		if pieceTypeChars[pt] == c {
			return pt
		}
	}
	return PtNone
}

// String returns the lower case fen letter of the piece type
func (pt PieceType) String() string {
	return string(rune(pt.Char()))
}
