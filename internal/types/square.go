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

// Square represents one of the 64 squares of a chess board.
// Squares are numbered from A1 (0) to H8 (63) rank by rank.
type Square uint8

// Square constants
//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// SqLength number of squares on a board
const SqLength int = 64

// IsValid checks a value of type square if it represents a valid
// square on a chess board (A1-H8).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare returns the square of the given file and rank
func MakeSquare(f File, r Rank) Square {
	return Square(int(r)<<3 + int(f))
}

// MakeSquareFromString returns the square for a string in algebraic
// notation (e.g. "e4"). Returns SqNone if the string does not denote
// a valid square.
func MakeSquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := FileFromChar(s[0])
	r := RankFromChar(s[1])
	if f == FileNone || r == RankNone {
		return SqNone
	}
	return MakeSquare(f, r)
}

// SquareDistance returns the absolute distance in squares
// between two squares
func SquareDistance(s1 Square, s2 Square) int {
	d1 := s1.FileOf().distance(s2.FileOf())
	d2 := s1.RankOf().distance(s2.RankOf())
	if d1 > d2 {
		return d1
	}
	return d2
}

// To returns the square moved into the given direction from this
// square. Returns SqNone if the target would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
		return sq + 8
	case South:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
		return sq - 8
	case East:
		if sq.FileOf() == FileH {
			return SqNone
		}
		return sq + 1
	case West:
		if sq.FileOf() == FileA {
			return SqNone
		}
		return sq - 1
	}
	return SqNone
}

// String returns the algebraic notation of the square (e.g. "e4")
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
