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

// Rank represents a chess board rank 1-8
type Rank uint8

// Rank constants
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// IsValid checks if r is a valid rank
func (r Rank) IsValid() bool {
	return r < RankNone
}

// RankFromChar returns the rank for the given character ('1'-'8')
// or RankNone if the character is not a rank digit.
func RankFromChar(c byte) Rank {
	if c < '1' || c > '8' {
		return RankNone
	}
	return Rank(c - '1')
}

func (r Rank) distance(r2 Rank) int {
	d := int(r) - int(r2)
	if d < 0 {
		return -d
	}
	return d
}

// PawnHomeRank returns the rank pawns of the given color start from
func PawnHomeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank pawns of the given color promote on
func PromotionRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// String returns a string letter for the rank (e.g. 1 - 8)
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + r))
}
