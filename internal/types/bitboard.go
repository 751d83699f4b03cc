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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board
type Bitboard uint64

// Bitboard constants
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	// shift masks are applied before a file shift to erase
	// bits which would otherwise wrap to the next rank
	eastShiftMask Bitboard = 0x7f7f7f7f7f7f7f7f
	westShiftMask Bitboard = 0xfefefefefefefefe
)

// pre computed bitboards for each square
var sqBb [SqLength]Bitboard

// pre computed bitboards for the squares strictly between two squares
// (empty if the squares are not on a common rank, file or diagonal)
var intermediateBb [SqLength][SqLength]Bitboard

// pre computed bitboards for the full line (rank, file or diagonal)
// through two squares incl. both squares (empty if not on a common line)
var lineBb [SqLength][SqLength]Bitboard

func initSquareBitboards() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = BbOne << sq
	}
}

func initIntermediate() {
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			fr, ff := int(from.RankOf()), int(from.FileOf())
			tr, tf := int(to.RankOf()), int(to.FileOf())
			dr, df := sign(tr-fr), sign(tf-ff)
			// only rank, file or diagonal lines
			if from == to || (dr != 0 && df != 0 && abs(tr-fr) != abs(tf-ff)) {
				continue
			}
			b := BbZero
			r, f := fr+dr, ff+df
			for r != tr || f != tf {
				b |= MakeSquare(File(f), Rank(r)).Bb()
				r += dr
				f += df
			}
			intermediateBb[from][to] = b

			// extend to the full line through both squares
			line := from.Bb() | to.Bb() | b
			for r, f = fr-dr, ff-df; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r-dr, f-df {
				line |= MakeSquare(File(f), Rank(r)).Bb()
			}
			for r, f = tr+dr, tf+df; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+dr, f+df {
				line |= MakeSquare(File(f), Rank(r)).Bb()
			}
			lineBb[from][to] = line
		}
	}
}

func sign(i int) int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	}
	return 0
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Bb returns a Bitboard of the square by accessing the pre calculated
// square to bitboard array.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Intermediate returns the squares strictly between sq and sqTo if
// both are on a common rank, file or diagonal. Empty otherwise.
func (sq Square) Intermediate(sqTo Square) Bitboard {
	return intermediateBb[sq][sqTo]
}

// Line returns the full rank, file or diagonal through sq and sqTo
// incl. both squares. Empty if not on a common line.
func (sq Square) Line(sqTo Square) Bitboard {
	return lineBb[sq][sqTo]
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bb()
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.Bb()
}

// Has tests if a square (bit) is set
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// Lsb returns the least significant bit of the 64-bit Bitboard.
// Must not be called on an empty bitboard.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant bit of the 64-bit Bitboard
// and removes it from the bitboard.
// Must not be called on an empty bitboard.
func (b *Bitboard) PopLsb() Square {
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// SwapBytes reverses the byte order of the bitboard which mirrors
// the board vertically (rank 1 <-> rank 8)
func (b Bitboard) SwapBytes() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// Shift shifts all bits of the bitboard by one square into the given
// direction. The file masks are applied before an east or west shift
// so no bit wraps to the neighboring rank.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case East:
		b &= eastShiftMask
	case West:
		b &= westShiftMask
	}
	if d >= 0 {
		return b << uint(d)
	}
	return b >> uint(-d)
}

// FromSquareShifts returns the union of the destinations reached from
// the square by each of the given direction sequences. Shifts leaving
// the board vanish through the wrap masks.
func FromSquareShifts(sq Square, shiftDirsList [][]Direction) Bitboard {
	start := sq.Bb()
	result := BbZero
	for _, shiftDirs := range shiftDirsList {
		shifted := start
		for _, d := range shiftDirs {
			shifted = shifted.Shift(d)
		}
		result |= shifted
	}
	return result &^ start
}

// String returns a string of 0s and 1s for the 64 bits of the bitboard
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if b&(BbOne<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// StringBoard returns a visual board representation of the bitboard
// for debugging
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
