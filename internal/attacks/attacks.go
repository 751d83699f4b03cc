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

// Package attacks provides pre computed attack bitboards for the
// leaping pieces (pawn, knight, king) and a hyperbola quintessence
// routine for the sliding pieces (bishop, rook, queen).
// All tables are built once during package initialization and are
// read-only afterwards so they can be shared by any thread.
package attacks

import (
	"math/bits"

	. "github.com/frankkopp/QuintGo/internal/types"
)

// squareMasks holds the pre computed line masks needed by the
// hyperbola quintessence computation for one square.
type squareMasks struct {
	bit      Bitboard
	file     Bitboard
	rank     Bitboard
	diag     Bitboard // a8-h1 direction
	antiDiag Bitboard // a1-h8 direction
}

var (
	pawnPushes  [ColorLength][SqLength]Bitboard
	pawnAtks    [ColorLength][SqLength]Bitboard
	knightAtks  [SqLength]Bitboard
	kingAtks    [SqLength]Bitboard
	masks       [SqLength]squareMasks
	rankAtkTabl [64 * 8]uint8
)

func init() {
	initMasks()
	initRankAttacks()
	initLeapingAttacks()
}

// PawnPushes returns the single and double push targets of a pawn of
// the given color on the given square on an empty board.
func PawnPushes(c Color, sq Square) Bitboard {
	return pawnPushes[c][sq]
}

// PawnAttacks returns the capture targets of a pawn of the given
// color on the given square. Attacks are also tabulated for the back
// rank as they are used to ask which pawns attack a square (e.g. the
// king square).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAtks[c][sq]
}

// KnightAttacks returns the attacked squares of a knight on the
// given square.
func KnightAttacks(sq Square) Bitboard {
	return knightAtks[sq]
}

// KingAttacks returns the attacked squares of a king on the
// given square.
func KingAttacks(sq Square) Bitboard {
	return kingAtks[sq]
}

// SlidingAttacks returns the attacked squares of a sliding piece
// (bishop, rook or queen) on the given square with the given board
// occupancy. Diagonal, anti diagonal and file attacks are computed
// with hyperbola quintessence, rank attacks with a pre computed
// 64x8 lookup table.
func SlidingAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopAttacks(sq, occupied)
	case Rook:
		return rookAttacks(sq, occupied)
	case Queen:
		return bishopAttacks(sq, occupied) | rookAttacks(sq, occupied)
	}
	panic("SlidingAttacks: not a sliding piece type")
}

func bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &masks[sq]
	return lineAttacks(occupied, m.diag, m.bit) | lineAttacks(occupied, m.antiDiag, m.bit)
}

func rookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &masks[sq]
	return lineAttacks(occupied, m.file, m.bit) | rankAttacks(sq, occupied)
}

// lineAttacks implements the hyperbola quintessence trick for one
// line (file, diagonal or anti diagonal):
//  o' = (o&m) - b ; r' = byteswap(o&m) - byteswap(b)
//  attacks = ((o' ^ byteswap(r')) & m)
func lineAttacks(occupied Bitboard, mask Bitboard, bitMask Bitboard) Bitboard {
	forward := occupied & mask
	reverse := forward.SwapBytes()
	forward -= bitMask
	reverse -= bitMask.SwapBytes()
	forward ^= reverse.SwapBytes()
	return forward & mask
}

// rankAttacks looks up the horizontal attacks from the pre computed
// rank attack table indexed by the inner six occupancy bits of the
// rank and the file of the slider.
func rankAttacks(sq Square, occupied Bitboard) Bitboard {
	occupied &^= sq.Bb()
	file := int(sq) & 7
	rankX8 := int(sq) & 56
	rankOccX2 := int((uint64(occupied) >> uint(rankX8)) & 126)
	atks := Bitboard(rankAtkTabl[4*rankOccX2+file])
	return atks << uint(rankX8)
}

func initMasks() {
	for sq := SqA1; sq < SqNone; sq++ {
		r, f := int(sq.RankOf()), int(sq.FileOf())
		m := &masks[sq]
		m.bit = sq.Bb()
		for o := SqA1; o < SqNone; o++ {
			if o == sq {
				continue
			}
			or, of := int(o.RankOf()), int(o.FileOf())
			switch {
			case of == f:
				m.file |= o.Bb()
			case or == r:
				m.rank |= o.Bb()
			}
			if or+of == r+f {
				m.diag |= o.Bb()
			}
			if or-of == r-f {
				m.antiDiag |= o.Bb()
			}
		}
	}
}

// leftRankAtk computes the attacks towards the higher files on a
// single 8-bit rank with the o^(o-2r) trick.
func leftRankAtk(blocking uint8, rook uint8) uint8 {
	occ := blocking | rook
	return occ ^ (blocking - rook)
}

func initRankAttacks() {
	for pieces := 0; pieces < 64; pieces++ {
		for rookShift := 0; rookShift < 8; rookShift++ {
			rook := uint8(1) << uint(rookShift)
			// the outer two bits of the rank are irrelevant blockers
			shifted := uint8(pieces << 1)
			left := leftRankAtk(shifted, rook)
			right := bits.Reverse8(leftRankAtk(bits.Reverse8(shifted), bits.Reverse8(rook)))
			rankAtkTabl[pieces*8+rookShift] = left | right
		}
	}
}

func initLeapingAttacks() {
	singlePushW := [][]Direction{{North}}
	doublePushW := [][]Direction{{North}, {North, North}}
	singlePushB := [][]Direction{{South}}
	doublePushB := [][]Direction{{South}, {South, South}}

	pawnAtkW := [][]Direction{{North, East}, {North, West}}
	pawnAtkB := [][]Direction{{South, East}, {South, West}}

	knightDirs := [][]Direction{
		{North, North, East}, {North, North, West},
		{South, South, East}, {South, South, West},
		{North, East, East}, {North, West, West},
		{South, East, East}, {South, West, West},
	}
	kingDirs := [][]Direction{
		{North}, {East}, {South}, {West},
		{North, East}, {North, West},
		{South, East}, {South, West},
	}

	for sq := SqA1; sq < SqNone; sq++ {
		switch {
		case sq.RankOf() == Rank1 || sq.RankOf() == Rank8:
			// no pawn pushes from the back ranks
		case sq.RankOf() == Rank2:
			pawnPushes[White][sq] = FromSquareShifts(sq, doublePushW)
			pawnPushes[Black][sq] = FromSquareShifts(sq, singlePushB)
		case sq.RankOf() == Rank7:
			pawnPushes[White][sq] = FromSquareShifts(sq, singlePushW)
			pawnPushes[Black][sq] = FromSquareShifts(sq, doublePushB)
		default:
			pawnPushes[White][sq] = FromSquareShifts(sq, singlePushW)
			pawnPushes[Black][sq] = FromSquareShifts(sq, singlePushB)
		}

		// captures are tabulated for the back rank as well
		pawnAtks[White][sq] = FromSquareShifts(sq, pawnAtkW)
		pawnAtks[Black][sq] = FromSquareShifts(sq, pawnAtkB)

		knightAtks[sq] = FromSquareShifts(sq, knightDirs)
		kingAtks[sq] = FromSquareShifts(sq, kingDirs)
	}
}
