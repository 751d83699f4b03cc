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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/QuintGo/internal/types"
)

func bbOf(squares ...Square) Bitboard {
	b := BbZero
	for _, sq := range squares {
		b.PushSquare(sq)
	}
	return b
}

func TestKnightAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bbOf(SqB5, SqC6, SqE6, SqF5, SqB3, SqC2, SqE2, SqF3), KnightAttacks(SqD4))
	assert.Equal(bbOf(SqB6, SqC7), KnightAttacks(SqA8))
	assert.Equal(bbOf(SqB6, SqC5, SqC3, SqB2), KnightAttacks(SqA4))
}

func TestKingAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bbOf(SqC5, SqD5, SqE5, SqC4, SqE4, SqC3, SqD3, SqE3), KingAttacks(SqD4))
	assert.Equal(bbOf(SqA7, SqB7, SqB8), KingAttacks(SqA8))
	assert.Equal(bbOf(SqB1, SqB2, SqC2, SqD2, SqD1), KingAttacks(SqC1))
}

func TestPawnPushes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bbOf(SqD3, SqD4), PawnPushes(White, SqD2))
	assert.Equal(bbOf(SqB4), PawnPushes(White, SqB3))
	assert.Equal(bbOf(SqG8), PawnPushes(White, SqG7))
	assert.Equal(BbZero, PawnPushes(White, SqG8))
	assert.Equal(bbOf(SqD6, SqD5), PawnPushes(Black, SqD7))
	assert.Equal(bbOf(SqB5), PawnPushes(Black, SqB6))
	assert.Equal(bbOf(SqG1), PawnPushes(Black, SqG2))
	assert.Equal(BbZero, PawnPushes(Black, SqG1))
}

func TestPawnAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bbOf(SqC3, SqE3), PawnAttacks(White, SqD2))
	assert.Equal(bbOf(SqB8), PawnAttacks(White, SqA7))
	// even though a pawn can never be on the back rank the attacks
	// are tabulated - they find checking pawns from the king square
	assert.Equal(bbOf(SqE2, SqG2), PawnAttacks(White, SqF1))
	assert.Equal(bbOf(SqC6, SqE6), PawnAttacks(Black, SqD7))
	assert.Equal(bbOf(SqB1), PawnAttacks(Black, SqA2))
	assert.Equal(bbOf(SqE7, SqG7), PawnAttacks(Black, SqF8))
}

func TestRankAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bbOf(SqA4, SqB4, SqC4, SqD4, SqE4, SqF4, SqG4),
		rankAttacks(SqH4, BbZero))
	assert.Equal(bbOf(SqB4, SqC4, SqE4, SqF4, SqG4, SqH4),
		rankAttacks(SqD4, bbOf(SqB4)))
	assert.Equal(bbOf(SqB4, SqC4, SqE4, SqF4, SqG4, SqH4),
		rankAttacks(SqD4, bbOf(SqA4, SqB4)))
	assert.Equal(bbOf(SqA4, SqC4, SqD4),
		rankAttacks(SqB4, bbOf(SqD4, SqE4, SqH4)))
	assert.Equal(bbOf(SqA4, SqB4, SqC4, SqE4, SqF4),
		rankAttacks(SqD4, bbOf(SqA4, SqF4)))
	assert.Equal(bbOf(SqC4, SqE4),
		rankAttacks(SqD4, bbOf(SqC4, SqE4)))
}

func TestBishopAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bbOf(SqA1, SqB2, SqC3, SqE5, SqF6, SqG7, SqH8, SqC5, SqB6, SqA7, SqE3, SqF2, SqG1),
		SlidingAttacks(Bishop, SqD4, BbZero))
	assert.Equal(bbOf(SqB2, SqC3, SqE5, SqC5, SqB6, SqA7, SqE3, SqF2, SqG1),
		SlidingAttacks(Bishop, SqD4, bbOf(SqB2, SqA7, SqE5)))
	// blockers behind blockers are irrelevant
	assert.Equal(bbOf(SqB2, SqC3, SqE5, SqC5, SqB6, SqA7, SqE3, SqF2, SqG1),
		SlidingAttacks(Bishop, SqD4, bbOf(SqB2, SqA7, SqE5, SqA1, SqB1, SqF8, SqG6, SqC4)))
}

func TestRookAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(bbOf(SqD1, SqD2, SqD3, SqD5, SqD6, SqD7, SqD8, SqA4, SqB4, SqC4, SqE4, SqF4, SqG4, SqH4),
		SlidingAttacks(Rook, SqD4, BbZero))
	assert.Equal(bbOf(SqD3, SqD5, SqD6, SqD7, SqA4, SqB4, SqC4, SqE4, SqF4),
		SlidingAttacks(Rook, SqD4, bbOf(SqA4, SqD7, SqF4, SqD3)))
	assert.Equal(bbOf(SqD3, SqD5, SqD6, SqD7, SqA4, SqB4, SqC4, SqE4, SqF4),
		SlidingAttacks(Rook, SqD4, bbOf(SqA4, SqD7, SqD8, SqF4, SqD3, SqD2, SqD1)))
	// own square in the occupancy is ignored
	assert.Equal(bbOf(SqE1, SqE2, SqE4, SqE5, SqE6, SqE7, SqE8, SqA3, SqB3, SqC3, SqD3, SqF3, SqG3, SqH3),
		SlidingAttacks(Rook, SqE3, bbOf(SqE3)))
}

func TestQueenAttacks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SlidingAttacks(Bishop, SqD4, BbZero)|SlidingAttacks(Rook, SqD4, BbZero),
		SlidingAttacks(Queen, SqD4, BbZero))
	assert.Equal(bbOf(SqB2, SqC3, SqE5, SqF6, SqG7, SqH8, SqC5, SqB6, SqA7, SqE3, SqF2, SqG1,
		SqD1, SqD2, SqD3, SqD5, SqA4, SqB4, SqC4, SqE4, SqF4, SqG4, SqH4),
		SlidingAttacks(Queen, SqD4, bbOf(SqD5, SqB2, SqH4)))
}
