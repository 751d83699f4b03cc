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

package position

import (
	. "github.com/frankkopp/QuintGo/internal/types"
)

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution
type Key uint64

// zobristSeed is the fixed seed for the deterministic random
// generator so keys are reproducible across runs.
const zobristSeed uint64 = 123456789

// The random words are drawn in a fixed order:
// 12*64 piece words (piece index * 64 + square), the side to move
// word, 4 castling right words (K, Q, k, q) and 8 en passant file
// words (a-h).
var (
	zobristPieces      [12][SqLength]Key
	zobristBlackToMove Key
	zobristCastling    [CastlingRightsLength]Key
	zobristEpFile      [8]Key
)

// xorShiftRandom is a deterministic 64-bit xorshift generator
type xorShiftRandom struct {
	state uint64
}

func (r *xorShiftRandom) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 5
	r.state = x
	return x
}

func init() {
	rng := xorShiftRandom{state: zobristSeed}
	for bbIdx := 0; bbIdx < 12; bbIdx++ {
		for sq := 0; sq < SqLength; sq++ {
			zobristPieces[bbIdx][sq] = Key(rng.next())
		}
	}
	zobristBlackToMove = Key(rng.next())
	for i := 0; i < CastlingRightsLength; i++ {
		zobristCastling[i] = Key(rng.next())
	}
	for i := 0; i < 8; i++ {
		zobristEpFile[i] = Key(rng.next())
	}
}

// zobristPiece returns the random word for a piece of the given type
// and color on the given square
func zobristPiece(pt PieceType, c Color, sq Square) Key {
	return zobristPieces[int(pt)+int(c)*6][sq]
}

// zobristCastlingRight returns the random word for a single
// castling right flag
func zobristCastlingRight(r CastlingRights) Key {
	switch r {
	case CastlingWhiteOO:
		return zobristCastling[0]
	case CastlingWhiteOOO:
		return zobristCastling[1]
	case CastlingBlackOO:
		return zobristCastling[2]
	case CastlingBlackOOO:
		return zobristCastling[3]
	}
	return 0
}

// computeZobristKey recalculates the zobrist key of the position from
// scratch. During normal operation the key is updated incrementally in
// DoMove/UndoMove - this function is the reference the incremental
// updates have to match.
func (p *Position) computeZobristKey() Key {
	var key Key
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			pieces := p.piecesBb[c][pt]
			for pieces != 0 {
				key ^= zobristPiece(pt, c, pieces.PopLsb())
			}
		}
	}
	if p.nextPlayer == Black {
		key ^= zobristBlackToMove
	}
	for _, right := range []CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO} {
		if p.castlingRights.Has(right) {
			key ^= zobristCastlingRight(right)
		}
	}
	if p.enPassantSquare != SqNone {
		key ^= zobristEpFile[p.enPassantSquare.FileOf()]
	}
	return key
}
