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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/QuintGo/internal/types"
)

func bbOf(squares ...Square) Bitboard {
	b := BbZero
	for _, sq := range squares {
		b.PushSquare(sq)
	}
	return b
}

func TestFenStartPosition(t *testing.T) {
	assert := assert.New(t)

	p := NewPosition()
	assert.Equal(White, p.NextPlayer())
	assert.Equal(CastlingAny, p.CastlingRights())
	assert.Equal(SqNone, p.EnPassantSquare())
	assert.Equal(0, p.HalfMoveClock())
	assert.Equal(1, p.MoveNumber())
	assert.Equal(StartFen, p.StringFen())
}

func TestFenRoundTrip(t *testing.T) {
	assert := assert.New(t)

	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/Pp2P3/2N2Q1p/1PPBBPPP/R3K2R b KQkq a3 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/4k3/8/3P4/5K2/r7 w - - 1 1",
		"7k/8/8/KPp4r/8/8/8/8 w - c6 0 17",
		"4k3/8/8/8/8/8/P6P/R3K2R w KQ - 0 1",
		"1R2k3/2Q5/8/8/7p/8/5P1P/6K1 b - - 7 42",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.Equal(fen, p.StringFen())
	}
}

func TestFenCanonicalCastlingOrder(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w qkQK - 0 1")
	require.NoError(t, err)
	assert.Equal("KQkq", p.CastlingRights().String())
}

func TestFenErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"field count", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"duplicate castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQKq - 0 1"},
		{"unknown castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w abc - 0 1"},
		{"bad ep target", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq x9 0 1"},
		{"ep target wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1"},
		{"half move clock too big", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 50 1"},
		{"half move clock not a number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"full move number not a number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x"},
		{"full move number too big", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 65536"},
		{"bad piece char", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPositionFen(tt.fen)
			assert.Nil(t, p)
			assert.Error(t, err)
			assert.IsType(t, &FenError{}, err)
		})
	}
}

func TestFenPiecePlacement(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("1R2k3/2Q5/8/8/7p/8/5P1P/6K1 b - - 7 42")
	require.NoError(t, err)

	assert.Equal(bbOf(SqF2, SqH2), p.PiecesBb(White, Pawn))
	assert.Equal(bbOf(SqB8), p.PiecesBb(White, Rook))
	assert.Equal(bbOf(SqC7), p.PiecesBb(White, Queen))
	assert.Equal(bbOf(SqG1), p.PiecesBb(White, King))
	assert.Equal(bbOf(SqH4), p.PiecesBb(Black, Pawn))
	assert.Equal(bbOf(SqE8), p.PiecesBb(Black, King))
	assert.Equal(bbOf(SqB8, SqC7, SqF2, SqG1, SqH2), p.OccupiedBb(White))
	assert.Equal(bbOf(SqE8, SqH4), p.OccupiedBb(Black))
}
