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

func TestDoMoveSimple(t *testing.T) {
	assert := assert.New(t)

	p := NewPosition()
	m := CreateMove(SqD2, SqD4)
	u := p.DoMove(m)

	pt, _ := p.PieceOn(SqD2)
	assert.Equal(PtNone, pt)
	pt, c := p.PieceOn(SqD4)
	assert.Equal(Pawn, pt)
	assert.Equal(White, c)
	assert.Equal(Black, p.NextPlayer())
	assert.Equal(SqD3, p.EnPassantSquare())
	assert.Equal(0, p.HalfMoveClock())

	p.UndoMove(m, u)
	assert.Equal(StartFen, p.StringFen())
}

func TestDoMoveEnPassantTarget(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	p.DoMove(CreateMove(SqA2, SqA4))
	assert.Equal(SqA3, p.EnPassantSquare())
}

func TestDoMoveEnPassantCapture(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("8/8/8/8/k2Pp3/8/8/7K b - d3 0 1")
	require.NoError(t, err)
	m := CreateMove(SqE4, SqD3)
	u := p.DoMove(m)

	assert.Equal(Pawn, u.CapturedPiece)
	assert.Equal(SqD4, u.CapturedSquare)
	pt, _ := p.PieceOn(SqD4)
	assert.Equal(PtNone, pt)
	pt, c := p.PieceOn(SqD3)
	assert.Equal(Pawn, pt)
	assert.Equal(Black, c)

	p.UndoMove(m, u)
	assert.Equal("8/8/8/8/k2Pp3/8/8/7K b - d3 0 1", p.StringFen())
}

func TestDoMoveCastling(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("4k3/8/8/8/8/8/P6P/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	m := CreateMove(SqE1, SqG1)
	u := p.DoMove(m)

	pt, _ := p.PieceOn(SqG1)
	assert.Equal(King, pt)
	pt, _ = p.PieceOn(SqF1)
	assert.Equal(Rook, pt)
	assert.Equal(CastlingNone, p.CastlingRights())

	p.UndoMove(m, u)
	assert.Equal("4k3/8/8/8/8/8/P6P/R3K2R w KQ - 0 1", p.StringFen())
}

func TestDoMovePromotion(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("8/8/3P4/8/k7/8/4p2K/8 b - - 0 3")
	require.NoError(t, err)
	m := CreatePromotionMove(SqE2, SqE1, Queen)
	u := p.DoMove(m)

	pt, c := p.PieceOn(SqE1)
	assert.Equal(Queen, pt)
	assert.Equal(Black, c)
	assert.Equal(BbZero, p.PiecesBb(Black, Pawn))

	p.UndoMove(m, u)
	assert.Equal("8/8/3P4/8/k7/8/4p2K/8 b - - 0 3", p.StringFen())
}

func TestCapturingRookRemovesCastlingRight(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("r3k2r/p1pp1pb1/bn2pnN1/2qP4/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 1 2")
	require.NoError(t, err)
	p.DoMove(CreateMove(SqG6, SqH8))
	assert.False(p.CastlingRights().Has(CastlingBlackOO))
	assert.True(p.CastlingRights().Has(CastlingBlackOOO))
}

func TestHalfMoveClock(t *testing.T) {
	assert := assert.New(t)

	p := NewPosition()
	p.DoMove(CreateMove(SqG1, SqF3))
	assert.Equal(1, p.HalfMoveClock())
	p.DoMove(CreateMove(SqG8, SqF6))
	assert.Equal(2, p.HalfMoveClock())
	// pawn move resets
	p.DoMove(CreateMove(SqE2, SqE4))
	assert.Equal(0, p.HalfMoveClock())
}

func TestMoveNumber(t *testing.T) {
	assert := assert.New(t)

	p := NewPosition()
	assert.Equal(1, p.MoveNumber())
	p.DoMove(CreateMove(SqE2, SqE4))
	assert.Equal(1, p.MoveNumber())
	p.DoMove(CreateMove(SqE7, SqE5))
	assert.Equal(2, p.MoveNumber())
}

func TestNullMove(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/Pp2P3/2N2Q1p/1PPBBPPP/R3K2R b KQkq a3 0 1")
	require.NoError(t, err)
	keyBefore := p.ZobristKey()
	fenBefore := p.StringFen()

	ep := p.DoNullMove()
	assert.Equal(SqA3, ep)
	assert.Equal(White, p.NextPlayer())
	assert.Equal(SqNone, p.EnPassantSquare())
	assert.NotEqual(keyBefore, p.ZobristKey())

	p.UndoNullMove(ep)
	assert.Equal(keyBefore, p.ZobristKey())
	assert.Equal(fenBefore, p.StringFen())
}

// The zobrist round trip over real game trees is in the movegen
// package (zobrist_walk_test.go). Here we check the incremental key
// on a fixed sequence of moves.
func TestZobristIncrementalUpdate(t *testing.T) {
	assert := assert.New(t)

	p := NewPosition()
	moves := []Move{
		CreateMove(SqE2, SqE4),
		CreateMove(SqC7, SqC5),
		CreateMove(SqG1, SqF3),
		CreateMove(SqD7, SqD6),
		CreateMove(SqF1, SqB5),
		CreateMove(SqC8, SqD7),
		CreateMove(SqE1, SqG1), // castling
	}
	var unmakes []UnmakeInfo
	var keys []Key

	for _, m := range moves {
		keys = append(keys, p.ZobristKey())
		unmakes = append(unmakes, p.DoMove(m))
		// the incremental key must match a full recomputation
		assert.Equal(p.computeZobristKey(), p.ZobristKey())
	}

	for i := len(moves) - 1; i >= 0; i-- {
		p.UndoMove(moves[i], unmakes[i])
		assert.Equal(keys[i], p.ZobristKey())
		assert.Equal(p.computeZobristKey(), p.ZobristKey())
	}
	assert.Equal(StartFen, p.StringFen())
}

func TestZobristEpFileDiffersFromNoEp(t *testing.T) {
	assert := assert.New(t)

	// the same piece placement with and without an en passant target
	// must hash differently
	pNoEp, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	pEp, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	assert.NotEqual(pNoEp.ZobristKey(), pEp.ZobristKey())
}

func TestRepetition(t *testing.T) {
	assert := assert.New(t)

	p := NewPosition()
	assert.False(p.IsRepetitionPossible())

	// shuffle the knights back and forth twice - the start position
	// occurs three times in total
	moves := []Move{
		CreateMove(SqG1, SqF3), CreateMove(SqG8, SqF6),
		CreateMove(SqF3, SqG1), CreateMove(SqF6, SqG8),
		CreateMove(SqG1, SqF3), CreateMove(SqG8, SqF6),
		CreateMove(SqF3, SqG1), CreateMove(SqF6, SqG8),
	}
	for _, m := range moves {
		assert.False(p.CheckRepetitions(3))
		p.DoMove(m)
	}
	assert.True(p.CheckRepetitions(3))
	assert.True(p.IsDraw())
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"8/8/4k3/8/8/2K5/8/8 w - - 0 1", true},          // K vs K
		{"8/8/4k3/8/5B2/2K5/8/8 w - - 0 1", true},        // K+B vs K
		{"8/8/4k3/8/5N2/2K5/8/8 w - - 0 1", true},        // K+N vs K
		{"8/3b4/4k3/8/5B2/2K5/8/8 w - - 0 1", false},     // bishops on different colors
		{"3b4/8/4k3/8/5B2/2K5/8/8 w - - 0 1", true},      // same colored bishops
		{"8/8/4k3/8/5N2/2K5/3N4/8 w - - 0 1", false},     // two knights
		{"8/8/4k3/8/8/2K5/4P3/8 w - - 0 1", false},       // pawn on the board
		{"8/8/4k3/8/8/2K5/8/7R w - - 0 1", false},        // rook on the board
	}
	for _, tt := range tests {
		p, err := NewPositionFen(tt.fen)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.HasInsufficientMaterial(), tt.fen)
	}
}

func TestIsCapture(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.True(p.IsCapture(CreateMove(SqD5, SqE6)))
	assert.True(p.IsCapture(CreateMove(SqE5, SqG6)))
	assert.False(p.IsCapture(CreateMove(SqD5, SqD6)))
	assert.False(p.IsCapture(CreateMove(SqE1, SqG1)))

	// en passant is a capture although the target square is empty
	pEp, err := NewPositionFen("8/8/8/8/k2Pp3/8/8/7K b - d3 0 1")
	require.NoError(t, err)
	assert.True(pEp.IsCapture(CreateMove(SqE4, SqD3)))
}

func TestPositionInvariants(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	for c := White; c <= Black; c++ {
		union := BbZero
		for pt := Pawn; pt <= King; pt++ {
			union |= p.PiecesBb(c, pt)
		}
		assert.Equal(p.OccupiedBb(c), union)
		assert.Equal(1, p.PiecesBb(c, King).PopCount())
	}
	assert.Equal(BbZero, p.OccupiedBb(White)&p.OccupiedBb(Black))
	// no pawns on the back ranks
	backRanks := bbOf(SqA1, SqB1, SqC1, SqD1, SqE1, SqF1, SqG1, SqH1,
		SqA8, SqB8, SqC8, SqD8, SqE8, SqF8, SqG8, SqH8)
	assert.Equal(BbZero, (p.PiecesBb(White, Pawn)|p.PiecesBb(Black, Pawn))&backRanks)
}
