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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/QuintGo/internal/position"
)

// The zobrist key must round trip through make/unmake for every move
// of the tree and the incrementally maintained key must equal a key
// computed from scratch for every visited position. Recomputation
// from scratch happens through re-parsing the position's fen.
func TestZobristRoundTripTree(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	mg := NewMovegen()
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		walkZobrist(t, p, mg, 3)
	}
}

func walkZobrist(t *testing.T, p *position.Position, mg *Movegen, depth int) {
	fresh, err := position.NewPositionFen(p.StringFen())
	require.NoError(t, err)
	assert.Equal(t, fresh.ZobristKey(), p.ZobristKey(),
		"incremental key differs from recomputed key for %s", p.StringFen())

	if depth == 0 {
		return
	}
	for _, m := range *mg.GenerateLegalMoves(p) {
		keyBefore := p.ZobristKey()
		u := p.DoMove(m)
		walkZobrist(t, p, mg, depth-1)
		p.UndoMove(m, u)
		assert.Equal(t, keyBefore, p.ZobristKey(),
			"key not restored after %s on %s", m.StringUci(), p.StringFen())
	}
}
