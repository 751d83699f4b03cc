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
	. "github.com/frankkopp/QuintGo/internal/types"
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestStandardPerft(t *testing.T) {
	assert := assert.New(t)

	maxDepth := 5
	perft := NewPerft()

	var results = [7][6]uint64{
		// N         Nodes   Captures      EP    Checks   Mates
		{0, 1, 0, 0, 0, 0},
		{1, 20, 0, 0, 0, 0},
		{2, 400, 0, 0, 0, 0},
		{3, 8_902, 34, 0, 12, 0},
		{4, 197_281, 1_576, 0, 469, 8},
		{5, 4_865_609, 82_719, 258, 27_351, 347},
		{6, 119_060_324, 2_812_008, 5_248, 809_099, 10_828},
	}

	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft(position.StartFen, depth, false)
		assert.Equal(results[depth][1], perft.Nodes)
		assert.Equal(results[depth][2], perft.CaptureCounter)
		assert.Equal(results[depth][3], perft.EnpassantCounter)
		assert.Equal(results[depth][4], perft.CheckCounter)
		assert.Equal(results[depth][5], perft.CheckMateCounter)
	}
}

func TestKiwipetePerft(t *testing.T) {
	assert := assert.New(t)

	perft := NewPerft()

	var results = [5][2]uint64{
		{0, 1},
		{1, 48},
		{2, 2_039},
		{3, 97_862},
		{4, 4_085_603},
	}

	maxDepth := 3
	if !testing.Short() {
		maxDepth = 4
	}
	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft(kiwipeteFen, depth, false)
		assert.Equal(results[depth][1], perft.Nodes)
	}
}

func TestKiwipetePerft3Counters(t *testing.T) {
	assert := assert.New(t)

	perft := NewPerft()
	perft.StartPerft(kiwipeteFen, 3, false)

	assert.Equal(uint64(97_862), perft.Nodes)
	assert.Equal(uint64(17_102), perft.CaptureCounter)
	assert.Equal(uint64(45), perft.EnpassantCounter)
	assert.Equal(uint64(3_162), perft.CastleCounter)
	assert.Equal(uint64(0), perft.PromotionCounter)
	assert.Equal(uint64(993), perft.CheckCounter)
	assert.Equal(uint64(1), perft.CheckMateCounter)
}

func TestPerftPosition3(t *testing.T) {
	assert := assert.New(t)

	perft := NewPerft()
	perft.StartPerft("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, false)
	assert.Equal(uint64(674_624), perft.Nodes)
}

func TestPerftDivideStartPosition(t *testing.T) {
	assert := assert.New(t)

	perft := NewPerft()

	// depth 1: every root move is exactly one leaf
	divide, err := perft.PerftDivide(position.StartFen, 1)
	require.NoError(t, err)
	assert.Equal(20, len(divide))
	for m, nodes := range divide {
		assert.Equal(uint64(1), nodes, m.StringUci())
	}

	// depth 3 distribution
	want := map[Move]uint64{
		CreateMove(SqA2, SqA3): 380,
		CreateMove(SqB2, SqB3): 420,
		CreateMove(SqC2, SqC3): 420,
		CreateMove(SqD2, SqD3): 539,
		CreateMove(SqE2, SqE3): 599,
		CreateMove(SqF2, SqF3): 380,
		CreateMove(SqG2, SqG3): 420,
		CreateMove(SqH2, SqH3): 380,
		CreateMove(SqA2, SqA4): 420,
		CreateMove(SqB2, SqB4): 421,
		CreateMove(SqC2, SqC4): 441,
		CreateMove(SqD2, SqD4): 560,
		CreateMove(SqE2, SqE4): 600,
		CreateMove(SqF2, SqF4): 401,
		CreateMove(SqG2, SqG4): 421,
		CreateMove(SqH2, SqH4): 420,
		CreateMove(SqB1, SqA3): 400,
		CreateMove(SqB1, SqC3): 440,
		CreateMove(SqG1, SqF3): 440,
		CreateMove(SqG1, SqH3): 400,
	}
	divide3, err := perft.PerftDivide(position.StartFen, 3)
	require.NoError(t, err)
	assert.Equal(want, divide3)
}

func TestPerftEnPassantPosition(t *testing.T) {
	assert := assert.New(t)

	// spec scenario: the b4a3 en passant capture is a legal root move
	perft := NewPerft()
	divide, err := perft.PerftDivide("r3k2r/p1ppqpb1/bn2pnp1/3PN3/Pp2P3/2N2Q1p/1PPBBPPP/R3K2R b KQkq a3 0 1", 1)
	require.NoError(t, err)
	_, hasEp := divide[CreateMove(SqB4, SqA3)]
	assert.True(hasEp)
}
