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

package uci

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testBuffer struct {
	strings.Builder
}

func newTestHandler() (*UciHandler, *testBuffer) {
	u := NewUciHandler()
	buf := &testBuffer{}
	u.OutIo = bufio.NewWriter(buf)
	return u, buf
}

func TestUciHandshake(t *testing.T) {
	assert := assert.New(t)

	u, buf := newTestHandler()
	u.Command("uci")
	out := buf.String()
	assert.Contains(out, "id name QuintGo")
	assert.Contains(out, "uciok")
}

func TestCommandBeforeHandshakeIgnored(t *testing.T) {
	assert := assert.New(t)

	u, buf := newTestHandler()
	u.Command("isready")
	assert.NotContains(buf.String(), "readyok")

	u.Command("uci")
	u.Command("isready")
	assert.Contains(buf.String(), "readyok")
}

func TestPositionCommand(t *testing.T) {
	assert := assert.New(t)

	u, _ := newTestHandler()
	u.Command("uci")

	u.Command("position startpos moves e2e4 e7e5")
	assert.Equal("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		u.myPosition.StringFen())

	u.Command("position fen r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		u.myPosition.StringFen())
}

func TestPositionCommandRejectsBadFen(t *testing.T) {
	assert := assert.New(t)

	u, buf := newTestHandler()
	u.Command("uci")
	before := u.myPosition.StringFen()

	u.Command("position fen not a fen at all")
	assert.Contains(buf.String(), "rejected")
	assert.Equal(before, u.myPosition.StringFen())
}

func TestGoAndStop(t *testing.T) {
	assert := assert.New(t)

	u, buf := newTestHandler()
	u.Command("uci")
	u.Command("position startpos")
	u.Command("go movetime 2000")
	time.Sleep(10 * time.Millisecond)
	u.Command("stop")
	u.mySearch.WaitWhileSearching()
	assert.Contains(buf.String(), "bestmove")
}

func TestGoWhileSearchingIgnored(t *testing.T) {
	assert := assert.New(t)

	u, _ := newTestHandler()
	u.Command("uci")
	u.Command("position startpos")
	u.Command("go movetime 1000")
	assert.True(u.mySearch.IsSearching())
	// second go must not crash or start a second search
	u.Command("go movetime 1000")
	u.Command("stop")
	assert.False(u.mySearch.IsSearching())
}

func TestReadSearchLimits(t *testing.T) {
	assert := assert.New(t)

	u, _ := newTestHandler()
	u.Command("uci")

	sl, ok := u.readSearchLimits(strings.Fields("go wtime 60000 btime 50000 winc 1000 binc 2000 movestogo 20"))
	assert.True(ok)
	assert.Equal(60*time.Second, sl.WhiteTime)
	assert.Equal(50*time.Second, sl.BlackTime)
	assert.Equal(time.Second, sl.WhiteInc)
	assert.Equal(2*time.Second, sl.BlackInc)
	assert.Equal(20, sl.MovesToGo)

	sl, ok = u.readSearchLimits(strings.Fields("go depth 6 nodes 100000"))
	assert.True(ok)
	assert.Equal(6, sl.Depth)
	assert.Equal(uint64(100_000), sl.Nodes)

	sl, ok = u.readSearchLimits(strings.Fields("go infinite"))
	assert.True(ok)
	assert.True(sl.Infinite)

	// depth and mate are mutually exclusive
	_, ok = u.readSearchLimits(strings.Fields("go depth 5 mate 3"))
	assert.False(ok)
}
