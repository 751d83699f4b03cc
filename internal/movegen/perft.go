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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/QuintGo/internal/logging"
	"github.com/frankkopp/QuintGo/internal/position"
	. "github.com/frankkopp/QuintGo/internal/types"
	"github.com/frankkopp/QuintGo/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft is class to test move generation of the chess engine.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine
// to stop the currently running perft test
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// StartPerft is using the move generator to check the number of
// moves generated for a given depth and the number of captures,
// en passants, castles, promotions, checks and mates at the final
// depth. Results are reported through the standard logger when
// verbose is true.
func (pf *Perft) StartPerft(fen string, depth int, verbose bool) {
	log := logging.GetLog()

	pf.resetCounter()
	pf.stopFlag = false

	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Errorf("perft: invalid fen: %s", err)
		return
	}
	mg := NewMovegen()

	if verbose {
		log.Info(out.Sprintf("Performing PERFT Test for Depth %d", depth))
	}

	start := time.Now()
	result := pf.miniMax(p, mg, depth)
	elapsed := time.Since(start)

	pf.Nodes = result

	if verbose {
		log.Info(out.Sprintf("Time         : %d ms", elapsed.Milliseconds()))
		log.Info(out.Sprintf("NPS          : %d nps", util.Nps(result, elapsed)))
		log.Info(out.Sprintf("Results:"))
		log.Info(out.Sprintf("   Nodes     : %d", pf.Nodes))
		log.Info(out.Sprintf("   Captures  : %d", pf.CaptureCounter))
		log.Info(out.Sprintf("   EnPassant : %d", pf.EnpassantCounter))
		log.Info(out.Sprintf("   Checks    : %d", pf.CheckCounter))
		log.Info(out.Sprintf("   CheckMates: %d", pf.CheckMateCounter))
		log.Info(out.Sprintf("   Castles   : %d", pf.CastleCounter))
		log.Info(out.Sprintf("   Promotions: %d", pf.PromotionCounter))
	}
}

// PerftDivide returns the number of leaf nodes at the given depth for
// each root move of the position.
func (pf *Perft) PerftDivide(fen string, depth int) (map[Move]uint64, error) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		return nil, err
	}
	mg := NewMovegen()

	divide := map[Move]uint64{}
	moves := mg.GenerateLegalMoves(p)
	for _, m := range *moves {
		u := p.DoMove(m)
		divide[m] = pf.countLeaves(p, mg, depth-1)
		p.UndoMove(m, u)
	}
	return divide, nil
}

func (pf *Perft) countLeaves(p *position.Position, mg *Movegen, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range *mg.GenerateLegalMoves(p) {
		u := p.DoMove(m)
		nodes += pf.countLeaves(p, mg, depth-1)
		p.UndoMove(m, u)
	}
	return nodes
}

func (pf *Perft) miniMax(p *position.Position, mg *Movegen, depth int) uint64 {
	if pf.stopFlag {
		return 0
	}
	if depth == 0 {
		return 1
	}

	var nodes uint64
	moves := mg.GenerateLegalMoves(p)
	for _, m := range *moves {
		if depth == 1 {
			pf.classify(p, mg, m)
		}
		u := p.DoMove(m)
		nodes += pf.miniMax(p, mg, depth-1)
		p.UndoMove(m, u)
	}
	return nodes
}

// classify counts move types at leaf depth - the move has not been
// made on the position yet.
func (pf *Perft) classify(p *position.Position, mg *Movegen, m Move) {
	moved, _ := p.PieceOn(m.From())

	if p.IsCapture(m) {
		pf.CaptureCounter++
		if moved == Pawn && m.To() == p.EnPassantSquare() {
			pf.EnpassantCounter++
		}
	}
	if moved == King && SquareDistance(m.From(), m.To()) == 2 {
		pf.CastleCounter++
	}
	if m.IsPromotion() {
		pf.PromotionCounter++
	}

	u := p.DoMove(m)
	if mg.GenerateCheckers(p) != 0 {
		pf.CheckCounter++
		if mg.GenerateLegalMoves(p).Len() == 0 {
			pf.CheckMateCounter++
		}
	}
	p.UndoMove(m, u)
}

func (pf *Perft) resetCounter() {
	pf.Nodes = 0
	pf.CheckCounter = 0
	pf.CheckMateCounter = 0
	pf.CaptureCounter = 0
	pf.EnpassantCounter = 0
	pf.CastleCounter = 0
	pf.PromotionCounter = 0
}
