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

// Package history provides the butterfly history tables the search
// uses to order quiet moves. For every (from,to) square pair the
// tables count how often the move was considered and how often it
// produced a beta cutoff.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/frankkopp/QuintGo/internal/types"
)

var out = message.NewPrinter(language.German)

// scale factor applied to the cutoff/considered ratio so the integer
// score has enough resolution for sorting
const historyScale = 1_000

// History holds the butterfly tables updated during search.
type History struct {
	Considered [SqLength][SqLength]uint64
	Cutoffs    [SqLength][SqLength]uint64
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Clear resets all counters
func (h *History) Clear() {
	*h = History{}
}

// RecordConsidered counts a move as considered by the search
func (h *History) RecordConsidered(m Move) {
	h.Considered[m.From()][m.To()]++
}

// RecordCutoff counts a move as having produced a beta cutoff
func (h *History) RecordCutoff(m Move) {
	h.Cutoffs[m.From()][m.To()]++
}

// Score returns the ordering score of a quiet move as the scaled
// ratio of cutoffs to considerations. As a cutoff is always also a
// consideration the score never exceeds the scale factor.
func (h *History) Score(m Move) int64 {
	considered := h.Considered[m.From()][m.To()]
	if considered == 0 {
		considered = 1
	}
	return int64(h.Cutoffs[m.From()][m.To()] * historyScale / considered)
}

// String returns a string listing all square pairs with at least one
// recorded cutoff.
func (h *History) String() string {
	var sb strings.Builder
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			if h.Cutoffs[from][to] == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("%s%s: %d/%d\n",
				from.String(), to.String(), h.Cutoffs[from][to], h.Considered[from][to]))
		}
	}
	return sb.String()
}
