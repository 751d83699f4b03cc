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

package search

import (
	"fmt"
	"time"

	"github.com/frankkopp/QuintGo/internal/moveslice"
)

// defaultMaxDepth is the iterative deepening depth used when neither
// a depth nor a mate limit is given
const defaultMaxDepth = 20

// defaultMovesToGo is assumed when the clock is given without a
// moves-to-go value
const defaultMovesToGo = 40

// absoluteMaxDepth is the deepest supported iteration - the
// transposition table encodes the remaining depth in 6 bits
const absoluteMaxDepth = 63

// Limits is a data structure to hold all search limits given
// by the caller (e.g. through the UCI go command).
type Limits struct {
	// restrict the root search to this set of moves
	SearchMoves moveslice.MoveSlice

	// informational - no behavioral effect
	Ponder bool

	// clock state of both sides
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration

	// moves until the next time control
	MovesToGo int

	// fixed limits - Depth and Mate are mutually exclusive
	Depth    int
	Mate     int
	Nodes    uint64
	MoveTime time.Duration

	// disables time and node limits
	Infinite bool
}

// NewLimits creates a new empty Limits instance
func NewLimits() *Limits {
	return &Limits{}
}

// SearchError is returned for conflicting search parameters
type SearchError struct {
	Msg string
}

func (e *SearchError) Error() string {
	return "search: " + e.Msg
}

// Validate checks the limits for conflicting parameters
func (l *Limits) Validate() error {
	if l.Depth > 0 && l.Mate > 0 {
		return &SearchError{Msg: fmt.Sprintf(
			"parameters depth and mate are mutually exclusive, both passed: %d, %d", l.Depth, l.Mate)}
	}
	return nil
}

// maxIterativeDepth returns the iterative deepening depth limit
// resulting from the given limits
func (l *Limits) maxIterativeDepth() int {
	depth := defaultMaxDepth
	switch {
	case l.Depth > 0:
		depth = l.Depth
	case l.Mate > 0:
		depth = l.Mate
	}
	if depth > absoluteMaxDepth {
		depth = absoluteMaxDepth
	}
	return depth
}
