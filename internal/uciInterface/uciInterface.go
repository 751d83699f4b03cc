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

// Package uciInterface defines the interface the search uses to
// report to a UCI handler. It breaks the import cycle between the
// search and the uci package.
package uciInterface

import (
	"time"

	. "github.com/frankkopp/QuintGo/internal/types"
)

// UciDriver is the interface the search uses to send its reports.
// When no handler is set the search sends its output to the standard
// logger instead.
type UciDriver interface {
	// SendInfoString sends an arbitrary info string to the UCI ui
	SendInfoString(info string)

	// SendIterationEndInfo sends the info line after a completed
	// iterative deepening iteration
	SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv Move)

	// SendSearchUpdate sends the periodic info line during search
	SendSearchUpdate(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration)

	// SendResult sends the best move of a finished search
	SendResult(bestMove Move)
}
