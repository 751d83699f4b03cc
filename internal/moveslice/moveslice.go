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

// Package moveslice provides helper functionality for slices
// of type Move (chess moves).
package moveslice

import (
	"strings"

	. "github.com/frankkopp/QuintGo/internal/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity
// and 0 elements.
// Is identical to MoveSlice(make([]Move, 0, cap))
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
// Equivalent to len(ms)
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the slice
// Equivalent to cap(ms)
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends an element at the end of the slice
// Equivalent to append(ms, m)
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Set sets the move at index i
func (ms *MoveSlice) Set(i int, m Move) {
	(*ms)[i] = m
}

// Has returns true if the given move is in the slice
func (ms *MoveSlice) Has(m Move) bool {
	for _, move := range *ms {
		if move == m {
			return true
		}
	}
	return false
}

// Clear resets the slice to 0 elements keeping the capacity
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone returns a copy of the slice with the same capacity
func (ms *MoveSlice) Clone() *MoveSlice {
	c := make([]Move, len(*ms), cap(*ms))
	copy(c, *ms)
	return (*MoveSlice)(&c)
}

// FilterFunc keeps only the moves for which the given
// predicate returns true
func (ms *MoveSlice) FilterFunc(keep func(m Move) bool) {
	filtered := (*ms)[:0]
	for _, m := range *ms {
		if keep(m) {
			filtered = append(filtered, m)
		}
	}
	*ms = filtered
}

// String returns a string representation of all moves in the slice
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
