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

package types

import "strconv"

// Value represents the positional value of a chess position in
// centipawns from the point of view of the side to move.
type Value int32

// Value constants. ValueMin and ValueMax are symmetric so a negamax
// Flip never overflows.
const (
	ValueDraw Value = 0
	ValueMax  Value = 2_147_483_647
	ValueMin  Value = -ValueMax
)

// Flip negates the value - used to change the point of view between
// the two players in negamax search. Symmetric sentinels make this
// exact: Flip(ValueMin) == ValueMax.
func (v Value) Flip() Value {
	return -v
}

// ValueFromMul multiplies two values in 64-bit arithmetic and
// saturates the result at the value sentinels. Used for the
// aggressive aspiration window widening.
func ValueFromMul(a Value, b Value) Value {
	r := int64(a) * int64(b)
	if r >= int64(ValueMax) {
		return ValueMax
	}
	if r <= int64(ValueMin) {
		return ValueMin
	}
	return Value(r)
}

// String returns a string representation of the value
func (v Value) String() string {
	return strconv.Itoa(int(v))
}
