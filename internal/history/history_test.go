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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/QuintGo/internal/types"
)

func TestHistoryScore(t *testing.T) {
	assert := assert.New(t)

	h := NewHistory()
	m := CreateMove(SqE2, SqE4)

	// unknown moves score zero
	assert.Equal(int64(0), h.Score(m))

	// 4 considerations, 1 cutoff -> 250
	for i := 0; i < 4; i++ {
		h.RecordConsidered(m)
	}
	h.RecordCutoff(m)
	assert.Equal(int64(250), h.Score(m))

	// a cutoff is always also a consideration so the score is
	// bounded by the scale factor
	m2 := CreateMove(SqD2, SqD4)
	h.RecordConsidered(m2)
	h.RecordCutoff(m2)
	assert.Equal(int64(1000), h.Score(m2))
	assert.True(h.Score(m2) > h.Score(m))
}

func TestHistoryClear(t *testing.T) {
	assert := assert.New(t)

	h := NewHistory()
	m := CreateMove(SqE2, SqE4)
	h.RecordConsidered(m)
	h.RecordCutoff(m)
	assert.NotEqual(int64(0), h.Score(m))

	h.Clear()
	assert.Equal(int64(0), h.Score(m))
	assert.Equal(uint64(0), h.Considered[SqE2][SqE4])
}
