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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	assert := assert.New(t)

	m := CreateMove(SqE2, SqE4)
	assert.Equal(SqE2, m.From())
	assert.Equal(SqE4, m.To())
	assert.Equal(PtNone, m.PromotionType())
	assert.False(m.IsPromotion())

	m = CreatePromotionMove(SqE7, SqE8, Queen)
	assert.Equal(SqE7, m.From())
	assert.Equal(SqE8, m.To())
	assert.Equal(Queen, m.PromotionType())
	assert.True(m.IsPromotion())
}

func TestMoveEquality(t *testing.T) {
	assert := assert.New(t)

	// equality includes the promotion type
	assert.Equal(CreateMove(SqE2, SqE4), CreateMove(SqE2, SqE4))
	assert.NotEqual(CreateMove(SqE7, SqE8), CreatePromotionMove(SqE7, SqE8, Queen))
	assert.NotEqual(CreatePromotionMove(SqE7, SqE8, Knight), CreatePromotionMove(SqE7, SqE8, Queen))
}

func TestMoveStringUci(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("e2e4", CreateMove(SqE2, SqE4).StringUci())
	assert.Equal("e7e8q", CreatePromotionMove(SqE7, SqE8, Queen).StringUci())
	assert.Equal("b7a8n", CreatePromotionMove(SqB7, SqA8, Knight).StringUci())
}

func TestMoveFromUci(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(CreateMove(SqE2, SqE4), MoveFromUci("e2e4"))
	assert.Equal(CreatePromotionMove(SqE7, SqE8, Queen), MoveFromUci("e7e8q"))
	assert.Equal(MoveNone, MoveFromUci("e2"))
	assert.Equal(MoveNone, MoveFromUci("x2e4"))
	assert.Equal(MoveNone, MoveFromUci("e7e8x"))
	assert.Equal(MoveNone, MoveFromUci("e7e8k"))
}

func TestMakeSquareFromString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SqA1, MakeSquareFromString("a1"))
	assert.Equal(SqH8, MakeSquareFromString("h8"))
	assert.Equal(SqE3, MakeSquareFromString("e3"))
	assert.Equal(SqNone, MakeSquareFromString("i1"))
	assert.Equal(SqNone, MakeSquareFromString("a9"))
	assert.Equal(SqNone, MakeSquareFromString("A1"))
}
