/*
 * FrankyGo - UCI chess engine in GO for learning purposes
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

package magic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/oracle/types"
)

func TestMaskPawnAttacksCenter(t *testing.T) {
	attacks := maskPawnAttacks(White, SqE4)
	assert.Equal(t, SqD5.Bitboard()|SqF5.Bitboard(), attacks)

	attacks = maskPawnAttacks(Black, SqE4)
	assert.Equal(t, SqD3.Bitboard()|SqF3.Bitboard(), attacks)
}

func TestMaskPawnAttacksEdge(t *testing.T) {
	assert.Equal(t, SqB5.Bitboard(), maskPawnAttacks(White, SqA4))
	assert.Equal(t, SqG5.Bitboard(), maskPawnAttacks(White, SqH4))
}

func TestMaskKnightAttacksCorner(t *testing.T) {
	attacks := maskKnightAttacks(SqA1)
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks&SqB3.Bitboard() != 0)
	assert.True(t, attacks&SqC2.Bitboard() != 0)
}

func TestMaskKnightAttacksCenter(t *testing.T) {
	attacks := maskKnightAttacks(SqE4)
	assert.Equal(t, 8, attacks.PopCount())
}

func TestMaskKingAttacksCorner(t *testing.T) {
	attacks := maskKingAttacks(SqA1)
	assert.Equal(t, 3, attacks.PopCount())
}

func TestMaskKingAttacksCenter(t *testing.T) {
	attacks := maskKingAttacks(SqE4)
	assert.Equal(t, 8, attacks.PopCount())
}
