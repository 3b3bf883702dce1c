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

func TestLoadCachedMatchesBuild(t *testing.T) {
	built, err := Build()
	assert.NoError(t, err)

	bishopMagics, rookMagics := built.Magics()
	cached, err := LoadCached(bishopMagics, rookMagics)
	assert.NoError(t, err)

	occupied := SqC3.Bitboard() | SqF6.Bitboard() | SqD1.Bitboard()
	for sq := SqA1; sq < SqNone; sq++ {
		assert.Equal(t, built.BishopAttacks(sq, occupied), cached.BishopAttacks(sq, occupied), "square %s", sq)
		assert.Equal(t, built.RookAttacks(sq, occupied), cached.RookAttacks(sq, occupied), "square %s", sq)
	}
}

func TestLoadCachedRejectsBadMagic(t *testing.T) {
	var bishopMagics, rookMagics [64]uint64
	_, err := LoadCached(bishopMagics, rookMagics)
	assert.Error(t, err, "an all-zero magic should fail to hash every square's mask without collisions")
}
