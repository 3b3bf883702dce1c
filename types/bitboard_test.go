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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPopSquare(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.Equal(t, SqE4.Bitboard(), b)
	b.PopSquare(SqE4)
	assert.Equal(t, BbZero, b)
}

func TestShiftBitboard(t *testing.T) {
	tests := []struct {
		name string
		from Square
		dir  Direction
		want Bitboard
	}{
		{"north from e4", SqE4, North, SqE5.Bitboard()},
		{"south from e4", SqE4, South, SqE3.Bitboard()},
		{"east from e4", SqE4, East, SqF4.Bitboard()},
		{"west from e4", SqE4, West, SqD4.Bitboard()},
		{"east from h-file wraps off board", SqH4, East, BbZero},
		{"west from a-file wraps off board", SqA4, West, BbZero},
		{"north from rank 8 wraps off board", SqE8, North, BbZero},
		{"south from rank 1 wraps off board", SqE1, South, BbZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShiftBitboard(tt.from.Bitboard(), tt.dir)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLsbMsbPopLsb(t *testing.T) {
	b := SqA1.Bitboard() | SqD4.Bitboard() | SqH8.Bitboard()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())

	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	assert.Equal(t, SqD4, b.Lsb())
	assert.Equal(t, 2, b.PopCount())
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 8, Rank1_Bb.PopCount())
}

func TestFileRankSquareDistance(t *testing.T) {
	assert.Equal(t, 7, FileDistance(FileA, FileH))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}

func TestNotFileMasks(t *testing.T) {
	assert.Equal(t, BbZero, NotAFile&FileA_Bb)
	assert.Equal(t, BbZero, NotHFile&FileH_Bb)
	assert.Equal(t, BbZero, NotFirstRank&Rank1_Bb)
	assert.Equal(t, BbZero, NotEighthRank&Rank8_Bb)
}

func TestStrBoard(t *testing.T) {
	b := SqA1.Bitboard() | SqH8.Bitboard()
	s := b.StrBoard()
	assert.Contains(t, s, "X")
}
