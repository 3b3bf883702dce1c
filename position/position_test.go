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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/oracle/types"
)

func TestNewIsEmpty(t *testing.T) {
	p := New()
	assert.Equal(t, BbZero, p.AllPieces())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, SqNone, p.EnPassant())
	assert.Equal(t, CastlingNone, p.Castling())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
}

func TestAddRemoveMovePiece(t *testing.T) {
	p := New()
	p.AddPiece(Rook, SqA1, White)
	assert.Equal(t, SqA1.Bitboard(), p.PiecesOf(Rook, White))
	assert.Equal(t, SqA1.Bitboard(), p.AllPieces())

	p.MovePiece(Rook, White, SqA1, SqA8)
	assert.Equal(t, SqA8.Bitboard(), p.PiecesOf(Rook, White))
	assert.Equal(t, BbZero, p.PiecesOf(Rook, White)&SqA1.Bitboard())

	p.RemovePiece(Rook, SqA8, White)
	assert.Equal(t, BbZero, p.AllPieces())
}

func TestPiecesOfSeparatesColor(t *testing.T) {
	p := New()
	p.AddPiece(Knight, SqB1, White)
	p.AddPiece(Knight, SqB8, Black)
	assert.Equal(t, SqB1.Bitboard(), p.PiecesOf(Knight, White))
	assert.Equal(t, SqB8.Bitboard(), p.PiecesOf(Knight, Black))
	assert.Equal(t, SqB1.Bitboard()|SqB8.Bitboard(), p.PiecesOf(Knight, White)|p.PiecesOf(Knight, Black))
}

func TestNewGameMatchesStartFen(t *testing.T) {
	p := NewGame()
	assert.EqualValues(t, 0x000000000000FFFF, p.color[White])
	assert.EqualValues(t, 0xFFFF000000000000, p.color[Black])
	assert.EqualValues(t, 0x00FF00000000FF00, p.pieces[Pawn])
	assert.EqualValues(t, 0x1000000000000010, p.pieces[King])
	assert.Equal(t, CastlingAny, p.Castling())
	assert.Equal(t, SqNone, p.EnPassant())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, White, p.SideToMove())
}

func TestStringRendersFenAndBoard(t *testing.T) {
	p := NewGame()
	s := p.String()
	assert.Contains(t, s, StartFen)
	assert.Contains(t, s, "Next player: w")
}

func TestStringBoardRendersPieces(t *testing.T) {
	p := NewGame()
	board := p.StringBoard()
	assert.Contains(t, board, "R")
	assert.Contains(t, board, "p")
	assert.Contains(t, board, ".")
}
