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

func TestParseStartFen(t *testing.T) {
	p, err := Parse(StartFen)
	assert.NoError(t, err)
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

func TestParseEmptyBoard(t *testing.T) {
	p, err := Parse("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, BbZero, p.AllPieces())
	assert.Equal(t, CastlingNone, p.Castling())
	assert.Equal(t, SqNone, p.EnPassant())
}

func TestParseFourFieldsPadsClocks(t *testing.T) {
	p, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.NoError(t, err)
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
}

func TestParseNormalizesEnDash(t *testing.T) {
	p, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq – 0 1")
	assert.NoError(t, err)
	assert.Equal(t, SqNone, p.EnPassant())
}

func TestParseRoundTripsThroughStringFen(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq f3 0 14"
	p, err := Parse(fen)
	assert.NoError(t, err)
	assert.Equal(t, fen, p.StringFen())
}

func TestParseIncorrectLength(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, IncorrectLength, fenErr.Kind)
}

func TestParseInvalidPlacementTooFewRanks(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidPlacement, fenErr.Kind)
}

func TestParseInvalidPlacementBadPieceChar(t *testing.T) {
	_, err := Parse("xnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidPlacement, fenErr.Kind)
}

func TestParseInvalidPlacementTooManyFiles(t *testing.T) {
	_, err := Parse("rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidPlacement, fenErr.Kind)
}

func TestParseInvalidSideToMove(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidSideToMove, fenErr.Kind)
}

func TestParseInvalidCastling(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidCastling, fenErr.Kind)
}

func TestParseInvalidEnPassantWrongRank(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidEnPassant, fenErr.Kind)
}

func TestParseInvalidEnPassantBadSquare(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidEnPassant, fenErr.Kind)
}

func TestParseInvalidHalfmoveClock(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidHalfmoveClock, fenErr.Kind)
}

func TestParseInvalidFullmoveNumber(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0")
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, InvalidFullmoveNumber, fenErr.Kind)
}

func TestParseFailureLeavesNoPartialPosition(t *testing.T) {
	p, err := Parse("not a fen at all")
	assert.Error(t, err)
	assert.Equal(t, Position{}, p)
}

func TestFenErrorKindString(t *testing.T) {
	assert.Equal(t, "InvalidCastling", InvalidCastling.String())
}
