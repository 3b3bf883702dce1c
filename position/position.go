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

// Package position holds the in-memory board state the magic oracle is
// queried against, and the FEN parser that builds one from a standard
// position description string.
package position

import (
	"fmt"
	"strings"

	"github.com/frankkopp/oracle/assert"
	"github.com/frankkopp/oracle/logging"
	. "github.com/frankkopp/oracle/types"
)

var log = logging.GetLog()

// StartFen is the canonical chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the board state the oracle's queries need: piece bitboards
// per kind and per color, castling rights, the en-passant target, and the
// two move counters. It carries no move history and no incremental
// evaluation state - those belong to a search layer built on top.
type Position struct {
	pieces [6]Bitboard
	color  [2]Bitboard

	castling       CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
	sideToMove     Color
}

// New returns an empty position: no pieces, White to move, no castling
// rights, move one.
func New() Position {
	return Position{
		enPassant:      SqNone,
		fullmoveNumber: 1,
		sideToMove:     White,
	}
}

// NewGame returns the canonical chess starting position.
func NewGame() Position {
	p, err := Parse(StartFen)
	if err != nil {
		panic(fmt.Sprintf("position: start fen is invalid: %s", err))
	}
	return p
}

// PiecesOf returns the bitboard of pieces of kind belonging to color.
func (p *Position) PiecesOf(kind PieceKind, color Color) Bitboard {
	return p.pieces[kind] & p.color[color]
}

// AllPieces returns the bitboard of every occupied square, either color.
func (p *Position) AllPieces() Bitboard {
	return p.color[White] | p.color[Black]
}

// SideToMove returns the color to move next.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Castling returns the castling rights still available.
func (p *Position) Castling() CastlingRights {
	return p.castling
}

// EnPassant returns the en-passant target square, or SqNone if none is set.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// HalfmoveClock returns the number of plies since the last capture or pawn
// move.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the fullmove counter, starting at 1.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// AddPiece places a piece of kind and color on sq.
func (p *Position) AddPiece(kind PieceKind, sq Square, color Color) {
	if assert.DEBUG {
		_, _, occupied := p.pieceAt(sq)
		assert.Assert(!occupied, "AddPiece: square %s already occupied", sq)
	}
	p.pieces[kind].PushSquare(sq)
	p.color[color].PushSquare(sq)
}

// RemovePiece clears the piece of kind and color from sq.
func (p *Position) RemovePiece(kind PieceKind, sq Square, color Color) {
	if assert.DEBUG {
		assert.Assert(p.pieces[kind]&sq.Bitboard() != 0, "RemovePiece: no %s on %s", kind.Str(), sq)
		assert.Assert(p.color[color]&sq.Bitboard() != 0, "RemovePiece: %s on %s is not %s", kind.Str(), sq, color.Str())
	}
	p.pieces[kind].PopSquare(sq)
	p.color[color].PopSquare(sq)
}

// MovePiece relocates a piece of kind and color from one square to another.
func (p *Position) MovePiece(kind PieceKind, color Color, from Square, to Square) {
	p.RemovePiece(kind, from, color)
	p.AddPiece(kind, to, color)
}

// pieceAt reports the kind and color of whatever occupies sq. The third
// return value is false if sq is empty, in which case kind and color are
// meaningless.
func (p *Position) pieceAt(sq Square) (PieceKind, Color, bool) {
	b := sq.Bitboard()
	if p.AllPieces()&b == 0 {
		return PkNone, White, false
	}
	color := White
	if p.color[Black]&b != 0 {
		color = Black
	}
	for kind := King; kind < PkNone; kind++ {
		if p.pieces[kind]&b != 0 {
			return kind, color, true
		}
	}
	return PkNone, White, false
}

// checkInvariants asserts the structural invariants a well-formed position
// must satisfy. Compiled out entirely when assert.DEBUG is false.
func (p *Position) checkInvariants() {
	if !assert.DEBUG {
		return
	}
	assert.Assert(p.color[White]&p.color[Black] == 0, "color bitboards overlap")
	var union Bitboard
	for k1 := King; k1 < PkNone; k1++ {
		for k2 := k1 + 1; k2 < PkNone; k2++ {
			assert.Assert(p.pieces[k1]&p.pieces[k2] == 0, "piece kind bitboards %s and %s overlap", k1.Str(), k2.Str())
		}
		union |= p.pieces[k1]
	}
	assert.Assert(union == p.AllPieces(), "union of piece kind bitboards does not match occupied squares")
	assert.Assert(p.PiecesOf(King, White).PopCount() == 1, "white does not have exactly one king")
	assert.Assert(p.PiecesOf(King, Black).PopCount() == 1, "black does not have exactly one king")
	assert.Assert(p.pieces[Pawn]&(Rank1_Bb|Rank8_Bb) == 0, "pawn on rank 1 or 8")
}

// String renders the FEN followed by an ASCII board and the side to move.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString(fmt.Sprintf("Next player: %s\n", p.sideToMove.Str()))
	return os.String()
}

// StringBoard renders the board as an 8x8 ASCII grid, rank 8 first.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8 + 1; r != Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.charAt(SquareOf(f, r-1)))
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

func (p *Position) charAt(sq Square) string {
	kind, color, occupied := p.pieceAt(sq)
	if !occupied {
		return "."
	}
	c := kind.Char()
	if color == Black {
		c = strings.ToLower(c)
	}
	return c
}
