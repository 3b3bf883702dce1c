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

// PieceKind is a set of constants for the six chess piece kinds, used to
// index Position.pieces. The ordering (king first, none last) matches the
// wire layout a Position is built around, not the teacher's own PieceType
// ordering.
type PieceKind int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	King   PieceKind = 0
	Queen  PieceKind = 1
	Rook   PieceKind = 2
	Bishop PieceKind = 3
	Knight PieceKind = 4
	Pawn   PieceKind = 5
	PkNone PieceKind = 6
)

var pieceKindToString = [...]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn", "NOPIECE"}

// Str returns a string representation of the piece kind.
func (pk PieceKind) Str() string {
	return pieceKindToString[pk]
}

var pieceKindToChar = string("KQRBNP-")

// Char returns a single upper case character representation of the piece
// kind, as used in FEN (e.g. "Q" for Queen). Callers lower-case it
// themselves for black pieces.
func (pk PieceKind) Char() string {
	return string(pieceKindToChar[pk])
}

// IsValid checks if pk is one of the six playable piece kinds.
func (pk PieceKind) IsValid() bool {
	return pk >= King && pk < PkNone
}

// PieceKindOf maps a FEN piece letter (either case) to its PieceKind and
// color. Returns PkNone if c is not one of "kqrbnpKQRBNP".
func PieceKindOf(c byte) (PieceKind, Color) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return King, color
	case 'Q':
		return Queen, color
	case 'R':
		return Rook, color
	case 'B':
		return Bishop, color
	case 'N':
		return Knight, color
	case 'P':
		return Pawn, color
	default:
		return PkNone, White
	}
}
