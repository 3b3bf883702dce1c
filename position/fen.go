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
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/oracle/types"
)

// FenErrorKind identifies which of the six FEN fields (or the field count
// itself) failed to parse.
type FenErrorKind int

//noinspection GoUnusedConst
const (
	IncorrectLength FenErrorKind = iota
	InvalidPlacement
	InvalidSideToMove
	InvalidCastling
	InvalidEnPassant
	InvalidHalfmoveClock
	InvalidFullmoveNumber
)

var fenErrorKindNames = [...]string{
	"IncorrectLength",
	"InvalidPlacement",
	"InvalidSideToMove",
	"InvalidCastling",
	"InvalidEnPassant",
	"InvalidHalfmoveClock",
	"InvalidFullmoveNumber",
}

func (k FenErrorKind) String() string {
	return fenErrorKindNames[k]
}

// FenError is returned by Parse when the input does not describe a valid
// position. Kind identifies which field failed; Msg is a human-readable
// description, not meant to be machine-parsed.
type FenError struct {
	Kind FenErrorKind
	Msg  string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("fen: %s: %s", e.Kind, e.Msg)
}

// maxClock bounds both the halfmove clock and the fullmove number this
// parser accepts. It is a conservative cap, not a rule requirement - a
// caller needing longer games should widen this and the counters' types.
const maxClock = 100

// Parse builds a Position from a standard position description: the usual
// 6-field notation (piece placement, side to move, castling rights,
// en-passant target, halfmove clock, fullmove number), or a 4-field
// placement+side-to-move+castling+en-passant string with "0 1" appended
// for the two counters. Any EN DASH (U+2013) is normalized to a hyphen
// before parsing, since some sources substitute it for the plain ASCII
// minus used by the "-" empty-field placeholder.
//
// Parsing builds into a scratch copy and only returns it on success; the
// caller never observes a partially-built Position.
func Parse(text string) (pos Position, err error) {
	defer func() {
		if err != nil {
			log.Warningf("fen parse failed for %q: %s", text, err)
		}
	}()

	normalized := strings.ReplaceAll(text, "–", "-")
	normalized = strings.TrimSpace(normalized)

	fields := strings.Split(normalized, " ")
	switch len(fields) {
	case 4:
		fields = append(fields, "0", "1")
	case 6:
		// already complete
	default:
		return Position{}, &FenError{IncorrectLength, fmt.Sprintf("expected 4 or 6 fields, got %d", len(fields))}
	}

	p := New()

	if err := p.parsePlacement(fields[0]); err != nil {
		return Position{}, err
	}
	if err := p.parseSideToMove(fields[1]); err != nil {
		return Position{}, err
	}
	if err := p.parseCastling(fields[2]); err != nil {
		return Position{}, err
	}
	if err := p.parseEnPassant(fields[3]); err != nil {
		return Position{}, err
	}
	if err := p.parseHalfmoveClock(fields[4]); err != nil {
		return Position{}, err
	}
	if err := p.parseFullmoveNumber(fields[5]); err != nil {
		return Position{}, err
	}

	p.checkInvariants()
	return p, nil
}

func (p *Position) parsePlacement(field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return &FenError{InvalidPlacement, fmt.Sprintf("expected 8 ranks separated by '/', got %d", len(rows))}
	}

	for i, row := range rows {
		rank := Rank8 - Rank(i)
		file := FileA
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			kind, color := PieceKindOf(byte(c))
			if kind == PkNone {
				return &FenError{InvalidPlacement, fmt.Sprintf("invalid piece character %q", c)}
			}
			if file > FileH {
				return &FenError{InvalidPlacement, fmt.Sprintf("rank %d has more than 8 files", rank+1)}
			}
			p.AddPiece(kind, SquareOf(file, rank), color)
			file++
		}
		if file != FileH+1 {
			return &FenError{InvalidPlacement, fmt.Sprintf("rank %d does not have exactly 8 files", rank+1)}
		}
	}
	return nil
}

func (p *Position) parseSideToMove(field string) error {
	switch field {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return &FenError{InvalidSideToMove, fmt.Sprintf("expected 'w' or 'b', got %q", field)}
	}
	return nil
}

func (p *Position) parseCastling(field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			p.castling.Add(WK)
		case 'Q':
			p.castling.Add(WQ)
		case 'k':
			p.castling.Add(BK)
		case 'q':
			p.castling.Add(BQ)
		default:
			return &FenError{InvalidCastling, fmt.Sprintf("invalid castling character %q", c)}
		}
	}
	return nil
}

func (p *Position) parseEnPassant(field string) error {
	if field == "-" {
		p.enPassant = SqNone
		return nil
	}
	if len(field) != 2 {
		return &FenError{InvalidEnPassant, fmt.Sprintf("expected a square or '-', got %q", field)}
	}
	sq := MakeSquare(field)
	if !sq.IsValid() {
		return &FenError{InvalidEnPassant, fmt.Sprintf("invalid square %q", field)}
	}
	if sq.RankOf() != Rank3 && sq.RankOf() != Rank6 {
		return &FenError{InvalidEnPassant, fmt.Sprintf("en-passant target %q is not on rank 3 or 6", field)}
	}
	p.enPassant = sq
	return nil
}

func (p *Position) parseHalfmoveClock(field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 || n > maxClock {
		return &FenError{InvalidHalfmoveClock, fmt.Sprintf("expected an integer in [0, %d], got %q", maxClock, field)}
	}
	p.halfmoveClock = n
	return nil
}

func (p *Position) parseFullmoveNumber(field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 || n > maxClock {
		return &FenError{InvalidFullmoveNumber, fmt.Sprintf("expected an integer in [1, %d], got %q", maxClock, field)}
	}
	p.fullmoveNumber = n
	return nil
}

// StringFen renders the position back into the 6-field FEN notation.
func (p *Position) StringFen() string {
	var os strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			_, _, occupied := p.pieceAt(SquareOf(f, r))
			if !occupied {
				empty++
				continue
			}
			if empty > 0 {
				os.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			os.WriteString(p.charAt(SquareOf(f, r)))
		}
		if empty > 0 {
			os.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		os.WriteString("/")
	}
	os.WriteString(" ")
	os.WriteString(p.sideToMove.Str())
	os.WriteString(" ")
	os.WriteString(p.castling.String())
	os.WriteString(" ")
	os.WriteString(p.enPassant.String())
	os.WriteString(" ")
	os.WriteString(strconv.Itoa(p.halfmoveClock))
	os.WriteString(" ")
	os.WriteString(strconv.Itoa(p.fullmoveNumber))
	return os.String()
}
