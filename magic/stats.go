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
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/oracle/types"
)

var out = message.NewPrinter(language.German)

// Stats summarizes an AttackTable's memory footprint, for anyone embedding
// the oracle and wanting to confirm it against a size budget.
type Stats struct {
	BishopBytes     uint64
	RookBytes       uint64
	LeaperBytes     uint64
	TotalBytes      uint64
	BishopMaxBits   int
	RookMaxBits     int
}

const bitboardSize = 8 // bytes, a Bitboard is a uint64

// Stats computes an AttackTable's memory footprint and relevant-bit extremes.
func (at *AttackTable) Stats() Stats {
	var s Stats
	for sq := 0; sq < 64; sq++ {
		s.BishopBytes += uint64(len(at.bishopTable[sq])) * bitboardSize
		s.RookBytes += uint64(len(at.rookTable[sq])) * bitboardSize
		if bishopRelevantBits[sq] > s.BishopMaxBits {
			s.BishopMaxBits = bishopRelevantBits[sq]
		}
		if rookRelevantBits[sq] > s.RookMaxBits {
			s.RookMaxBits = rookRelevantBits[sq]
		}
	}
	s.LeaperBytes = uint64(len(at.knights)+len(at.kings)+len(at.pawns[0])+len(at.pawns[1])) * bitboardSize
	s.TotalBytes = s.BishopBytes + s.RookBytes + s.LeaperBytes
	return s
}

// String renders the stats as a human-readable, locale-formatted report.
func (s Stats) String() string {
	var b strings.Builder
	b.WriteString(out.Sprintf("bishop table: %d bytes\n", s.BishopBytes))
	b.WriteString(out.Sprintf("rook table:   %d bytes\n", s.RookBytes))
	b.WriteString(out.Sprintf("leaper tables:%d bytes\n", s.LeaperBytes))
	b.WriteString(out.Sprintf("total:        %d bytes (%.2f MiB)\n", s.TotalBytes, float64(s.TotalBytes)/float64(types.MB)))
	return b.String()
}
