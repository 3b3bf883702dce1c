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
	"fmt"
	"math/bits"
	"strings"

	"github.com/frankkopp/oracle/util"
)

// Bitboard is a 64 bit set, one bit for each square on the board.
type Bitboard uint64

//noinspection GoUnusedConst
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	// NotAFile masks off file a, used to stop a westward shift/ray from
	// wrapping around onto file h.
	NotAFile Bitboard = ^FileA_Bb
	// NotHFile masks off file h.
	NotHFile Bitboard = ^FileH_Bb
	// NotABFile masks off files a and b, needed by the knight's two-wide leaps.
	NotABFile Bitboard = ^(FileA_Bb | FileB_Bb)
	// NotGHFile masks off files g and h.
	NotGHFile Bitboard = ^(FileG_Bb | FileH_Bb)
	// NotFirstRank masks off rank 1.
	NotFirstRank Bitboard = ^Rank1_Bb
	// NotEighthRank masks off rank 8.
	NotEighthRank Bitboard = ^Rank8_Bb
)

// sqBb is a precomputed square-to-bitboard lookup, filled once by initBb().
var sqBb [64]Bitboard

func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(uint64(1) << sq)
	}
}

// Bitboard returns a Bitboard with only the bit for sq set.
func (sq Square) Bitboard() Bitboard {
	return sqBb[sq]
}

// PushSquare returns b with the bit for s set.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bitboard()
}

// PushSquare sets the bit for s on b in place.
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bitboard()
}

// PopSquare returns b with the bit for s cleared.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bitboard()
}

// PopSquare clears the bit for s on b in place.
func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.Bitboard()
}

// ShiftBitboard shifts every set bit of b by one square in direction d,
// clearing any bit that would otherwise wrap around the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & NotHFile) << 1
	case West:
		return (b & NotAFile) >> 1
	case Northeast:
		return (b & NotHFile) << 9
	case Southeast:
		return (b & NotHFile) >> 7
	case Southwest:
		return (b & NotAFile) >> 9
	case Northwest:
		return (b & NotAFile) << 7
	}
	return b
}

// Lsb returns the least significant set bit as a Square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square of b and clears it from b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Str returns the raw 64 character binary representation of b.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StrBoard renders b as an 8x8 ASCII board, rank 8 first.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8 + 1; r != Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, r-1).Bitboard()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StrGrp renders the 64 bits grouped by rank, lsb (a1) to msb (h8) first.
func (b Bitboard) StrGrp() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance in squares between s1 and s2.
func SquareDistance(s1 Square, s2 Square) int {
	return util.Max(FileDistance(s1.FileOf(), s2.FileOf()), RankDistance(s1.RankOf(), s2.RankOf()))
}
