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
	"github.com/frankkopp/oracle/assert"
	. "github.com/frankkopp/oracle/types"
)

// maskPawnAttacks computes the pawn capture squares for a pawn of the given
// color standing on sq: the two forward diagonals, via ShiftBitboard so the
// not-A/not-H wraparound gating lives in one place rather than being
// re-derived here.
func maskPawnAttacks(color Color, sq Square) Bitboard {
	b := sq.Bitboard()
	if color == White {
		return ShiftBitboard(b, Northwest) | ShiftBitboard(b, Northeast)
	}
	return ShiftBitboard(b, Southwest) | ShiftBitboard(b, Southeast)
}

// maskKnightAttacks computes the eight knight-leap squares from sq, masking
// off the file pair each shift direction would otherwise wrap across. A
// knight leap isn't one of the eight compass directions, so this stays a
// direct shift-and-mask rather than going through ShiftBitboard.
func maskKnightAttacks(sq Square) Bitboard {
	b := sq.Bitboard()
	var attacks Bitboard
	attacks |= (b & NotAFile) << 15
	attacks |= (b & NotHFile) << 17
	attacks |= (b & NotABFile) << 6
	attacks |= (b & NotGHFile) << 10
	attacks |= (b & NotAFile) >> 17
	attacks |= (b & NotHFile) >> 15
	attacks |= (b & NotABFile) >> 10
	attacks |= (b & NotGHFile) >> 6
	return attacks
}

// allDirections lists every compass direction a king may step in.
var allDirections = [8]Direction{North, South, East, West, Northeast, Southeast, Southwest, Northwest}

// maskKingAttacks computes the eight one-step squares around sq via
// Square.To, which already returns SqNone for any step that would leave
// the board.
func maskKingAttacks(sq Square) Bitboard {
	var attacks Bitboard
	for _, d := range allDirections {
		if to := sq.To(d); to.IsValid() {
			attacks |= to.Bitboard()
		}
	}
	return attacks
}

// init asserts every leaper table's squares actually sit at the distance a
// leap of that kind requires, catching a transcription error in the
// shift/mask arithmetic above the same way relevantbits.go's init() catches
// one in the hard-coded bit-count tables. Compiled out entirely when
// assert.DEBUG is false.
func init() {
	if !assert.DEBUG {
		return
	}
	for sq := SqA1; sq < SqNone; sq++ {
		assertLeaperDistances(sq, maskKingAttacks(sq), isKingStep)
		assertLeaperDistances(sq, maskKnightAttacks(sq), isKnightLeap)
		assertLeaperDistances(sq, maskPawnAttacks(White, sq), isPawnCapture)
		assertLeaperDistances(sq, maskPawnAttacks(Black, sq), isPawnCapture)
	}
}

func assertLeaperDistances(sq Square, attacks Bitboard, ok func(from, to Square) bool) {
	for b := attacks; b != BbZero; {
		to := b.PopLsb()
		assert.Assert(ok(sq, to), "leaper attack from %s to %s fails its distance invariant", sq, to)
	}
}

func isKingStep(from, to Square) bool {
	return SquareDistance(from, to) == 1
}

func isPawnCapture(from, to Square) bool {
	return FileDistance(from.FileOf(), to.FileOf()) == 1 && RankDistance(from.RankOf(), to.RankOf()) == 1
}

func isKnightLeap(from, to Square) bool {
	fd, rd := FileDistance(from.FileOf(), to.FileOf()), RankDistance(from.RankOf(), to.RankOf())
	return (fd == 1 && rd == 2) || (fd == 2 && rd == 1)
}
