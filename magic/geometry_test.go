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

func TestMaskBishopAttacksExcludesEdge(t *testing.T) {
	mask := maskBishopAttacks(SqA1)
	assert.Equal(t, 0, int(mask&(FileA_Bb|FileH_Bb|Rank1_Bb|Rank8_Bb)), "interior mask must never include the rim")
	assert.Equal(t, bishopRelevantBits[SqA1], mask.PopCount())
}

func TestMaskRookAttacksExcludesEdge(t *testing.T) {
	mask := maskRookAttacks(SqD4)
	assert.Equal(t, rookRelevantBits[SqD4], mask.PopCount())
	assert.True(t, mask&SqA4.Bitboard() == 0, "rook interior mask stops short of the file edge")
	assert.True(t, mask&SqH4.Bitboard() == 0)
	assert.True(t, mask&SqD1.Bitboard() == 0, "rook interior mask stops short of the rank edge")
	assert.True(t, mask&SqD8.Bitboard() == 0)
}

// TestMaskRookAttacksOnCornerSquare guards against a direction-unaware
// interior test: a rook ray moving along only one axis (e.g. a1's east/north
// rays) must not be truncated just because the fixed axis sits on the rim.
func TestMaskRookAttacksOnCornerSquare(t *testing.T) {
	mask := maskRookAttacks(SqA1)
	assert.Equal(t, rookRelevantBits[SqA1], mask.PopCount(), "corner rook mask must not collapse to zero")
	assert.EqualValues(t, 0x000101010101017E, mask, "a1 rook mask: b1-g1 and a2-a7, rim excluded")

	for _, corner := range []Square{SqA1, SqH1, SqA8, SqH8} {
		assert.Equal(t, rookRelevantBits[corner], maskRookAttacks(corner).PopCount(), "corner %s", corner)
	}
}

// TestRookAttacksWithBlockersMatchesSpecScenario pins the unblocked rook
// attack set from a1 to the spec's worked example (rim included, since this
// is the full ray, not the interior mask).
func TestRookAttacksWithBlockersMatchesSpecScenario(t *testing.T) {
	attacks := rookAttacksWithBlockers(SqA1, BbZero)
	assert.Equal(t, 14, attacks.PopCount())
	assert.EqualValues(t, 0x01010101010101FE, attacks)
}

func TestBishopAttacksWithBlockersReachesEdge(t *testing.T) {
	attacks := bishopAttacksWithBlockers(SqA1, BbZero)
	assert.True(t, attacks&SqH8.Bitboard() != 0, "an unblocked ray must reach the true edge")
}

func TestBishopAttacksWithBlockersStopsAtBlocker(t *testing.T) {
	blockers := SqC3.Bitboard()
	attacks := bishopAttacksWithBlockers(SqA1, blockers)
	assert.True(t, attacks&SqB2.Bitboard() != 0)
	assert.True(t, attacks&SqC3.Bitboard() != 0, "the blocking square itself is included")
	assert.True(t, attacks&SqD4.Bitboard() == 0, "nothing beyond the blocker is reachable")
}

func TestRookAttacksWithBlockersStopsAtBlocker(t *testing.T) {
	blockers := SqD4.Bitboard()
	attacks := rookAttacksWithBlockers(SqD1, blockers)
	assert.True(t, attacks&SqD3.Bitboard() != 0)
	assert.True(t, attacks&SqD4.Bitboard() != 0)
	assert.True(t, attacks&SqD5.Bitboard() == 0)
}

func TestRookAttacksWithBlockersUnblocked(t *testing.T) {
	attacks := rookAttacksWithBlockers(SqD4, BbZero)
	assert.Equal(t, 14, attacks.PopCount())
}
