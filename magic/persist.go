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
	"fmt"

	"github.com/frankkopp/oracle/types"
)

// Magics harvests the magic numbers found by the most recent Build, so a
// caller can persist them (e.g. bake them into a generated source file) and
// later skip the search entirely via LoadCached.
func (at *AttackTable) Magics() (bishop [64]uint64, rook [64]uint64) {
	bishop = at.bishopMagic
	rook = at.rookMagic
	return
}

// LoadCached builds a complete AttackTable directly from known-good magic
// numbers, skipping the search in Build entirely. The leaper tables are
// still filled directly since they are cheap to compute and not worth
// caching. It validates every magic still produces a collision-free table
// against the current mask/relevant-bit definitions before returning, so a
// stale or mismatched cache is caught rather than silently corrupting
// queries later.
func LoadCached(bishopMagics [64]uint64, rookMagics [64]uint64) (*AttackTable, error) {
	at := &AttackTable{}

	for sq := types.SqA1; sq < types.SqNone; sq++ {
		at.pawns[types.White][sq] = maskPawnAttacks(types.White, sq)
		at.pawns[types.Black][sq] = maskPawnAttacks(types.Black, sq)
		at.knights[sq] = maskKnightAttacks(sq)
		at.kings[sq] = maskKingAttacks(sq)
		at.bishopMask[sq] = maskBishopAttacks(sq)
		at.rookMask[sq] = maskRookAttacks(sq)

		bTable, err := buildTableForMagic(sq, at.bishopMask[sq], bishopRelevantBits[sq], bishopAttacksWithBlockers, bishopMagics[sq])
		if err != nil {
			return nil, fmt.Errorf("cached bishop magic invalid for %s: %w", sq, err)
		}
		at.bishopMagic[sq] = bishopMagics[sq]
		at.bishopShift[sq] = uint(64 - bishopRelevantBits[sq])
		at.bishopTable[sq] = bTable

		rTable, err := buildTableForMagic(sq, at.rookMask[sq], rookRelevantBits[sq], rookAttacksWithBlockers, rookMagics[sq])
		if err != nil {
			return nil, fmt.Errorf("cached rook magic invalid for %s: %w", sq, err)
		}
		at.rookMagic[sq] = rookMagics[sq]
		at.rookShift[sq] = uint(64 - rookRelevantBits[sq])
		at.rookTable[sq] = rTable
	}
	return at, nil
}

// buildTableForMagic builds the dense attack table for a single square given
// an already-known magic number, failing if that magic turns out to collide
// for the current mask.
func buildTableForMagic(sq types.Square, mask types.Bitboard, relevantBits int, attacks rayFunc, magicNum uint64) ([]types.Bitboard, error) {
	size := 1 << uint(relevantBits)
	shift := uint(64 - relevantBits)
	table := make([]types.Bitboard, size)
	used := ^types.Bitboard(0)
	for i := range table {
		table[i] = used
	}

	for i := 0; i < size; i++ {
		occupied := setOccupancy(i, relevantBits, mask)
		reference := attacks(sq, occupied)
		index := (uint64(occupied) * magicNum) >> shift
		if table[index] != used && table[index] != reference {
			return nil, fmt.Errorf("magic %#x collides for %s", magicNum, sq)
		}
		table[index] = reference
	}
	return table, nil
}
