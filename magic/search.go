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

// defaultSeed is the sorcerer's starting PRNG state. Every reproducible
// magic search in this package traces back to this one constant.
const defaultSeed uint32 = 1804289383

// defaultRetryBudget bounds how many candidate magics a single square may
// try before the search gives up and reports an error.
const defaultRetryBudget = 100_000_000

// sorcerer is a xorshift32 generator. This is deliberately NOT the same
// generator the teacher's own types/magic.go uses (a Stockfish-derived
// xorshift64star) - the magic-number search this package implements is
// pinned to this exact bit-twiddling sequence, so a different generator
// would silently produce a different (still valid, but non-reproducible)
// set of magics.
type sorcerer struct {
	state uint32
}

func newSorcerer(seed uint32) *sorcerer {
	if seed == 0 {
		seed = defaultSeed
	}
	return &sorcerer{state: seed}
}

func (s *sorcerer) next32() uint32 {
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	return x
}

func (s *sorcerer) next64() uint64 {
	return uint64(s.next32()) | uint64(s.next32())<<32
}

// sparse64 produces a 64-bit candidate with relatively few set bits by
// ANDing three independently drawn 64-bit numbers together - magic
// candidates with too many bits set rarely index well, so biasing the
// search toward sparse numbers sharply cuts the number of candidates
// needed before a collision-free one turns up.
func (s *sorcerer) sparse64() uint64 {
	return s.next64() & s.next64() & s.next64()
}

// deriveSeeds expands the single master seed into 64 independent per-square
// seeds by repeatedly stepping one sorcerer forward. Searching every
// square's magic from its own seed (rather than sharing one sorcerer across
// goroutines) keeps Build's per-square search parallel-safe while staying
// fully deterministic: the sequence of seeds handed out never depends on
// goroutine scheduling, only on the master seed.
func deriveSeeds(masterSeed uint32) [64]uint32 {
	s := newSorcerer(masterSeed)
	var seeds [64]uint32
	for i := range seeds {
		seeds[i] = s.next32()
	}
	return seeds
}

// rayFunc computes the full blocker-aware attack set for a slider standing
// on sq given an occupied-square bitboard.
type rayFunc func(sq types.Square, occupied types.Bitboard) types.Bitboard

// searchMagic searches for a magic number for sq that perfectly hashes
// every possible occupancy of mask (relevantBits set bits) into a
// collision-free index into a table of size 2^relevantBits, via
// index = (occupancy * magic) >> (64 - relevantBits). It returns the magic
// found, the dense attack table for that square keyed by index, and the
// number of candidates drawn, the successful one included.
func searchMagic(sq types.Square, mask types.Bitboard, relevantBits int, attacks rayFunc, seed uint32, retryBudget int) (magicNum uint64, table []types.Bitboard, attempts int, err error) {
	if retryBudget <= 0 {
		retryBudget = defaultRetryBudget
	}

	n := mask.PopCount()
	if n != relevantBits {
		return 0, nil, 0, fmt.Errorf("magic: square %s mask has %d relevant bits, want %d", sq, n, relevantBits)
	}

	size := 1 << relevantBits
	occupancies := make([]types.Bitboard, size)
	references := make([]types.Bitboard, size)
	for i := 0; i < size; i++ {
		occ := setOccupancy(i, relevantBits, mask)
		occupancies[i] = occ
		references[i] = attacks(sq, occ)
	}

	s := newSorcerer(seed)
	table = make([]types.Bitboard, size)
	const used = ^types.Bitboard(0)

	for attempts = 0; attempts < retryBudget; attempts++ {
		candidate := s.sparse64()

		// a magic whose product with the mask doesn't spread bits into the
		// high byte indexes badly in practice, so reject it before paying
		// for a full collision scan.
		if types.Bitboard((uint64(mask)*candidate)&0xFF00000000000000).PopCount() < 6 {
			continue
		}

		for i := range table {
			table[i] = used
		}

		collision := false
		for i := 0; i < size; i++ {
			index := (uint64(occupancies[i]) * candidate) >> (64 - relevantBits)
			if table[index] == used {
				table[index] = references[i]
			} else if table[index] != references[i] {
				collision = true
				break
			}
		}
		if !collision {
			return candidate, table, attempts + 1, nil
		}
	}
	return 0, nil, attempts, fmt.Errorf("magic: no collision-free magic found for square %s within %d attempts", sq, retryBudget)
}
