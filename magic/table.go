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

// Package magic builds and serves a Stockfish-style magic bitboard attack
// oracle: dense, precomputed lookup tables for every piece's attack set on
// every square, keyed by the occupancy of the board. Once built, every
// query is a handful of arithmetic operations and a slice index - there is
// no board walking at query time.
package magic

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/oracle/config"
	"github.com/frankkopp/oracle/logging"
	"github.com/frankkopp/oracle/types"
)

var log = logging.GetLog()

// AttackTable holds every precomputed attack set this package serves.
// Once Build or LoadCached returns one, it is immutable and safe for
// concurrent read-only use from any number of goroutines - there is no
// shared mutable state, no I/O, at query time.
type AttackTable struct {
	pawns   [2][64]types.Bitboard
	knights [64]types.Bitboard
	kings   [64]types.Bitboard

	bishopMask  [64]types.Bitboard
	rookMask    [64]types.Bitboard
	bishopMagic [64]uint64
	rookMagic   [64]uint64
	bishopShift [64]uint
	rookShift   [64]uint
	bishopTable [64][]types.Bitboard
	rookTable   [64][]types.Bitboard
}

// Build constructs a complete AttackTable from scratch: the leaper tables
// are filled directly, and a magic number (plus its dense attack table) is
// searched for independently for every bishop and rook square. Bishop and
// rook searches across all 64 squares run concurrently via errgroup - the
// one place in this package genuinely worth parallelizing, since each
// square's search is completely independent of every other's.
func Build() (*AttackTable, error) {
	return BuildWithSeed(defaultSeed)
}

// BuildWithSeed is Build but lets the caller pin the master PRNG seed,
// primarily so tests and benchmarks can reproduce a specific search.
func BuildWithSeed(masterSeed uint32) (*AttackTable, error) {
	at := &AttackTable{}

	for sq := types.SqA1; sq < types.SqNone; sq++ {
		at.pawns[types.White][sq] = maskPawnAttacks(types.White, sq)
		at.pawns[types.Black][sq] = maskPawnAttacks(types.Black, sq)
		at.knights[sq] = maskKnightAttacks(sq)
		at.kings[sq] = maskKingAttacks(sq)
		at.bishopMask[sq] = maskBishopAttacks(sq)
		at.rookMask[sq] = maskRookAttacks(sq)
	}

	seeds := deriveSeeds(masterSeed)
	for sq := range seeds {
		if s := config.Settings.Magic.Seeds[sq]; s != 0 {
			seeds[sq] = s
		}
	}

	var g errgroup.Group
	for i := types.SqA1; i < types.SqNone; i++ {
		sq := i
		g.Go(func() error {
			log.Debugf("searching bishop magic for %s", sq)
			magic, table, attempts, err := searchMagic(sq, at.bishopMask[sq], bishopRelevantBits[sq], bishopAttacksWithBlockers, seeds[sq], config.RetryBudget)
			if err != nil {
				return fmt.Errorf("bishop %s: %w", sq, err)
			}
			at.bishopMagic[sq] = magic
			at.bishopShift[sq] = uint(64 - bishopRelevantBits[sq])
			at.bishopTable[sq] = table
			log.Infof("bishop magic for %s found after %d attempts", sq, attempts)
			return nil
		})
		g.Go(func() error {
			log.Debugf("searching rook magic for %s", sq)
			magic, table, attempts, err := searchMagic(sq, at.rookMask[sq], rookRelevantBits[sq], rookAttacksWithBlockers, ^seeds[sq], config.RetryBudget)
			if err != nil {
				return fmt.Errorf("rook %s: %w", sq, err)
			}
			at.rookMagic[sq] = magic
			at.rookShift[sq] = uint(64 - rookRelevantBits[sq])
			at.rookTable[sq] = table
			log.Infof("rook magic for %s found after %d attempts", sq, attempts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return at, nil
}

func (at *AttackTable) bishopIndex(sq types.Square, occupied types.Bitboard) uint64 {
	blockers := occupied & at.bishopMask[sq]
	return (uint64(blockers) * at.bishopMagic[sq]) >> at.bishopShift[sq]
}

func (at *AttackTable) rookIndex(sq types.Square, occupied types.Bitboard) uint64 {
	blockers := occupied & at.rookMask[sq]
	return (uint64(blockers) * at.rookMagic[sq]) >> at.rookShift[sq]
}

// PawnAttacks returns the squares a pawn of the given color standing on sq
// attacks (capture squares only, no forward pushes).
func (at *AttackTable) PawnAttacks(color types.Color, sq types.Square) types.Bitboard {
	return at.pawns[color][sq]
}

// KnightAttacks returns the squares a knight standing on sq attacks.
func (at *AttackTable) KnightAttacks(sq types.Square) types.Bitboard {
	return at.knights[sq]
}

// KingAttacks returns the squares a king standing on sq attacks.
func (at *AttackTable) KingAttacks(sq types.Square) types.Bitboard {
	return at.kings[sq]
}

// BishopAttacks returns the squares a bishop standing on sq attacks given
// occupied (the set of all occupied squares on the board, own and enemy
// pieces alike).
func (at *AttackTable) BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return at.bishopTable[sq][at.bishopIndex(sq, occupied)]
}

// RookAttacks returns the squares a rook standing on sq attacks given
// occupied.
func (at *AttackTable) RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return at.rookTable[sq][at.rookIndex(sq, occupied)]
}

// QueenAttacks returns the squares a queen standing on sq attacks given
// occupied - simply the union of its bishop and rook attack sets.
func (at *AttackTable) QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return at.BishopAttacks(sq, occupied) | at.RookAttacks(sq, occupied)
}
