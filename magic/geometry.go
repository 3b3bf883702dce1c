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

import . "github.com/frankkopp/oracle/types" //nolint:revive // ray math reads cleanest with bare Square/Bitboard/File/Rank names

// bishopDirs and rookDirs are the four ray directions each slider moves
// along, expressed as file/rank deltas so edge detection doesn't rely on
// wraparound masks the way the leaper tables do - a ray simply stops when it
// would leave the 8x8 board.
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// maskBishopAttacks returns the bishop's relevant-occupancy mask for sq: the
// diagonal rays, stopping one square short of the board edge in every
// direction. This is NOT the same as a full attack ray - the edge square
// itself is excluded because a piece sitting there can never block anything
// further (there is nothing further), so including it would only waste a
// bit of the perfect-hash index without changing which blocker subsets are
// distinguishable.
func maskBishopAttacks(sq Square) Bitboard {
	return rayInterior(sq, bishopDirs)
}

// maskRookAttacks returns the rook's relevant-occupancy mask for sq, built
// the same way as maskBishopAttacks but along file/rank rays.
func maskRookAttacks(sq Square) Bitboard {
	return rayInterior(sq, rookDirs)
}

func rayInterior(sq Square, dirs [4][2]int) Bitboard {
	var attacks Bitboard
	f0, r0 := int(sq.FileOf()), int(sq.RankOf())
	for _, d := range dirs {
		f, r := f0+d[0], r0+d[1]
		for onBoardInterior(f, r, d[0], d[1]) {
			attacks |= SquareOf(File(f), Rank(r)).Bitboard()
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

// onBoardInterior reports whether (f,r) is part of a ray's relevant-occupancy
// mask, where the ray moves along direction (fDir,rDir). Only the axis the
// ray actually moves along is held to the interior 1..6 (the rim excluded, a
// blocker there can't hide another blocker behind it); an axis the ray
// doesn't move along (delta 0, as for a rook ray along the other axis) only
// needs to stay on the board at all, 0..7. Without this direction split a
// rook ray along file or rank alone would wrongly lose its entire mask
// whenever the fixed coordinate sits on the rim (e.g. any square on rank 1).
func onBoardInterior(f, r, fDir, rDir int) bool {
	if fDir != 0 && (f < 1 || f > 6) {
		return false
	}
	if rDir != 0 && (r < 1 || r > 6) {
		return false
	}
	return f >= 0 && f <= 7 && r >= 0 && r <= 7
}

// onBoard reports whether (f,r) is a valid square anywhere on the board,
// rim included, used by the full blocker-aware ray walk.
func onBoard(f, r int) bool {
	return f >= 0 && f <= 7 && r >= 0 && r <= 7
}

// bishopAttacksWithBlockers walks each bishop ray from sq to the true edge
// of the board, stopping (but including) the first occupied square it hits.
// This is the full-board ray, distinct from maskBishopAttacks's interior-only
// mask, and is what the magic table is actually populated with for every
// enumerated blocker subset.
func bishopAttacksWithBlockers(sq Square, blockers Bitboard) Bitboard {
	return rayWithBlockers(sq, bishopDirs, blockers)
}

// rookAttacksWithBlockers is bishopAttacksWithBlockers's rook counterpart.
func rookAttacksWithBlockers(sq Square, blockers Bitboard) Bitboard {
	return rayWithBlockers(sq, rookDirs, blockers)
}

func rayWithBlockers(sq Square, dirs [4][2]int, blockers Bitboard) Bitboard {
	var attacks Bitboard
	f0, r0 := int(sq.FileOf()), int(sq.RankOf())
	for _, d := range dirs {
		f, r := f0+d[0], r0+d[1]
		for onBoard(f, r) {
			to := SquareOf(File(f), Rank(r))
			attacks |= to.Bitboard()
			if blockers&to.Bitboard() != 0 {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}
