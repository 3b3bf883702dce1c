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

import . "github.com/frankkopp/oracle/types"

// setOccupancy is the bijection between [0, 2^bitCount) and the 2^bitCount
// subsets of mask: bit i of index selects whether the i-th set bit of mask
// (scanned from the lsb) is occupied in the returned blocker set. Iterating
// index from 0 to 2^bitCount-1 enumerates every possible blocker arrangement
// for that relevant-occupancy mask exactly once.
func setOccupancy(index int, bitCount int, mask Bitboard) Bitboard {
	var occupancy Bitboard
	for i := 0; i < bitCount; i++ {
		sq := mask.PopLsb()
		if index&(1<<i) != 0 {
			occupancy |= sq.Bitboard()
		}
	}
	return occupancy
}
