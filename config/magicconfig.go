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

package config

// magicConfiguration tunes the magic number search: how many candidates a
// square may try before giving up, and optional per-square PRNG seed
// overrides (indexed 0-63, a1 to h8) for reproducing a specific prior
// search result. A zero entry in Seeds means "derive from the master seed
// the build was started with".
type magicConfiguration struct {
	RetryBudget int
	Seeds       [64]uint32
}

// RetryBudget is the effective (possibly config-file-overridden) number of
// candidate magics a square's search may try before giving up.
var RetryBudget = 100_000_000

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupMagic() {
	if Settings.Magic.RetryBudget > 0 {
		RetryBudget = Settings.Magic.RetryBudget
	}
}
