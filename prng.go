// Copyright 2024 Anarchy Authors.
//
// Licensed under the BSD 3-Clause license (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     https://opensource.org/licenses/BSD-3-Clause
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package anarchy

// PRNG is a reversible pseudo-random number generator: given the
// current value x and a seed, it produces a hard-to-predict next value
// by composing the L0 bit-mixing primitives with seed-derived
// parameters. RevPRNG is its exact inverse, so that for any x and seed:
//
//	PRNG(RevPRNG(x, seed), seed) == x
//	RevPRNG(PRNG(x, seed), seed) == x
func PRNG(x, seed uint64) uint64 {
	s := ScrambleSeed(seed)

	x ^= s
	x = Fold(x, s+17) // 17 is prime
	x = Flop(x)
	x = Swirl(x, s+37) // 37 is prime
	x = Fold(x, s+89)  // 89 is prime
	x = Swirl(x, s+107) // 107 is prime
	x = Scramble(x)
	return x
}

// RevPRNG is the inverse of PRNG: given the value PRNG produced and the
// same seed, it recovers the value PRNG was called with. It applies the
// exact inverses of PRNG's steps in reverse order; since Fold and Flop
// are self-inverse, both PRNG and RevPRNG call them directly rather
// than through separate "rev" variants.
func RevPRNG(x, seed uint64) uint64 {
	s := ScrambleSeed(seed)

	x = RevScramble(x)
	x = RevSwirl(x, s+107) // 107 is prime
	x = Fold(x, s+89)      // 89 is prime
	x = RevSwirl(x, s+37)  // 37 is prime
	x = Flop(x)
	x = Fold(x, s+17) // 17 is prime
	x ^= s
	return x
}
