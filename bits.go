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

// This file implements the L0 bit-mixing primitives: small reversible
// (or, in the case of LFSR, deliberately non-reversible) operations on a
// single 64-bit word. Everything above this layer -- the PRNG, the
// samplers, the cohort permutations -- is built by composing these.

// Mask returns a mask with the low `bits` bits set. bits must be in
// [0, 64]; Mask(64) returns IDMask.
func Mask(bits uint64) uint64 {
	if bits >= IDBits {
		return IDMask
	}
	return (uint64(1) << bits) - 1
}

// ByteMask returns a mask covering just the nth byte (zero-indexed from
// the least-significant end).
func ByteMask(n uint64) uint64 {
	return (uint64(0xff) << (8 * n))
}

// swirlDistanceLimit is 3/4 of IDBits. swirl distances are always taken
// modulo this value; the cap is mandatory -- RevSwirl's correctness
// depends on swirl never rotating by a distance that would make the
// fall-off region overlap itself.
const swirlDistanceLimit = (3 * IDBits) / 4

// Swirl performs a right rotation of x, by a distance capped to
// d mod 48. RevSwirl is its inverse.
func Swirl(x, d uint64) uint64 {
	d %= swirlDistanceLimit
	if d == 0 {
		return x
	}
	m := Mask(d)
	fallOff := x & m
	return ((x >> d) | (fallOff << (IDBits - d)))
}

// RevSwirl is the inverse of Swirl: a left rotation by the same capped
// distance.
func RevSwirl(x, d uint64) uint64 {
	d %= swirlDistanceLimit
	if d == 0 {
		return x
	}
	m := Mask(d)
	fallOff := x & (m << (IDBits - d))
	return ((x << d) | (fallOff >> (IDBits - d)))
}

// foldQuarter is IDBits/4; Fold restricts its `where` parameter to the
// range [foldQuarter, 2*foldQuarter) so the xor-fold always mixes a
// meaningful chunk of bits without folding the whole word onto itself.
const foldQuarter = IDBits / 4

// Fold reversibly mixes the low bits of x into its high bits via xor.
// where selects how many low bits participate, restricted to
// [16, 31]. Fold is its own inverse.
func Fold(x, where uint64) uint64 {
	w := (where % foldQuarter) + foldQuarter
	m := Mask(w)
	lower := x & m
	return x ^ (lower << (IDBits - w))
}

// flopMask selects the high nibble of each byte.
const flopMask = 0xf0f0f0f0f0f0f0f0

// Flop swaps each nibble with its neighbor: the low nibble of each byte
// with the high nibble of that same byte. Flop is its own inverse.
func Flop(x uint64) uint64 {
	left := x & flopMask
	right := x & ^uint64(flopMask)
	return (right << 4) | (left >> 4)
}

// scrambleTriggerMask picks out bits of x that survive a Swirl(x, 1)
// rotation undisturbed, which is what makes Scramble reversible: the
// perturbation it applies is a function purely of those bits.
const scrambleTriggerMask = 0x80200003
const scramblePerturbation = 0x03040610

// Scramble applies a reversible perturbation to x: it rotates x by one
// bit, and if any bit of the trigger mask was set in the original x, it
// xors in a fixed constant. RevScramble is its inverse.
func Scramble(x uint64) uint64 {
	trigger := x & scrambleTriggerMask
	r := Swirl(x, 1)
	if trigger != 0 {
		r ^= scramblePerturbation
	}
	return r
}

// RevScramble is the inverse of Scramble.
func RevScramble(x uint64) uint64 {
	p := RevSwirl(x, 1)
	trigger := p & scrambleTriggerMask
	if trigger != 0 {
		// Equivalent to p ^= RevSwirl(scramblePerturbation, 1).
		p ^= 0x06080c20
	}
	return p
}

// lfsrTaps is the feedback mask of a 64-bit Galois LFSR with taps at
// bits 64, 63, 62, and 60. That tap set's polynomial is not primitive,
// so the register's cycles are shorter than 2^64-1.
const lfsrTaps = 0xE800000000000000

// LFSR advances x by one step of a 64-bit linear-feedback shift
// register. Unlike every other function in this file, LFSR is NOT
// reversible.
func LFSR(x uint64) uint64 {
	lsb := x & 1
	r := x >> 1
	if lsb != 0 {
		r ^= lfsrTaps
	}
	return r
}

// HashString computes a simple rolling hash of s, iterating over its
// Unicode code points. The empty string hashes to 0.
func HashString(s string) uint64 {
	var h uint64
	for _, r := range s {
		h = (h << 5) - h + uint64(r)
	}
	return h
}
