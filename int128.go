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

import (
	"fmt"
	"math/bits"
)

// Uint128 is a pair of uint64, treated as a single object to simplify
// calling conventions. It's a struct rather than an array for two
// reasons:
//
// 1. The go compiler seems better at this.
//
// 2. [0] and [1] are ambiguous, .Lo and .Hi aren't.
//
// distribution.go is the only caller: its split-point computation
// multiplies a segment capacity by a segment count, both of which can
// be as large as 2^64-1, and compares the full 128-bit product against
// an item count, so an intermediate overflow can't quietly corrupt the
// capacity clamp.
type Uint128 struct {
	Lo, Hi uint64 // low-order and high-order uint64 words. Value is ``(Hi << 64) | Lo`.
}

// Mul64 returns the full 128-bit product of a and b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Lo: lo, Hi: hi}
}

// widen64 promotes a uint64 to a Uint128 with no high bits set.
func widen64(x uint64) Uint128 {
	return Uint128{Lo: x}
}

// Cmp compares u to v, returning -1, 0, or 1 as u is less than, equal
// to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	if u.Hi != v.Hi {
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	}
	if u.Lo != v.Lo {
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Div64 divides u by the nonzero divisor d and returns the quotient. It
// panics if the true quotient doesn't fit in 64 bits (which includes
// the case d == 0). Dividing a Mul64(a, d) product back down by d
// always fits and returns a.
func (u Uint128) Div64(d uint64) uint64 {
	q, _ := bits.Div64(u.Hi, u.Lo, d)
	return q
}

// String provides a string representation.
func (u Uint128) String() string {
	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}

// RotateRight rotates u right by n bits.
func (u *Uint128) RotateRight(n uint64) {
	if n&64 != 0 {
		u.Lo, u.Hi = u.Hi, u.Lo
	}
	n &= 63
	if n == 0 {
		return
	}
	unbits := 64 - n

	u.Lo, u.Hi = (u.Lo>>n)|(u.Hi<<unbits), (u.Hi>>n)|(u.Lo<<unbits)
}

// RotateLeft rotates u left by n bits.
func (u *Uint128) RotateLeft(n uint64) {
	if n&64 != 0 {
		u.Lo, u.Hi = u.Hi, u.Lo
	}
	n &= 63
	if n == 0 {
		return
	}
	unbits := 64 - n

	u.Lo, u.Hi = (u.Lo<<n)|(u.Hi>>unbits), (u.Hi<<n)|(u.Lo>>unbits)
}

// ShiftRight shifts u right by n bits.
func (u *Uint128) ShiftRight(n uint64) {
	if n > 127 {
		u.Lo, u.Hi = 0, 0
		return
	}
	if n >= 64 {
		u.Lo, u.Hi = u.Hi>>(n&63), 0
		return
	}
	unbits := 64 - n

	u.Lo, u.Hi = (u.Lo>>n)|(u.Hi<<unbits), (u.Hi >> n)
}

// ShiftLeft shifts u left by n bits.
func (u *Uint128) ShiftLeft(n uint64) {
	if n > 127 {
		u.Lo, u.Hi = 0, 0
		return
	}
	if n >= 64 {
		u.Lo, u.Hi = 0, u.Lo<<(n&63)
		return
	}
	n &= 63
	if n == 0 {
		return
	}
	unbits := 64 - n

	u.Lo, u.Hi = (u.Lo << n), (u.Hi<<n)|(u.Lo>>unbits)
}

