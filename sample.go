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

import "math"

// Prime is the largest prime smaller than 2^63. Uniform reduces its raw
// PRNG output modulo Prime before rescaling to [0,1).
const Prime = 9223372036854775783

// Uniform returns a pseudo-random float in [0, 1), determined entirely
// by seed.
//
// This is the "newer generation" form: two PRNG applications of the
// whitened seed, rather than the older generation's double-LFSR. The
// cohort and distribution operations in this package are only defined
// in terms of PRNG, so either choice would be internally consistent --
// but this is the form the published conformance values (and every
// other sampler below) are built on, so it's the only one implemented.
func Uniform(seed uint64) float64 {
	s := ScrambleSeed(seed)
	s = PRNG(PRNG(s, s), seed)
	return float64(s%Prime) / float64(Prime)
}

// normalishSpread is the offset between the three Uniform seeds
// Normalish averages. It has no special numeric significance beyond
// being large enough that the three samples don't correlate.
const normalishSpread = 9182793183

// Normalish returns a pseudo-random float in [0, 1) with a roughly
// normal-shaped distribution centered on 0.5 (mean 0.5, stdev ~= 1/6),
// produced by averaging three Uniform samples.
func Normalish(seed uint64) float64 {
	var t float64
	for i := uint64(0); i < 3; i++ {
		t += Uniform(seed + normalishSpread*i)
	}
	return t / 3
}

// Flip flips a biased coin: it returns true with probability p, using
// seed to determine the outcome. The same seed always produces the same
// result, but across many seeds the true/false ratio converges on p.
func Flip(p float64, seed uint64) bool {
	return Uniform(PRNG(seed, seed)) < p
}

// Integer returns a pseudo-random integer in [min(start,end),
// max(start,end)), drawn evenly across that range. If end == start, it
// always returns start.
func Integer(seed uint64, start, end int64) int64 {
	return int64(math.Floor(Uniform(seed)*float64(end-start))) + start
}

// Exponential returns a pseudo-random float on [0, +Inf) drawn from an
// exponential distribution with rate parameter shape (commonly called
// lambda). Using 1-Uniform(seed) rather than Uniform(seed) directly
// avoids taking the log of zero, since Uniform's range excludes 1 but
// includes 0.
func Exponential(seed uint64, shape float64) float64 {
	return -math.Log(1-Uniform(seed)) / shape
}

// TruncatedExponential returns a pseudo-random float on [0, 1): the
// fractional part of an Exponential sample with the same seed and
// shape, i.e. the result wraps rather than being rescaled.
func TruncatedExponential(seed uint64, shape float64) float64 {
	e := Exponential(seed, shape)
	return e - math.Floor(e)
}
