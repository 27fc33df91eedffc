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

// This file implements the L4 distribution engine: given a total item
// count, a number of segments, a per-segment capacity, a roughness
// value in [0,1] (0 = perfectly even, 1 = perfectly random), and a
// seed, it computes how many items land in each segment, without ever
// materializing the whole distribution. All three queries below recurse
// on the same split: at each level, the segments are divided in half,
// a split point for the items is chosen, and the query recurses into
// whichever half it falls in. Recursion depth is ceil(log2(nSegments)).

// splitPoint computes, for one level of the recursive distribution, how
// many of the total items go to the first half of the segments (and how
// many segments that first half contains).
func splitPoint(total, nSegments, segmentCapacity uint64, roughness float64, seed uint64) (split, firstHalf uint64) {
	firstHalf = nSegments / 2

	// Proportional even split -- the natural target absent any
	// roughness or capacity pressure. Matches the reference formula's
	// floating-point evaluation order (first_half/n_segments as a
	// float, then scaled by total) rather than an exact integer
	// division, since that's what the published numeric results are
	// computed from.
	nat := uint64(math.Floor(float64(total) * (float64(firstHalf) / float64(nSegments))))

	splitMin := uint64(math.Floor(float64(nat) - float64(nat)*roughness))
	splitMax := uint64(math.Floor(float64(nat) + (float64(total)-float64(nat))*roughness))

	// Capacity clamps. segmentCapacity and a segment count can each be
	// close to 2^64, so their product is computed in full 128-bit
	// precision before being compared against a 64-bit item count --
	// a plain uint64 multiply could wrap and clamp against the wrong
	// capacity.
	restCapacity := Mul64(segmentCapacity, nSegments-firstHalf)
	if widen64(total - splitMin).Cmp(restCapacity) > 0 {
		splitMin = total - restCapacity.Lo
	}
	firstCapacity := Mul64(segmentCapacity, firstHalf)
	if widen64(splitMax).Cmp(firstCapacity) > 0 {
		splitMax = firstCapacity.Lo
	}

	if splitMin >= splitMax {
		split = splitMin
	} else {
		split = splitMin + (PRNG(total^PRNG(seed, seed), seed) % (splitMax - splitMin))
	}
	return split, firstHalf
}

// DistributionPortion returns how many of the total items end up in
// the given segment, for a distribution of total items among
// nSegments segments each with capacity at most segmentCapacity,
// shaped by roughness and seed. segmentCapacity*nSegments should be
// >= total.
func DistributionPortion(segment, total, nSegments, segmentCapacity uint64, roughness float64, seed uint64) uint64 {
	if nSegments == 1 {
		return total
	}
	split, firstHalf := splitPoint(total, nSegments, segmentCapacity, roughness, seed)
	if segment < firstHalf {
		return DistributionPortion(segment, split, firstHalf, segmentCapacity, roughness, seed)
	}
	return DistributionPortion(segment-firstHalf, total-split, nSegments-firstHalf, segmentCapacity, roughness, seed)
}

// DistributionPriorSum returns the cumulative number of items in all
// segments before the given segment, for the same distribution
// DistributionPortion describes.
func DistributionPriorSum(segment, total, nSegments, segmentCapacity uint64, roughness float64, seed uint64) uint64 {
	if nSegments == 1 {
		return 0
	}
	split, firstHalf := splitPoint(total, nSegments, segmentCapacity, roughness, seed)
	if segment < firstHalf {
		return DistributionPriorSum(segment, split, firstHalf, segmentCapacity, roughness, seed)
	}
	return split + DistributionPriorSum(segment-firstHalf, total-split, nSegments-firstHalf, segmentCapacity, roughness, seed)
}

// DistributionSegment returns the index of the segment that the given
// item (0 <= index < total) is distributed into, for the same
// distribution DistributionPortion describes.
func DistributionSegment(index, total, nSegments, segmentCapacity uint64, roughness float64, seed uint64) uint64 {
	if nSegments == 1 {
		return 0
	}
	split, firstHalf := splitPoint(total, nSegments, segmentCapacity, roughness, seed)
	if index < split {
		return DistributionSegment(index, split, firstHalf, segmentCapacity, roughness, seed)
	}
	return firstHalf + DistributionSegment(index-split, total-split, nSegments-firstHalf, segmentCapacity, roughness, seed)
}

// MaxSmaller binary searches the sorted prefix-sum table sumtable and
// returns the largest index i such that sumtable[i] < value, or -1 if
// no entry is smaller than value. It's used to look up which segment
// an item falls into when segment sizes vary and a prefix-sum table has
// already been materialized, rather than recomputing via
// DistributionSegment.
func MaxSmaller(value uint64, sumtable []uint64) int {
	fr, to := 0, len(sumtable)
	for to-fr > 2 {
		where := fr + (to-fr)/2
		if sumtable[where] >= value {
			to = where
		} else {
			fr = where
		}
	}

	for i := to - 1; i >= fr; i-- {
		if sumtable[i] < value {
			return i
		}
	}
	return -1
}
