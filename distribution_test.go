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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_S4EndToEnd is scenario S4: total=50, n_segments=10, capacity=10,
// roughness=0.5.
func Test_S4EndToEnd(t *testing.T) {
	const total, nSegments, capacity = 50, 10, 10
	const roughness = 0.5
	const seed = 1

	var sum uint64
	for k := uint64(0); k < nSegments; k++ {
		sum += DistributionPortion(k, total, nSegments, capacity, roughness, seed)
	}
	require.Equal(t, uint64(50), sum)

	require.Equal(t, uint64(0), DistributionSegment(0, total, nSegments, capacity, roughness, seed))
	require.Equal(t, uint64(9), DistributionSegment(49, total, nSegments, capacity, roughness, seed))
}

type distributionCase struct {
	total, nSegments, capacity uint64
	roughness                  float64
	seed                       uint64
}

var distributionCases = []distributionCase{
	{total: 50, nSegments: 10, capacity: 10, roughness: 0.5, seed: 1},
	{total: 1000, nSegments: 7, capacity: 200, roughness: 0, seed: 42},
	{total: 999, nSegments: 13, capacity: 999, roughness: 1, seed: 9001},
	{total: 1, nSegments: 1, capacity: 1, roughness: 0.3, seed: 5},
	{total: 0, nSegments: 4, capacity: 10, roughness: 0.5, seed: 17},
}

func Test_DistributionConservation(t *testing.T) {
	for _, c := range distributionCases {
		var sum uint64
		for s := uint64(0); s < c.nSegments; s++ {
			sum += DistributionPortion(s, c.total, c.nSegments, c.capacity, c.roughness, c.seed)
		}
		assert.Equal(t, c.total, sum, "case %+v", c)

		for s := uint64(0); s+1 < c.nSegments; s++ {
			delta := DistributionPriorSum(s+1, c.total, c.nSegments, c.capacity, c.roughness, c.seed) -
				DistributionPriorSum(s, c.total, c.nSegments, c.capacity, c.roughness, c.seed)
			portion := DistributionPortion(s, c.total, c.nSegments, c.capacity, c.roughness, c.seed)
			assert.Equal(t, portion, delta, "case %+v segment %d", c, s)
		}
	}
}

func Test_DistributionConsistency(t *testing.T) {
	for _, c := range distributionCases {
		if c.total == 0 {
			continue
		}
		for index := uint64(0); index < c.total; index++ {
			s := DistributionSegment(index, c.total, c.nSegments, c.capacity, c.roughness, c.seed)
			prior := DistributionPriorSum(s, c.total, c.nSegments, c.capacity, c.roughness, c.seed)
			portion := DistributionPortion(s, c.total, c.nSegments, c.capacity, c.roughness, c.seed)
			if index < prior || index >= prior+portion {
				t.Errorf("case %+v index %d: segment %d prior=%d portion=%d out of range",
					c, index, s, prior, portion)
			}
		}
	}
}

func Test_DistributionCapacityRespect(t *testing.T) {
	for _, c := range distributionCases {
		if c.capacity*c.nSegments < c.total {
			continue
		}
		for s := uint64(0); s < c.nSegments; s++ {
			portion := DistributionPortion(s, c.total, c.nSegments, c.capacity, c.roughness, c.seed)
			if portion > c.capacity {
				t.Errorf("case %+v segment %d: portion %d exceeds capacity %d", c, s, portion, c.capacity)
			}
		}
	}
}

func Test_MaxSmaller(t *testing.T) {
	sumtable := []uint64{0, 5, 12}

	cases := []struct {
		value uint64
		want  int
	}{
		{value: 0, want: -1},
		{value: 1, want: 0},
		{value: 5, want: 0},
		{value: 6, want: 1},
		{value: 12, want: 1},
	}
	for _, c := range cases {
		if got := MaxSmaller(c.value, sumtable); got != c.want {
			t.Errorf("MaxSmaller(%d, %v) = %d, want %d", c.value, sumtable, got, c.want)
		}
	}
}
