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
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SampleConformance(t *testing.T) {
	assert.Equal(t, 0.842373086655968, Uniform(0))
	assert.Equal(t, 0.9716616308000062, Uniform(58923))
	assert.Equal(t, 0.6184944203669203, Normalish(0))
	assert.Equal(t, int64(21), Integer(0, 3, 25))
	assert.Equal(t, int64(-4), Integer(58923, -2, -4))
	assert.Equal(t, 3.6950486923768895, Exponential(0, 0.5))
	assert.Equal(t, 0.6950486923768895, TruncatedExponential(0, 0.5))
}

// Test_S6EndToEnd is scenario S6: Uniform matches the published value
// exactly, validating the double-precision arithmetic path.
func Test_S6EndToEnd(t *testing.T) {
	assert.Equal(t, 0.842373086655968, Uniform(0))
}

func Test_UniformRange(t *testing.T) {
	for seed := uint64(0); seed < 2000; seed++ {
		u := Uniform(seed)
		if u < 0 || u >= 1 {
			t.Fatalf("Uniform(%d) = %v, outside [0,1)", seed, u)
		}
	}
}

func Test_UniformSoundness(t *testing.T) {
	const n = 10000
	var sum, sumSq float64
	samples := make([]float64, n)
	for i := uint64(0); i < n; i++ {
		u := Uniform(i)
		samples[i] = u
		sum += u
		sumSq += u * u
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	stdev := math.Sqrt(variance)

	tolerance := 1.2 / math.Sqrt(n/1000)
	assert.InDelta(t, 0.5, mean, tolerance)
	assert.InDelta(t, 1/math.Sqrt(12), stdev, tolerance)

	sort.Float64s(samples)
	const points = 100
	var discrepancy float64
	for i := 0; i <= points; i++ {
		x := float64(i) / points
		idx := sort.SearchFloat64s(samples, x)
		empirical := float64(idx) / n
		discrepancy += math.Abs(empirical-x) / points
	}
	assert.Less(t, discrepancy, tolerance)
}

func Test_NormalishSoundness(t *testing.T) {
	const n = 10000
	var sum, sumSq float64
	for i := uint64(0); i < n; i++ {
		v := Normalish(i)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	stdev := math.Sqrt(variance)

	tolerance := 1.2 / math.Sqrt(n/1000)
	assert.InDelta(t, 0.5, mean, tolerance)
	assert.InDelta(t, 1.0/6, stdev, tolerance)
}

func Test_IntegerSoundness(t *testing.T) {
	const n = 10000
	const lo, hi = int64(-7), int64(13)
	var sum, sumSq float64
	for i := uint64(0); i < n; i++ {
		v := float64(Integer(i, lo, hi))
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	stdev := math.Sqrt(variance)

	tolerance := 1.2 / math.Sqrt(n/1000)
	assert.InDelta(t, float64(lo+hi-1)/2, mean, tolerance*float64(hi-lo))
	assert.InDelta(t, float64(hi-lo)/math.Sqrt(12), stdev, tolerance*float64(hi-lo))
}

func Test_ExponentialSoundness(t *testing.T) {
	const n = 10000
	const shape = 0.5
	var sum, sumSq float64
	for i := uint64(0); i < n; i++ {
		v := Exponential(i, shape)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	stdev := math.Sqrt(variance)

	tolerance := (1.2 / math.Sqrt(n/1000)) / shape
	assert.InDelta(t, 1/shape, mean, tolerance)
	assert.InDelta(t, 1/shape, stdev, tolerance)
}

func Test_FlipConvergesOnP(t *testing.T) {
	const n = 10000
	const p = 0.3
	var trueCount int
	for i := uint64(0); i < n; i++ {
		if Flip(p, i) {
			trueCount++
		}
	}
	freq := float64(trueCount) / n
	assert.InDelta(t, p, freq, 1.2/math.Sqrt(n/1000))
}

func Test_IntegerDegenerateRange(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		assert.Equal(t, int64(5), Integer(seed, 5, 5))
	}
}
