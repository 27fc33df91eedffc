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

import "github.com/pkg/errors"

// Shuffler wraps CohortShuffle to provide the stateful, incremental
// "deal without repeats" calling convention callers usually want from a
// shuffle: repeated calls to Next walk the whole cohort exactly once,
// in shuffled order, without materializing a slice of cohortSize
// values up front.
type Shuffler struct {
	cohortSize uint64
	seed       uint64
	counter    uint64
}

// NewShuffler creates a Shuffler over a cohort of the given size. seed
// selects which of the many possible shuffles of that cohort size this
// Shuffler walks; the same (cohortSize, seed) pair always produces the
// same order.
func NewShuffler(cohortSize, seed uint64) (*Shuffler, error) {
	if cohortSize < 1 {
		return nil, errors.New("cohort size must be positive")
	}
	return &Shuffler{cohortSize: cohortSize, seed: seed}, nil
}

// Next returns the next value in the shuffle.
func (s *Shuffler) Next() uint64 {
	return s.nthValue(s.counter)
}

// Nth returns the value at position n in the shuffle, and resets the
// Shuffler's internal counter so a following Next() call returns the
// value at position n+1. Negative n counts back from the end of the
// cohort, so Nth(-1) is the same as Nth(cohortSize-1).
func (s *Shuffler) Nth(n int64) uint64 {
	if n < 0 {
		n += int64(s.cohortSize)
	}
	s.counter = uint64(n)
	return s.nthValue(s.counter)
}

func (s *Shuffler) nthValue(n uint64) uint64 {
	n %= s.cohortSize
	s.counter = n + 1
	return CohortShuffle(n, s.cohortSize, s.seed)
}
