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

// A cohort is a contiguous block of cohortSize integers starting at a
// multiple of cohortSize: with cohortSize 10, the numbers 0-9 form the
// first cohort, 10-19 the second, and so on. The functions in this file
// convert between an "outer" index (a position in the whole domain) and
// a (cohort, inner) pair (which cohort, and where within it).
//
// cohortSize == 0 is a caller precondition violation; its behavior
// (a native divide-by-zero) is left undefined, per this package's
// design.

// Cohort returns which cohort the given outer index falls into.
func Cohort(outer, cohortSize uint64) uint64 {
	return outer / cohortSize
}

// CohortInner returns the index of outer within its cohort.
func CohortInner(outer, cohortSize uint64) uint64 {
	return outer % cohortSize
}

// CohortAndInner returns both the cohort number and within-cohort index
// for outer, as CohortAndInner(outer, cohortSize) ==
// (Cohort(outer, cohortSize), CohortInner(outer, cohortSize)).
func CohortAndInner(outer, cohortSize uint64) (cohort, inner uint64) {
	return Cohort(outer, cohortSize), CohortInner(outer, cohortSize)
}

// CohortOuter is the inverse of CohortAndInner: given a cohort number
// and a within-cohort index, it returns the corresponding outer index.
// cohort is taken as a signed value so that negative cohort numbers
// wrap via normal two's-complement conversion, matching the behavior of
// a caller who passes a negative cohort index through an unsigned API.
func CohortOuter(cohort int64, inner, cohortSize uint64) uint64 {
	return (cohortSize*uint64(cohort) + inner)
}
