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

// ScrambleSeed whitens a seed value before it's used to parameterize
// PRNG or cohort operations. Without this, sequential seeds (0, 1, 2,
// ...) -- which callers pick all the time, since they're convenient --
// would produce highly correlated sequences. This deliberately mixes
// low-entropy sequential seeds before anything else touches them.
func ScrambleSeed(s uint64) uint64 {
	s = ((s + 1) * (3 + (s % 23)))
	s = Fold(s, 11) // 11 is prime
	s = Scramble(s)
	s = Swirl(s, s+23) // 23 is prime
	s = Scramble(s)
	s ^= (s % 153) * Scramble(s)
	return s
}
