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

// Package anarchy provides reversible, incremental, seeded pseudo-random
// operations for procedural generators that need to decide local
// properties -- what drops, where a rare event happens, what order a
// group of choices is made -- without keeping a global RNG stream around,
// while still holding to global distributional properties.
//
// Every exported function here is a pure computation over its arguments:
// given an index and a seed, it deterministically computes a result in
// O(1) or O(log n) time, and where the operation has an inverse, that
// inverse exactly recovers the input. There is no mutable package state,
// no I/O, and nothing here is safe to use for cryptography.
package anarchy

// IDBits is the width, in bits, of an ID -- the 64-bit unsigned word
// that every function in this package operates on or returns.
const IDBits = 64

// IDMask is an all-ones 64-bit word, used to keep arithmetic results
// within the ID domain after operations that could otherwise overflow.
const IDMask = ^uint64(0)
