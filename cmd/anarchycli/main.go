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

// Command anarchycli exercises the anarchy package from the shell: it
// shuffles a cohort, splits a total across segments, rolls the
// built-in samplers, and deals a shuffled hand, all from a single seed.
package main

import (
	"fmt"
	"os"

	"github.com/solsword/anarchy/cmd/anarchycli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
