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

package cmd

import (
	"github.com/spf13/cobra"
)

var seed uint64

var rootCmd = &cobra.Command{
	Use:   "anarchycli",
	Short: "anarchycli exercises the anarchy reversible-randomness library",
	Long: `anarchycli - a small harness around the anarchy package.

anarchy builds deterministic, seekable pseudo-randomness: every value
it produces is a pure function of its inputs and a seed, so the same
seed always reproduces the same shuffle, the same sample, and the same
distribution without needing to replay everything before it.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "seed controlling every derived value")

	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(distributeCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(dealCmd)
}
