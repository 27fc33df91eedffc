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
	"fmt"
	"os"

	"github.com/solsword/anarchy"
	"github.com/spf13/cobra"
)

var shuffleCohortSize uint64

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "print the shuffled order of a cohort",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := anarchy.NewShuffler(shuffleCohortSize, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "shuffling %d items with seed %d\n", shuffleCohortSize, seed)
		for i := uint64(0); i < shuffleCohortSize; i++ {
			fmt.Println(s.Next())
		}
		return nil
	},
}

func init() {
	shuffleCmd.Flags().Uint64Var(&shuffleCohortSize, "size", 10, "number of items in the cohort")
}
