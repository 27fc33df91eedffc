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

var (
	distributeTotal     uint64
	distributeSegments  uint64
	distributeCapacity  uint64
	distributeRoughness float64
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "split a total across segments and print each segment's portion",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(
			os.Stderr,
			"distributing %d items across %d segments (capacity %d, roughness %g, seed %d)\n",
			distributeTotal, distributeSegments, distributeCapacity, distributeRoughness, seed,
		)
		var sum uint64
		for segment := uint64(0); segment < distributeSegments; segment++ {
			portion := anarchy.DistributionPortion(
				segment, distributeTotal, distributeSegments, distributeCapacity, distributeRoughness, seed,
			)
			sum += portion
			fmt.Printf("%d\t%d\n", segment, portion)
		}
		fmt.Fprintf(os.Stderr, "total distributed: %d\n", sum)
	},
}

func init() {
	distributeCmd.Flags().Uint64Var(&distributeTotal, "total", 100, "total number of items")
	distributeCmd.Flags().Uint64Var(&distributeSegments, "segments", 10, "number of segments")
	distributeCmd.Flags().Uint64Var(&distributeCapacity, "capacity", 100, "maximum items per segment")
	distributeCmd.Flags().Float64Var(&distributeRoughness, "roughness", 0.5, "0 = perfectly even, 1 = perfectly random")
}
