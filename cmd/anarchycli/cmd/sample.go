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

	"github.com/pkg/errors"
	"github.com/solsword/anarchy"
	"github.com/spf13/cobra"
)

var (
	sampleKind  string
	sampleCount uint64
	sampleShape float64
	sampleLow   int64
	sampleHigh  int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "roll one of the built-in samplers several times",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(os.Stderr, "sampling %q %d times starting from seed %d\n", sampleKind, sampleCount, seed)
		for i := uint64(0); i < sampleCount; i++ {
			s := seed + i
			switch sampleKind {
			case "uniform":
				fmt.Println(anarchy.Uniform(s))
			case "normalish":
				fmt.Println(anarchy.Normalish(s))
			case "flip":
				fmt.Println(anarchy.Flip(0.5, s))
			case "integer":
				fmt.Println(anarchy.Integer(s, sampleLow, sampleHigh))
			case "exponential":
				fmt.Println(anarchy.Exponential(s, sampleShape))
			case "truncated-exponential":
				fmt.Println(anarchy.TruncatedExponential(s, sampleShape))
			default:
				return errors.Errorf("unknown sample kind %q", sampleKind)
			}
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVar(&sampleKind, "kind", "uniform",
		"uniform, normalish, flip, integer, exponential, or truncated-exponential")
	sampleCmd.Flags().Uint64Var(&sampleCount, "count", 5, "number of values to draw")
	sampleCmd.Flags().Float64Var(&sampleShape, "shape", 0.5, "shape parameter for exponential samplers")
	sampleCmd.Flags().Int64Var(&sampleLow, "low", 0, "inclusive lower bound for the integer sampler")
	sampleCmd.Flags().Int64Var(&sampleHigh, "high", 10, "exclusive upper bound for the integer sampler")
}
