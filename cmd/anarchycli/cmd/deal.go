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
	dealDecks uint64
	dealCount uint64
)

var suits = []byte("CDHS")
var faces = []byte("A23456789TJQK")

func cardName(value uint64) string {
	c := value % 52
	return string([]byte{faces[c%13], suits[(c/13)%4]})
}

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "deal cards from one or more shuffled decks without repeats",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dealDecks < 1 {
			return errors.Errorf("number of decks (%d) must be positive", dealDecks)
		}
		cohortSize := dealDecks * 52
		s, err := anarchy.NewShuffler(cohortSize, seed)
		if err != nil {
			return err
		}
		n := dealCount
		if n > cohortSize {
			n = cohortSize
		}
		fmt.Fprintf(os.Stderr, "dealing %d of %d cards from %d deck(s), seed %d\n", n, cohortSize, dealDecks, seed)
		for i := uint64(0); i < n; i++ {
			fmt.Println(cardName(s.Next()))
		}
		return nil
	},
}

func init() {
	dealCmd.Flags().Uint64Var(&dealDecks, "decks", 1, "number of 52-card decks in play")
	dealCmd.Flags().Uint64Var(&dealCount, "count", 5, "number of cards to deal")
}
