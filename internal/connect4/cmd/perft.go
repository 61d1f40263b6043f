// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/game"
	"laptudirm.com/x/connect4/pkg/game/perft"
)

const SPIN = 31

func Perft(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft depth",
		Short: "Count the move tree of a position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`perft counts the leaf nodes of the tree of legal moves
			from a position, down to the given depth. Moves which end
			the game are leaves. The count for each first move is shown
			along with the total.

			The start position of the configured board is used unless
			--position is given.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := strconv.Atoi(args[0])
			if err != nil || depth < 0 {
				return fmt.Errorf("perft: bad depth %q", args[0])
			}

			position, err := cmd.Flags().GetString("position")
			if err != nil {
				return err
			}

			g := game.New(opts.boardOptions()...)
			if position != "" {
				if g, err = game.FromPosition(position, opts.boardOptions()...); err != nil {
					return err
				}
			}

			s := spinner.New(
				spinner.CharSets[SPIN], 100*time.Millisecond,
				spinner.WithWriter(cmd.ErrOrStderr()),
			)

			out := cmd.OutOrStdout()

			// A finished game is a leaf of its own tree.
			if depth == 0 || g.Over() {
				fmt.Fprintln(out, "nodes: 1")
				return nil
			}

			start := time.Now()
			s.Start()
			divide := perft.Divide(g.Board(), g.SideToMove(), depth)
			s.Stop()
			elapsed := time.Since(start)

			var total uint64
			for col, nodes := range divide {
				total += nodes
				if nodes > 0 {
					fmt.Fprintf(out, "%s: %d\n", game.ColumnName(col), nodes)
				}
			}

			fmt.Fprintf(out, "nodes: %d\n", total)
			logrus.WithFields(logrus.Fields{
				"depth":   depth,
				"elapsed": elapsed,
			}).Debug("perft finished")
			return nil
		},
	}

	cmd.Flags().StringP("position", "p", "", "Count from the given position")
	return cmd
}
