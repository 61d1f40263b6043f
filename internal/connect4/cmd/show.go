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
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/game"
)

func Show(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show position",
		Short: "Show a position and the moves playable in it",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`show draws the board described by the given position
			string, followed by the state of the game and the columns a
			disc can be dropped in. The size of the board is taken from
			the position, not from the config.`),
		Example: heredoc.Doc(`
			$ connect4 show 7/7/7/7/3r3/2yy3`),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := game.FromPosition(args[0], opts.boardOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			b := g.Board()
			if err := opts.renderer().Render(out, b.Cells()); err != nil {
				return err
			}

			status, reason := g.Result()
			if status.Over() {
				fmt.Fprintf(out, "%s {%s} %s\n", status, reason, status.Score())
				return nil
			}

			var moves []string
			for col := 0; col < b.Width(); col++ {
				if _, ok := b.Target(col); ok {
					moves = append(moves, game.ColumnName(col))
				}
			}

			fmt.Fprintf(out, "%s to move: %s\n", g.SideToMove(), strings.Join(moves, " "))
			return nil
		},
	}
}
