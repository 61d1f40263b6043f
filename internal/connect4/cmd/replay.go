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

func Replay(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay move...",
		Short: "Replay a game from its moves",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`replay plays the given moves from the start position and
			shows the resulting board, the state of the game and its
			position string. Moves may also be given as a single
			space separated argument.

			If a move can't be played, the board is shown as it was
			before that move and the command fails.`),
		Example: heredoc.Doc(`
			$ connect4 replay d d c e b f a
			$ connect4 replay "4 4 3 5 2 6 1"`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var moves []string
			for _, arg := range args {
				moves = append(moves, strings.Fields(arg)...)
			}

			g, replayErr := game.Replay(moves, opts.boardOptions()...)

			out := cmd.OutOrStdout()
			if err := opts.renderer().Render(out, g.Board().Cells()); err != nil {
				return err
			}

			if replayErr != nil {
				return replayErr
			}

			status, reason := g.Result()
			if status.Over() {
				fmt.Fprintf(out, "%s {%s} %s\n", status, reason, status.Score())
			} else {
				fmt.Fprintf(out, "%s, %s to move\n", status, g.SideToMove())
			}

			fmt.Fprintln(out, g.Board().Position())
			return nil
		},
	}
}
