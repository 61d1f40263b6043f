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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/game"
	"laptudirm.com/x/connect4/pkg/session"
)

// errQuit is returned by a game which the players abandoned.
var errQuit = errors.New("game abandoned")

func Play(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game between two players at the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game between two players sharing the
			terminal. The board is shown after every move, and the player
			to move is asked for the column to drop their disc in.

			With --games, several games are played in a row with the
			players swapping colours after each one, and the score of
			the session is shown at the end. Type quit to stop early.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := cmd.Flags().GetInt("games")
			if err != nil {
				return err
			}

			if games < 1 {
				return fmt.Errorf("play: --games must be positive, got %d", games)
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			s := session.New(opts.config.Players.Yellow, opts.config.Players.Red)
			for s.Games < games {
				yellow, red := s.Current()
				fmt.Fprintf(out, "Game %d: %s (Yellow) vs %s (Red)\n", s.Games+1, yellow, red)

				status, err := playGame(opts, in, out, [2]string{yellow, red})
				if errors.Is(err, errQuit) {
					break
				}

				if err != nil {
					return err
				}

				if err := s.Record(status); err != nil {
					return err
				}
			}

			if games > 1 {
				s.Report(out)
			}

			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 1, "Number of games to play")
	return cmd
}

// playGame plays a single game, reading moves from in until it is over.
func playGame(opts *options, in *bufio.Scanner, out io.Writer, names [2]string) (game.Status, error) {
	g := game.New(opts.boardOptions()...)
	r := opts.renderer()

	for !g.Over() {
		if err := r.Render(out, g.Board().Cells()); err != nil {
			return game.Ongoing, err
		}

		side := g.SideToMove()
		name := names[0]
		if side == board.Red {
			name = names[1]
		}

		fmt.Fprintf(out, "%s (%s) to move: ", name, side)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return game.Ongoing, err
			}

			fmt.Fprintln(out)
			return game.Ongoing, errQuit
		}

		move := strings.TrimSpace(in.Text())
		if move == "quit" {
			return game.Ongoing, errQuit
		}

		result, err := g.MakeMove(move)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		logrus.WithFields(logrus.Fields{
			"move":   move,
			"side":   side,
			"result": result,
		}).Debug("played move")
	}

	if err := r.Render(out, g.Board().Cells()); err != nil {
		return game.Ongoing, err
	}

	status, reason := g.Result()
	fmt.Fprintf(out, "%s {%s} %s\n", status, reason, status.Score())
	return status, nil
}
