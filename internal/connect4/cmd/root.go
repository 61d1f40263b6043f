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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/internal/connect4/diag"
	"laptudirm.com/x/connect4/internal/connect4/render"
	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/config"
)

// Version is the version reported by --version.
var Version = "v0.1.0"

// options is the state shared by every command, filled in from the
// config file and global flags before a command runs.
type options struct {
	config config.Config
}

func (opts *options) boardOptions() []board.Option {
	return append(opts.config.BoardOptions(), board.WithDiagnostics(diag.New(nil)))
}

func (opts *options) renderer() *render.Renderer {
	return render.New(opts.config.Color)
}

func Root() *cobra.Command {
	opts := &options{config: config.Default()}

	root := &cobra.Command{
		Use:   "connect4",
		Short: "Play and analyse games of Connect Four",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`connect4 is a terminal host for a gravity-drop game of
			Connect Four. Two players take turns dropping discs into the
			columns of an upright grid, and the first to line up four of
			their discs wins.

			Columns are named by letter, a being the leftmost column, or
			by their 1-based number. Positions are written rank by rank
			from the top, with y and r for the discs and digits for runs
			of empty cells, as in 7/7/7/7/7/y6.`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Flag("config").Value.String())
			if err != nil {
				return err
			}

			logrus.SetLevel(c.Level())

			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			if cmd.Flag("no-color").Changed {
				c.Color = false
			}

			logrus.WithFields(logrus.Fields{
				"width":  c.Width,
				"height": c.Height,
				"color":  c.Color,
			}).Debug("loaded config")

			opts.config = c
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show connect4's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("config", "", "Read the config from the given file")
	root.PersistentFlags().Bool("no-color", false, "Don't colour the discs")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Play(opts))
	root.AddCommand(Replay(opts))
	root.AddCommand(Show(opts))
	root.AddCommand(Perft(opts))

	return root
}
