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

package game_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/game"
)

func TestNewGame(t *testing.T) {
	g := game.New()

	assert.Equal(t, board.Yellow, g.SideToMove())
	assert.False(t, g.Over())
	assert.Empty(t, g.Moves())

	status, reason := g.Result()
	assert.Equal(t, game.Ongoing, status)
	assert.Empty(t, reason)
	assert.Equal(t, "*", status.Score())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		move string
		col  int
		err  error
	}{
		{"a", 0, nil},
		{"D", 3, nil},
		{" g\n", 6, nil},
		{"1", 0, nil},
		{"7", 6, nil},
		{"12", 11, nil},
		{"", 0, game.ErrBadMove},
		{"0", 0, game.ErrBadMove},
		{"-2", 0, game.ErrBadMove},
		{"ab", 0, game.ErrBadMove},
		{"?", 0, game.ErrBadMove},
	}

	for _, test := range tests {
		col, err := game.ParseMove(test.move)
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, "move %q", test.move)
			continue
		}

		require.NoError(t, err, "move %q", test.move)
		assert.Equal(t, test.col, col, "move %q", test.move)
	}
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "a", game.ColumnName(0))
	assert.Equal(t, "g", game.ColumnName(6))
	assert.Equal(t, "27", game.ColumnName(26))
}

func TestTurnsAlternate(t *testing.T) {
	g := game.New()

	result, err := g.MakeMove("d")
	require.NoError(t, err)
	assert.Equal(t, board.Unfinished, result)
	assert.Equal(t, board.Red, g.SideToMove())

	_, err = g.MakeMove("d")
	require.NoError(t, err)
	assert.Equal(t, board.Yellow, g.SideToMove())

	view := g.Board().Cells()
	assert.Equal(t, board.Yellow, view.Cell(5, 3))
	assert.Equal(t, board.Red, view.Cell(4, 3))
	assert.Equal(t, []int{3, 3}, g.Moves())
}

func TestReplayYellowWins(t *testing.T) {
	g, err := game.Replay(strings.Fields("a b a b a b a"))
	require.NoError(t, err)

	status, reason := g.Result()
	assert.Equal(t, game.YellowWins, status)
	assert.Equal(t, game.ReasonFourInARow, reason)
	assert.Equal(t, "1-0", status.Score())
	assert.True(t, g.Over())
}

func TestReplayRedWins(t *testing.T) {
	g, err := game.Replay(strings.Fields("a b a c a d g e"))
	require.NoError(t, err)

	status, _ := g.Result()
	assert.Equal(t, game.RedWins, status)
	assert.Equal(t, "0-1", status.Score())
}

func TestNoMovesAfterGameOver(t *testing.T) {
	g, err := game.Replay(strings.Fields("a b a b a b a"))
	require.NoError(t, err)

	before := g.Board().Position()
	result, err := g.MakeMove("c")
	assert.ErrorIs(t, err, game.ErrGameOver)
	assert.Equal(t, board.InvalidMove, result)
	assert.Equal(t, before, g.Board().Position())
	assert.Len(t, g.Moves(), 7)
}

func TestIllegalMoveKeepsTurn(t *testing.T) {
	g, err := game.Replay(strings.Fields("a a a a a a"))
	require.NoError(t, err)
	require.Equal(t, board.Yellow, g.SideToMove())

	_, err = g.MakeMove("a")
	assert.ErrorIs(t, err, game.ErrIllegalMove)
	assert.Equal(t, board.Yellow, g.SideToMove())

	_, err = g.MakeMove("h")
	assert.ErrorIs(t, err, game.ErrIllegalMove)

	_, err = g.MakeMove("x1")
	assert.ErrorIs(t, err, game.ErrBadMove)

	assert.Len(t, g.Moves(), 6)
}

func TestReplayStopsAtFailure(t *testing.T) {
	g, err := game.Replay([]string{"a", "b", "z", "c"})
	assert.ErrorIs(t, err, game.ErrIllegalMove)
	assert.ErrorContains(t, err, "move 3")
	assert.Equal(t, []int{0, 1}, g.Moves())
}

func TestReplayDraw(t *testing.T) {
	// Fills a 2x2 board: no line of four fits on it.
	g, err := game.Replay([]string{"a", "b", "a", "b"}, board.WithSize(2, 2))
	require.NoError(t, err)

	status, reason := g.Result()
	assert.Equal(t, game.Draw, status)
	assert.Equal(t, game.ReasonBoardFull, reason)
	assert.Equal(t, "1/2-1/2", status.Score())
}

func TestFromPosition(t *testing.T) {
	tests := []struct {
		name     string
		position string
		turn     board.Cell
		status   game.Status
		err      error
	}{
		{"start", "7/7/7/7/7/7", board.Yellow, game.Ongoing, nil},
		{"red to move", "7/7/7/7/7/3y3", board.Red, game.Ongoing, nil},
		{"yellow to move", "7/7/7/7/3r3/3y3", board.Yellow, game.Ongoing, nil},
		{"yellow won", "7/7/7/7/rrr4/yyyy3", board.Red, game.YellowWins, nil},
		{"red won", "7/7/7/7/y6/rrrryyy", board.Yellow, game.RedWins, nil},
		{"full board", "rr/yy", board.Yellow, game.Draw, nil},
		{"red moved after yellow won", "7/7/7/7/rrr4/yyyyr2", 0, 0, game.ErrBadPosition},
		{"yellow moved after red won", "7/7/7/y6/yy5/rrrryy1", 0, 0, game.ErrBadPosition},
		{"too many yellow", "7/7/7/7/7/yy5", 0, 0, game.ErrBadPosition},
		{"too many red", "7/7/7/7/7/r6", 0, 0, game.ErrBadPosition},
		{"floating", "7/7/7/7/y6/7", 0, 0, board.ErrFloating},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := game.FromPosition(test.position)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.turn, g.SideToMove())

			status, _ := g.Result()
			assert.Equal(t, test.status, status)
		})
	}
}

func TestFromPositionOptions(t *testing.T) {
	g, err := game.FromPosition("3/3", board.WithSize(7, 6))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Board().Width())
	assert.Equal(t, 2, g.Board().Height())
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "Yellow wins", game.YellowWins.String())
	assert.Equal(t, "Red wins", game.RedWins.String())
	assert.Equal(t, "Draw", game.Draw.String())
	assert.Equal(t, game.RedWins, game.WinFor(board.Red))
	assert.Equal(t, game.Ongoing, game.WinFor(board.Empty))
}
