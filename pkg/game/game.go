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

// Package game referees a game of Connect Four played on a board.Board.
// It keeps track of the side to move, parses moves given as text and
// refuses moves once the game is over, which the board itself does not.
package game

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"laptudirm.com/x/connect4/pkg/board"
)

var (
	ErrGameOver    = errors.New("game: the game is over")
	ErrBadMove     = errors.New("game: can't parse move")
	ErrIllegalMove = errors.New("game: illegal move")
	ErrBadPosition = errors.New("game: unreachable position")
)

// Game is a board together with the bookkeeping of whose turn it is and
// how the game has ended, if it has.
type Game struct {
	board *board.Board
	turn  board.Cell
	moves []int

	status Status
	reason string
}

// New starts a game on an empty board. Yellow moves first.
func New(opts ...board.Option) *Game {
	return &Game{
		board: board.New(opts...),
		turn:  board.Yellow,
	}
}

// FromPosition sets up a game from a board position string. The side to
// move follows from the number of discs of each colour, Yellow having
// moved first. A position which already contains a line of four is
// reported as won by its owner, who must have played the last disc.
// The options are applied to the parsed board, whose size always comes
// from the position.
func FromPosition(position string, opts ...board.Option) (*Game, error) {
	b, err := board.ParsePosition(position, opts...)
	if err != nil {
		return nil, err
	}

	var yellows, reds int
	view := b.Cells()
	for i := 0; i < view.Len(); i++ {
		switch view.At(i) {
		case board.Yellow:
			yellows++
		case board.Red:
			reds++
		}
	}

	g := &Game{board: b}
	switch yellows - reds {
	case 0:
		g.turn = board.Yellow
	case 1:
		g.turn = board.Red
	default:
		return nil, fmt.Errorf("%w: %d yellow and %d red discs", ErrBadPosition, yellows, reds)
	}

	winners := map[board.Cell]bool{}
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.Connected(row, col) {
				winners[view.Cell(row, col)] = true
			}
		}
	}

	switch {
	case len(winners) > 1:
		return nil, fmt.Errorf("%w: both players have four in a row", ErrBadPosition)
	case winners[g.turn]:
		return nil, fmt.Errorf("%w: %s moved after %s had won", ErrBadPosition, g.turn.Other(), g.turn)
	case winners[board.Yellow]:
		g.status, g.reason = YellowWins, ReasonFourInARow
	case winners[board.Red]:
		g.status, g.reason = RedWins, ReasonFourInARow
	case len(b.LegalTargets()) == 0:
		g.status, g.reason = Draw, ReasonBoardFull
	}

	return g, nil
}

// Replay plays the given moves from the start and returns the resulting
// game. It stops at the first move which fails.
func Replay(moves []string, opts ...board.Option) (*Game, error) {
	g := New(opts...)
	for i, move := range moves {
		if _, err := g.MakeMove(move); err != nil {
			return g, fmt.Errorf("move %d (%s): %w", i+1, move, err)
		}
	}

	return g, nil
}

// Board returns the board the game is played on. Moves should be made
// through the Game so that its bookkeeping stays correct.
func (g *Game) Board() *board.Board {
	return g.board
}

// SideToMove returns the colour of the player who makes the next move.
func (g *Game) SideToMove() board.Cell {
	return g.turn
}

// Moves returns the columns played so far, in order.
func (g *Game) Moves() []int {
	return slices.Clone(g.moves)
}

// Result returns the status of the game and, if it is over, the reason.
func (g *Game) Result() (Status, string) {
	return g.status, g.reason
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.status.Over()
}

// ParseMove converts a move string into a column index. Columns are named
// by letter, "a" being the leftmost one, or by their 1-based number. The
// column is not checked against the board.
func ParseMove(move string) (int, error) {
	move = strings.ToLower(strings.TrimSpace(move))

	switch {
	case move == "":
		return 0, fmt.Errorf("%w: empty move", ErrBadMove)
	case len(move) == 1 && move[0] >= 'a' && move[0] <= 'z':
		return int(move[0] - 'a'), nil
	}

	n, err := strconv.Atoi(move)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadMove, move)
	}

	return n - 1, nil
}

// ColumnName returns the letter naming a column, the inverse of ParseMove.
func ColumnName(col int) string {
	if col < 0 || col >= 26 {
		return strconv.Itoa(col + 1)
	}

	return string(rune('a' + col))
}

// MakeMove parses a move string and plays it for the side to move.
func (g *Game) MakeMove(move string) (board.Result, error) {
	col, err := ParseMove(move)
	if err != nil {
		return board.InvalidMove, err
	}

	return g.Play(col)
}

// Play drops a disc of the side to move into the given column. On success
// the turn passes to the other player.
func (g *Game) Play(col int) (board.Result, error) {
	if g.Over() {
		return board.InvalidMove, ErrGameOver
	}

	_, result := g.board.Drop(g.turn, col)
	switch result {
	case board.InvalidMove:
		return result, fmt.Errorf("%w: column %s", ErrIllegalMove, ColumnName(col))
	case board.Win:
		g.status, g.reason = WinFor(g.turn), ReasonFourInARow
	case board.Draw:
		g.status, g.reason = Draw, ReasonBoardFull
	}

	g.moves = append(g.moves, col)
	g.turn = g.turn.Other()
	return result, nil
}
