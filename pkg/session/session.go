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

// Package session keeps the score of a series of games between the same
// two players, who swap colours after every game.
package session

import (
	"fmt"
	"io"
	"math"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/game"
)

// Score is the record of a single player in a session.
type Score struct {
	Wins, Losses, Draws int
}

// Total returns the number of games the player has finished.
func (score Score) Total() int {
	return score.Wins + score.Losses + score.Draws
}

// Session is a series of games between two players. The first player has
// Yellow in the first game, the second player in the second, and so on.
type Session struct {
	Players [2]string
	Scores  [2]Score

	Games int // number of games recorded so far
}

// New creates an empty session between the two named players.
func New(first, second string) *Session {
	return &Session{
		Players: [2]string{first, second},
	}
}

// Yellow returns the index of the player who has Yellow in the given game,
// counting from zero.
func (s *Session) Yellow(n int) int {
	return n % 2
}

// Colour returns the colour of the given player in the given game.
func (s *Session) Colour(player, n int) board.Cell {
	if s.Yellow(n) == player {
		return board.Yellow
	}

	return board.Red
}

// Colours returns the indexes of the Yellow and Red players of the given
// game, counting from zero.
func (s *Session) Colours(n int) (yellow, red int) {
	y := s.Yellow(n)
	return y, 1 ^ y
}

// Current returns the names of the Yellow and Red players of the next game.
func (s *Session) Current() (yellow, red string) {
	y, r := s.Colours(s.Games)
	return s.Players[y], s.Players[r]
}

// Record adds the result of the next game to the session. Games which
// are still ongoing are not recorded.
func (s *Session) Record(status game.Status) error {
	y, r := s.Colours(s.Games)

	switch status {
	case game.YellowWins:
		s.Scores[y].Wins++
		s.Scores[r].Losses++

	case game.RedWins:
		s.Scores[r].Wins++
		s.Scores[y].Losses++

	case game.Draw:
		s.Scores[y].Draws++
		s.Scores[r].Draws++

	default:
		return fmt.Errorf("session: can't record game %d: %s", s.Games+1, status)
	}

	s.Games++
	return nil
}

// nameWidth is the width of the name column of the report.
const nameWidth = 15

// fit shortens names which don't fit in the given number of columns,
// marking the cut with an ellipsis.
func fit(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}

	return string(runes[:width-1]) + "…"
}

// Report prints a table of the session's scores, with the rating
// difference of each player against the other.
func (s *Session) Report(w io.Writer) {
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	for i, name := range s.Players {
		score := s.Scores[i]
		lower, elo, upper := Elo(score.Wins, score.Draws, score.Losses)

		fmt.Fprintf(w,
			"║ %2d. %-*s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n",
			i+1, nameWidth, fit(name, nameWidth),
			elo, math.Abs(math.Max(upper-elo, elo-lower)),
			score.Wins, score.Losses, score.Draws,
			score.Total())
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")
}
