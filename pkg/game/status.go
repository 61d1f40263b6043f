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

package game

import "laptudirm.com/x/connect4/pkg/board"

// Status is the state of a game as seen by the referee.
type Status uint8

const (
	Ongoing Status = iota
	YellowWins
	RedWins
	Draw
)

// Reasons reported alongside a terminal Status.
const (
	ReasonFourInARow = "Four in a row"
	ReasonBoardFull  = "Board full"
)

// WinFor returns the Status of a game won by the given player.
func WinFor(cell board.Cell) Status {
	switch cell {
	case board.Yellow:
		return YellowWins
	case board.Red:
		return RedWins
	default:
		return Ongoing
	}
}

// Over reports whether the status ends the game.
func (status Status) Over() bool {
	return status != Ongoing
}

// Score returns the score of the game from Yellow's point of view, in the
// notation used by game records.
func (status Status) Score() string {
	switch status {
	case YellowWins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case RedWins:
		return "0-1"
	default:
		return "*"
	}
}

func (status Status) String() string {
	switch status {
	case Ongoing:
		return "Ongoing"
	case YellowWins:
		return "Yellow wins"
	case RedWins:
		return "Red wins"
	case Draw:
		return "Draw"
	default:
		return "Status(?)"
	}
}
