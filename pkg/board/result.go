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

package board

// Result is the outcome reported by Board.Play for a single move.
type Result uint8

const (
	Win         Result = iota // the move completed a line of Connect discs
	Draw                      // the move filled the last legal target
	Unfinished                // the game goes on
	InvalidMove               // the move was rejected, the board is unchanged
)

// Terminal reports whether the result ends the game.
func (result Result) Terminal() bool {
	return result == Win || result == Draw
}

func (result Result) String() string {
	switch result {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	case Unfinished:
		return "Unfinished"
	case InvalidMove:
		return "InvalidMove"
	default:
		return "Result(?)"
	}
}
