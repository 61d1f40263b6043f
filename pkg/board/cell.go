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

// Cell represents the contents of a single square of the board. It is
// stored as a single byte so that a View over the board can be read as
// a flat run of tags without any conversion.
type Cell uint8

const (
	Empty  Cell = 0 // no disc
	Yellow Cell = 1 // disc of the first player
	Red    Cell = 2 // disc of the second player
)

// IsPlayer reports whether the cell holds a player's disc.
func (cell Cell) IsPlayer() bool {
	return cell == Yellow || cell == Red
}

// Other returns the disc of the opposing player. Empty has no opponent
// and is returned unchanged.
func (cell Cell) Other() Cell {
	switch cell {
	case Yellow:
		return Red
	case Red:
		return Yellow
	default:
		return cell
	}
}

// Symbol returns the character used for the cell in position strings.
func (cell Cell) Symbol() byte {
	switch cell {
	case Yellow:
		return 'y'
	case Red:
		return 'r'
	default:
		return '.'
	}
}

func (cell Cell) String() string {
	switch cell {
	case Empty:
		return "Empty"
	case Yellow:
		return "Yellow"
	case Red:
		return "Red"
	default:
		return "Cell(?)"
	}
}
