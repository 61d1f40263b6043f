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

// Direction is one of the four lines through a cell along which a win is
// looked for. Each line is scanned in two halves: first backwards from the
// cell next to the anchor, then forwards from the anchor itself, so the
// anchor is counted exactly once.
type Direction struct {
	Name   string
	dr, dc int // forward step
}

// directions holds the lines checked after every move.
var directions = [4]Direction{
	{Name: "horizontal", dr: 0, dc: +1},     // left, then right
	{Name: "vertical", dr: +1, dc: 0},       // up, then down
	{Name: "anti-diagonal", dr: -1, dc: +1}, // down-left, then up-right
	{Name: "diagonal", dr: +1, dc: +1},      // up-left, then down-right
}

// status evaluates the board after a disc has been placed at (row, col).
// A win takes precedence over a draw.
func (b *Board) status(row, col int) Result {
	if b.Connected(row, col) {
		return Win
	}

	if len(b.LegalTargets()) == 0 {
		return Draw
	}

	return Unfinished
}

// Connected reports whether the disc at (row, col) is part of a line of at
// least Connect discs of its colour. Empty and out of range cells are
// never connected.
func (b *Board) Connected(row, col int) bool {
	if !b.inBounds(row, col) || b.cells[b.index(row, col)] == Empty {
		return false
	}

	for _, dir := range directions {
		if b.RunLength(row, col, dir) >= Connect {
			return true
		}
	}

	return false
}

// Directions returns the lines checked after every move.
func Directions() [4]Direction {
	return directions
}

// RunLength returns the length of the maximal run of cells which hold the
// same value as (row, col) along the given direction, anchor included.
// A Direction which does not step anywhere, like the zero Direction, only
// covers the anchor.
func (b *Board) RunLength(row, col int, dir Direction) int {
	if !b.inBounds(row, col) {
		return 0
	}

	if dir.dr == 0 && dir.dc == 0 {
		return 1
	}

	p := b.cells[b.index(row, col)]
	return b.scan(row-dir.dr, col-dir.dc, -dir.dr, -dir.dc, p) +
		b.scan(row, col, dir.dr, dir.dc, p)
}

// scan counts matching cells from (i, j) onwards in steps of (di, dj),
// stopping at the first mismatch or the edge of the board.
func (b *Board) scan(i, j, di, dj int, p Cell) int {
	c := 0
	for b.inBounds(i, j) && b.cells[b.index(i, j)] == p {
		c++
		i += di
		j += dj
	}

	return c
}
