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

// View is a read-only window onto the cells of a Board, in the Board's
// row-major order. It does not copy: a View taken before a move sees the
// disc placed by that move. A View is valid for as long as the Board it
// was taken from.
type View struct {
	width, height int
	cells         []Cell
}

// Len returns the number of cells in the view, width*height.
func (view View) Len() int {
	return len(view.cells)
}

func (view View) Width() int {
	return view.width
}

func (view View) Height() int {
	return view.height
}

// Index returns the offset of (row, col) in the view.
func (view View) Index(row, col int) int {
	return row*view.width + col
}

// At returns the cell at offset i. It panics if i is out of range.
func (view View) At(i int) Cell {
	return view.cells[i]
}

// Cell returns the cell at (row, col). It panics if the coordinates are
// out of range.
func (view View) Cell(row, col int) Cell {
	if row < 0 || row >= view.height || col < 0 || col >= view.width {
		panic("board: view coordinates out of range")
	}

	return view.cells[view.Index(row, col)]
}

// AppendTo appends a copy of the cells to dst and returns the result.
func (view View) AppendTo(dst []Cell) []Cell {
	return append(dst, view.cells...)
}

// String flattens the view into one digit per cell ('0' Empty, '1'
// Yellow, '2' Red), row after row.
func (view View) String() string {
	out := make([]byte, len(view.cells))
	for i, cell := range view.cells {
		out[i] = byte('0' + cell)
	}

	return string(out)
}
