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

// Package board implements the rules of a two-player gravity-drop grid
// game in the Connect Four family. A Board owns the grid, validates moves
// against gravity and reports the outcome of every move it accepts.
//
// Cells are stored row-major with row 0 at the top of the board:
//
//	index(row, col) = row*width + col
//
// A Board is not safe for concurrent use; callers mutating it from more
// than one goroutine need to serialize calls to Play themselves.
package board

import "slices"

const (
	DefaultWidth  = 7 // columns of the classic board
	DefaultHeight = 6 // rows of the classic board

	// MaxSize is the largest number of rows or columns a board can have.
	MaxSize = 127

	// Connect is the length of the line of discs which wins the game.
	Connect = 4
)

// Board is the state of a single game. Its dimensions are fixed when it
// is created and every cell starts out Empty.
type Board struct {
	width, height int
	cells         []Cell

	sink Sink
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithSize sets the dimensions of the board. Dimensions which are not
// positive or are larger than MaxSize are ignored and the default is kept
// instead.
func WithSize(width, height int) Option {
	return func(b *Board) {
		if width > 0 && width <= MaxSize {
			b.width = width
		}

		if height > 0 && height <= MaxSize {
			b.height = height
		}
	}
}

// WithDiagnostics installs a Sink which is told about any panic raised
// while a move is being played.
func WithDiagnostics(sink Sink) Option {
	return func(b *Board) {
		b.sink = sink
	}
}

// New creates an empty board. Without options it is the classic 7x6 one.
func New(opts ...Option) *Board {
	b := &Board{
		width:  DefaultWidth,
		height: DefaultHeight,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.cells = make([]Cell, b.width*b.height)
	return b
}

// Width returns the number of columns of the board.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows of the board.
func (b *Board) Height() int {
	return b.height
}

// Cells returns a read-only view of the board's cells. The view shares
// storage with the board, so it reflects every move played after it was
// taken. It must not be used after the board has been discarded.
func (b *Board) Cells() View {
	return View{
		width:  b.width,
		height: b.height,
		cells:  b.cells,
	}
}

// Clone returns a deep copy of the board. The copy shares no storage with
// the original but keeps its diagnostic sink.
func (b *Board) Clone() *Board {
	clone := *b
	clone.cells = slices.Clone(b.cells)
	return &clone
}

// Filled returns the number of discs on the board.
func (b *Board) Filled() int {
	filled := 0
	for _, cell := range b.cells {
		if cell != Empty {
			filled++
		}
	}

	return filled
}

// index converts a row and column into an offset into cells. Callers must
// have checked the coordinates with inBounds.
func (b *Board) index(row, col int) int {
	return row*b.width + col
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Target returns the row of the legal drop target of the given column,
// which is its bottom-most Empty cell. ok is false if the column is full
// or does not exist.
func (b *Board) Target(col int) (row int, ok bool) {
	if col < 0 || col >= b.width {
		return -1, false
	}

	for row := b.height - 1; row >= 0; row-- {
		if b.cells[b.index(row, col)] == Empty {
			return row, true
		}
	}

	return -1, false
}

// LegalTargets returns the cell indexes of the legal drop targets of every
// column which is not yet full, ordered from left to right.
func (b *Board) LegalTargets() []int {
	targets := make([]int, 0, b.width)
	for col := 0; col < b.width; col++ {
		if row, ok := b.Target(col); ok {
			targets = append(targets, b.index(row, col))
		}
	}

	return targets
}

// Play puts a disc of the given player at (row, col) and returns the
// outcome of the move. The coordinates must name the legal drop target of
// the column: anything else, including out of range coordinates and cell
// values which are not a player's disc, is rejected with InvalidMove and
// leaves the board untouched.
//
// Play does not stop moves once the game has been won or drawn.
func (b *Board) Play(cell Cell, row, col int) Result {
	if b.sink != nil {
		defer b.report()
	}

	if !cell.IsPlayer() || !b.inBounds(row, col) {
		return InvalidMove
	}

	if target, ok := b.Target(col); !ok || target != row {
		return InvalidMove
	}

	b.cells[b.index(row, col)] = cell
	return b.status(row, col)
}

// Drop plays a disc into the given column, letting it fall to the legal
// drop target. It returns the row the disc landed on, or -1 if the move
// was rejected.
func (b *Board) Drop(cell Cell, col int) (int, Result) {
	row, ok := b.Target(col)
	if !ok {
		return -1, InvalidMove
	}

	result := b.Play(cell, row, col)
	if result == InvalidMove {
		return -1, result
	}

	return row, result
}

func (b *Board) String() string {
	return b.Position()
}
