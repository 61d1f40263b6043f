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

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrPosition is returned for position strings which can't be parsed.
	ErrPosition = errors.New("board: malformed position")

	// ErrFloating is returned for positions where a disc rests above an
	// Empty cell, which no sequence of moves can produce.
	ErrFloating = errors.New("board: floating disc")
)

// ParsePosition creates a board from a position string. A position lists
// the rows from top to bottom separated by '/'. Inside a row 'y' stands
// for a Yellow disc, 'r' for a Red one and a number for that many Empty
// cells. The classic board with a single Yellow disc in the bottom-left
// corner is "7/7/7/7/7/y6".
//
// The dimensions of the board are taken from the position itself and
// override any size given in opts.
func ParsePosition(position string, opts ...Option) (*Board, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, fmt.Errorf("%w: empty position", ErrPosition)
	}

	ranks := strings.Split(position, "/")
	if len(ranks) > MaxSize {
		return nil, fmt.Errorf("%w: %d ranks, at most %d allowed", ErrPosition, len(ranks), MaxSize)
	}

	var rows [][]Cell
	for i, rank := range ranks {
		row, err := parseRank(rank)
		if err != nil {
			return nil, fmt.Errorf("%w: rank %d: %v", ErrPosition, i+1, err)
		}

		if len(row) == 0 {
			return nil, fmt.Errorf("%w: rank %d is empty", ErrPosition, i+1)
		}

		if i > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf(
				"%w: rank %d has %d cells, want %d",
				ErrPosition, i+1, len(row), len(rows[0]),
			)
		}

		rows = append(rows, row)
	}

	b := New(append(slices.Clip(opts), WithSize(len(rows[0]), len(rows)))...)
	for row, cells := range rows {
		copy(b.cells[b.index(row, 0):], cells)
	}

	// Every disc has to be resting on another disc or on the bottom edge.
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height-1; row++ {
			if b.cells[b.index(row, col)] != Empty && b.cells[b.index(row+1, col)] == Empty {
				return nil, fmt.Errorf("%w at row %d column %d", ErrFloating, row, col)
			}
		}
	}

	return b, nil
}

func parseRank(rank string) ([]Cell, error) {
	var row []Cell
	for i := 0; i < len(rank); i++ {
		switch c := rank[i]; {
		case c == 'y' || c == 'Y':
			row = append(row, Yellow)
		case c == 'r' || c == 'R':
			row = append(row, Red)
		case c >= '1' && c <= '9':
			// Runs of Empty cells may take more than one digit.
			j := i + 1
			for j < len(rank) && rank[j] >= '0' && rank[j] <= '9' {
				j++
			}

			n, err := strconv.Atoi(rank[i:j])
			if err != nil || n > MaxSize-len(row) {
				return nil, fmt.Errorf("rank longer than %d cells", MaxSize)
			}

			for ; n > 0; n-- {
				row = append(row, Empty)
			}

			i = j - 1
		default:
			return nil, fmt.Errorf("unexpected %q", c)
		}

		if len(row) > MaxSize {
			return nil, fmt.Errorf("rank longer than %d cells", MaxSize)
		}
	}

	return row, nil
}

// Position returns the position string of the board, as accepted by
// ParsePosition.
func (b *Board) Position() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}

		gaps := 0
		for col := 0; col < b.width; col++ {
			cell := b.cells[b.index(row, col)]
			if cell == Empty {
				gaps++
				continue
			}

			if gaps > 0 {
				sb.WriteString(strconv.Itoa(gaps))
				gaps = 0
			}

			sb.WriteByte(cell.Symbol())
		}

		if gaps > 0 {
			sb.WriteString(strconv.Itoa(gaps))
		}
	}

	return sb.String()
}
