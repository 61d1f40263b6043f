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

// Package perft counts the leaf nodes of the move tree of a position. The
// counts for known positions check that the board generates exactly the
// legal moves and stops at the end of the game.
package perft

import "laptudirm.com/x/connect4/pkg/board"

// Count returns the number of leaf nodes of the move tree rooted at the
// given board, depth plies deep, with side to move first. A move which
// wins or draws the game is a leaf whatever the remaining depth.
func Count(b *board.Board, side board.Cell, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	for col := 0; col < b.Width(); col++ {
		nodes += count(b, side, col, depth)
	}

	return nodes
}

// Divide returns the perft count below each column of the board. Full
// columns count zero.
func Divide(b *board.Board, side board.Cell, depth int) []uint64 {
	counts := make([]uint64, b.Width())
	if depth <= 0 {
		return counts
	}

	for col := range counts {
		counts[col] = count(b, side, col, depth)
	}

	return counts
}

func count(b *board.Board, side board.Cell, col, depth int) uint64 {
	row, ok := b.Target(col)
	if !ok {
		return 0
	}

	child := b.Clone()
	if result := child.Play(side, row, col); result.Terminal() || depth == 1 {
		return 1
	}

	return Count(child, side.Other(), depth-1)
}
