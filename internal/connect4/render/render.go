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

// Package render draws boards for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/connect4/pkg/board"
	"laptudirm.com/x/connect4/pkg/game"
)

// Renderer draws a board view as a grid of discs, topmost row first, below
// a header naming the columns.
type Renderer struct {
	Color bool

	yellow, red, faint *color.Color
}

// New creates a renderer, colouring discs if colour is set.
func New(colour bool) *Renderer {
	r := &Renderer{
		Color: colour,

		yellow: color.New(color.FgYellow, color.Bold),
		red:    color.New(color.FgRed, color.Bold),
		faint:  color.New(color.Faint),
	}

	for _, c := range []*color.Color{r.yellow, r.red, r.faint} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Render writes the view to w.
func (r *Renderer) Render(w io.Writer, view board.View) error {
	names := make([]string, view.Width())
	size := 1
	for col := range names {
		names[col] = game.ColumnName(col)
		size = max(size, len(names[col]))
	}

	var out strings.Builder

	for _, name := range names {
		fmt.Fprintf(&out, " %*s", size, name)
	}
	out.WriteByte('\n')

	for row := 0; row < view.Height(); row++ {
		for col := 0; col < view.Width(); col++ {
			out.WriteByte(' ')
			out.WriteString(strings.Repeat(" ", size-1))
			out.WriteString(r.disc(view.Cell(row, col)))
		}
		out.WriteByte('\n')
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func (r *Renderer) disc(cell board.Cell) string {
	switch cell {
	case board.Yellow:
		return r.yellow.Sprint("Y")
	case board.Red:
		return r.red.Sprint("R")
	default:
		return r.faint.Sprint(".")
	}
}
