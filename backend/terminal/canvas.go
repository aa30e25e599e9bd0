// Copyright 2023 Deflinhec
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	pixelOn  = '█'
	pixelOff = ' '
)

// Canvas is a grid of terminal cells onto which a window of pixels is
// scaled. Each cell is either lit or blank.
type Canvas struct {
	cols  int
	rows  int
	cells [][]bool
	style lipgloss.Style
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{style: lipgloss.NewStyle().Foreground(lipgloss.Color("15"))}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Cols() int {
	return c.cols
}

func (c *Canvas) Rows() int {
	return c.rows
}

// Resize reallocates the grid and clears it.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.cells = make([][]bool, rows)
	for y := range c.cells {
		c.cells[y] = make([]bool, cols)
	}
}

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = false
		}
	}
}

// Set lights a cell. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(col, row int) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row][col] = true
}

func (c *Canvas) Get(col, row int) bool {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return false
	}
	return c.cells[row][col]
}

// FillCircle lights every cell whose centre, mapped back into a window of
// width by height pixels, lies inside the circle. The cell holding the
// centre is always lit so small circles stay visible.
func (c *Canvas) FillCircle(x, y, radius, width, height int) {
	if c.cols == 0 || c.rows == 0 || width <= 0 || height <= 0 || radius < 0 {
		return
	}
	sx := float64(width) / float64(c.cols)
	sy := float64(height) / float64(c.rows)
	r2 := float64(radius) * float64(radius)

	minCol, maxCol, ok := cellSpan(float64(x), float64(radius), sx, c.cols)
	if !ok {
		return
	}
	minRow, maxRow, ok := cellSpan(float64(y), float64(radius), sy, c.rows)
	if !ok {
		return
	}
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			dx := (float64(col)+0.5)*sx - float64(x)
			dy := (float64(row)+0.5)*sy - float64(y)
			if dx*dx+dy*dy <= r2 {
				c.Set(col, row)
			}
		}
	}
	if x >= 0 && y >= 0 {
		c.Set(int(float64(x)/sx), int(float64(y)/sy))
	}
}

// cellSpan maps the pixel interval [centre-radius, centre+radius] onto cell
// indices, clipped to [0, n).
func cellSpan(centre, radius, scale float64, n int) (int, int, bool) {
	lo := math.Max((centre-radius)/scale, 0)
	hi := math.Min((centre+radius)/scale, float64(n-1))
	if lo > hi {
		return 0, 0, false
	}
	return int(lo), int(hi), true
}

// String renders the grid, styling runs of lit cells together.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows*2 + c.rows)
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.cols {
			lit := c.cells[y][x]
			start := x
			for x < c.cols && c.cells[y][x] == lit {
				x++
			}
			if lit {
				sb.WriteString(c.style.Render(strings.Repeat(string(pixelOn), x-start)))
			} else {
				sb.WriteString(strings.Repeat(string(pixelOff), x-start))
			}
		}
	}
	return sb.String()
}
