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
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func litCells(c *Canvas) int {
	n := 0
	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Cols(); col++ {
			if c.Get(col, row) {
				n++
			}
		}
	}
	return n
}

func TestCanvasSetBounds(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 3)
	assert.Zero(t, litCells(c))

	c.Set(3, 2)
	assert.True(t, c.Get(3, 2))
	c.Clear()
	assert.False(t, c.Get(3, 2))
}

func TestCanvasFillCircleScalesToCells(t *testing.T) {
	// 10x10 cells over a 100x100 window: one cell per 10 pixels.
	c := NewCanvas(10, 10)
	c.FillCircle(50, 50, 20, 100, 100)

	assert.True(t, c.Get(5, 5))
	assert.True(t, c.Get(4, 4))
	assert.True(t, c.Get(3, 5))
	assert.False(t, c.Get(0, 0))
	assert.False(t, c.Get(7, 7))
	assert.False(t, c.Get(5, 8))
	// Symmetric around the centre line between cells 4 and 5.
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			assert.Equal(t, c.Get(col, row), c.Get(9-col, 9-row), "cell %d,%d", col, row)
		}
	}
}

func TestCanvasSmallCircleStaysVisible(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(55, 55, 1, 1000, 1000)
	assert.Equal(t, 1, litCells(c))
	assert.True(t, c.Get(0, 0))
}

func TestCanvasFillCircleClips(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(0, 0, 30, 100, 100)
	assert.True(t, c.Get(0, 0))
	assert.True(t, c.Get(1, 1))
	assert.False(t, c.Get(9, 9))

	c.Clear()
	c.FillCircle(50, 50, 10, 0, 0)
	assert.Zero(t, litCells(c))
}

func TestCanvasFillCircleHugeRadius(t *testing.T) {
	c := NewCanvas(80, 23)
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.FillCircle(320, 240, 2000000000, 640, 480)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("FillCircle did not return for a radius far beyond the canvas")
	}
	assert.Equal(t, 80*23, litCells(c))
}

func TestCanvasFillCircleOffCanvas(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(-500, 50, 20, 100, 100)
	c.FillCircle(50, 5000, 20, 100, 100)
	assert.Zero(t, litCells(c))
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(1, 0)
	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], string(pixelOn))
	assert.Equal(t, "   ", lines[1])
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		quit := false
		m := model{keys: defaultKeyMap(), onQuit: func() { quit = true }}
		_, cmd := m.Update(msg)
		assert.True(t, quit, msg.String())
		assert.NotNil(t, cmd)
	}

	m := model{keys: defaultKeyMap(), onQuit: func() { t.Fatal("unexpected quit") }}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestModelFramesAndResize(t *testing.T) {
	var cols, rows int
	m := model{
		keys:     defaultKeyMap(),
		title:    "Demo",
		onResize: func(c, r int) { cols, rows = c, r },
	}
	next, _ := m.Update(frameMsg("frame"))
	assert.Contains(t, next.View(), "Demo")
	assert.True(t, strings.HasSuffix(next.View(), "\nframe"))

	next.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, cols)
	assert.Equal(t, 40, rows)
}
