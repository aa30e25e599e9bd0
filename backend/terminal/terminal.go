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

// Package terminal renders a game into the terminal with Bubble Tea. The
// script's window keeps its pixel size and is scaled onto the cell grid.
package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	DefaultFPS = 30

	// Cells used when the terminal size cannot be probed.
	fallbackCols = 80
	fallbackRows = 24
)

var ErrNotInitialized = errors.New("terminal: backend not initialized")

type Backend struct {
	mu     sync.Mutex
	logger *zap.Logger
	fps    int
	input  io.Reader
	output *os.File

	start     time.Time
	lastFrame time.Time
	program   *tea.Program
	done      chan struct{}
	runErr    error
	quit      atomic.Bool

	width      int
	height     int
	fullscreen bool
	title      string
	canvas     *Canvas
}

type Option func(*Backend)

func WithLogger(logger *zap.Logger) Option {
	return func(b *Backend) {
		b.logger = logger
	}
}

// WithFPS caps how often frames are pushed to the terminal.
func WithFPS(fps int) Option {
	return func(b *Backend) {
		b.fps = fps
	}
}

func WithInput(r io.Reader) Option {
	return func(b *Backend) {
		b.input = r
	}
}

func WithOutput(f *os.File) Option {
	return func(b *Backend) {
		b.output = f
	}
}

func New(options ...Option) *Backend {
	b := &Backend{
		logger: zap.NewNop(),
		fps:    DefaultFPS,
		input:  os.Stdin,
		output: os.Stdout,
	}
	for _, option := range options {
		option(b)
	}
	b.logger = b.logger.With(zap.String("backend", "terminal"))
	return b
}

func (b *Backend) Init() error {
	b.start = time.Now()
	b.lastFrame = b.start
	cols, rows, err := term.GetSize(int(b.output.Fd()))
	if err != nil {
		b.logger.Debug("Terminal size unavailable", zap.Error(err))
		cols, rows = fallbackCols, fallbackRows
	}
	b.canvas = NewCanvas(cols, rows-1)
	return nil
}

func (b *Backend) CreateWindow(width, height int, fullscreen bool, title string) error {
	if b.canvas == nil {
		return ErrNotInitialized
	}
	b.mu.Lock()
	b.width, b.height = width, height
	b.fullscreen = fullscreen
	b.title = title
	b.mu.Unlock()

	m := model{
		keys:     defaultKeyMap(),
		title:    title,
		onQuit:   func() { b.quit.Store(true) },
		onResize: b.resize,
	}
	options := []tea.ProgramOption{
		tea.WithInput(b.input),
		tea.WithOutput(b.output),
		tea.WithoutSignalHandler(),
	}
	if fullscreen {
		options = append(options, tea.WithAltScreen())
	}
	b.program = tea.NewProgram(m, options...)
	b.done = make(chan struct{})
	go func() {
		defer close(b.done)
		if _, err := b.program.Run(); err != nil {
			b.runErr = err
		}
		b.quit.Store(true)
	}()
	b.logger.Debug("Window created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("fullscreen", fullscreen),
		zap.String("title", title),
	)
	return nil
}

func (b *Backend) resize(cols, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.canvas.Resize(cols, rows-1)
}

func (b *Backend) WindowSize() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.program == nil {
		return 0, 0
	}
	return b.width, b.height
}

func (b *Backend) Timestamp() float64 {
	return time.Since(b.start).Seconds()
}

func (b *Backend) Shutdown() error {
	if b.program == nil {
		return nil
	}
	b.program.Quit()
	<-b.done
	b.program = nil
	if errors.Is(b.runErr, tea.ErrProgramKilled) {
		return nil
	}
	return b.runErr
}

func (b *Backend) ProcessEvents() bool {
	return !b.quit.Load()
}

func (b *Backend) PreFrameUpdate(float64)  {}
func (b *Backend) PostFrameUpdate(float64) {}

func (b *Backend) PreFrameRender() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.canvas.Clear()
}

// PostFrameRender hands the canvas to the program and sleeps out the rest
// of the frame budget.
func (b *Backend) PostFrameRender() {
	b.mu.Lock()
	frame := b.canvas.String()
	b.mu.Unlock()
	if b.program != nil {
		b.program.Send(frameMsg(frame))
	}
	if b.fps > 0 {
		budget := time.Second / time.Duration(b.fps)
		if wait := budget - time.Since(b.lastFrame); wait > 0 {
			time.Sleep(wait)
		}
	}
	b.lastFrame = time.Now()
}

func (b *Backend) DrawCircle(x, y, radius int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.canvas == nil {
		return
	}
	b.canvas.FillCircle(x, y, radius, b.width, b.height)
}
