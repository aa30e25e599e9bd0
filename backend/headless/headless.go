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

// Package headless is a backend without output. It records the circles
// drawn each frame and runs on a virtual clock, which makes it suitable for
// tests and batch runs.
package headless

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultStep is one frame at 60 Hz.
const DefaultStep = 1.0 / 60

var ErrNotInitialized = errors.New("headless: backend not initialized")

type Circle struct {
	X, Y, Radius int
}

type Backend struct {
	sync.Mutex
	logger  *zap.Logger
	session string
	step    float64
	limit   int

	initialized bool
	window      bool
	width       int
	height      int
	fullscreen  bool
	title       string

	clock   float64
	frames  [][]Circle
	current []Circle
	quit    bool
}

type Option func(*Backend)

func WithLogger(logger *zap.Logger) Option {
	return func(b *Backend) {
		b.logger = logger
	}
}

// WithStep sets how far the virtual clock advances per rendered frame.
func WithStep(seconds float64) Option {
	return func(b *Backend) {
		b.step = seconds
	}
}

// WithFrameLimit makes ProcessEvents report a quit after n frames.
func WithFrameLimit(n int) Option {
	return func(b *Backend) {
		b.limit = n
	}
}

func New(options ...Option) *Backend {
	b := &Backend{
		logger:  zap.NewNop(),
		session: uuid.NewString(),
		step:    DefaultStep,
	}
	for _, option := range options {
		option(b)
	}
	b.logger = b.logger.With(zap.String("backend", "headless"), zap.String("session", b.session))
	return b
}

func (b *Backend) Init() error {
	b.Lock()
	defer b.Unlock()
	b.initialized = true
	return nil
}

func (b *Backend) CreateWindow(width, height int, fullscreen bool, title string) error {
	b.Lock()
	defer b.Unlock()
	if !b.initialized {
		return ErrNotInitialized
	}
	b.window = true
	b.width, b.height = width, height
	b.fullscreen = fullscreen
	b.title = title
	b.logger.Debug("Window created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("fullscreen", fullscreen),
		zap.String("title", title),
	)
	return nil
}

func (b *Backend) WindowSize() (int, int) {
	b.Lock()
	defer b.Unlock()
	if !b.window {
		return 0, 0
	}
	return b.width, b.height
}

func (b *Backend) Title() string {
	b.Lock()
	defer b.Unlock()
	return b.title
}

func (b *Backend) Fullscreen() bool {
	b.Lock()
	defer b.Unlock()
	return b.fullscreen
}

func (b *Backend) Timestamp() float64 {
	b.Lock()
	defer b.Unlock()
	return b.clock
}

func (b *Backend) Shutdown() error {
	b.Lock()
	defer b.Unlock()
	b.window = false
	b.initialized = false
	b.logger.Debug("Shutdown", zap.Int("frames", len(b.frames)))
	return nil
}

// Quit makes the next ProcessEvents return false.
func (b *Backend) Quit() {
	b.Lock()
	defer b.Unlock()
	b.quit = true
}

func (b *Backend) ProcessEvents() bool {
	b.Lock()
	defer b.Unlock()
	if b.limit > 0 && len(b.frames) >= b.limit {
		return false
	}
	return !b.quit
}

func (b *Backend) PreFrameUpdate(float64)  {}
func (b *Backend) PostFrameUpdate(float64) {}

func (b *Backend) PreFrameRender() {
	b.Lock()
	defer b.Unlock()
	b.current = nil
}

func (b *Backend) PostFrameRender() {
	b.Lock()
	defer b.Unlock()
	b.frames = append(b.frames, b.current)
	b.current = nil
	b.clock += b.step
}

// DrawCircle records a circle in the frame being rendered. Draws outside
// PreFrameRender/PostFrameRender land in the next frame.
func (b *Backend) DrawCircle(x, y, radius int) {
	b.Lock()
	defer b.Unlock()
	b.current = append(b.current, Circle{X: x, Y: y, Radius: radius})
}

// Frames returns a copy of every rendered frame.
func (b *Backend) Frames() [][]Circle {
	b.Lock()
	defer b.Unlock()
	frames := make([][]Circle, len(b.frames))
	for i, f := range b.frames {
		frames[i] = append([]Circle(nil), f...)
	}
	return frames
}

// Pending returns circles drawn since the last rendered frame.
func (b *Backend) Pending() []Circle {
	b.Lock()
	defer b.Unlock()
	return append([]Circle(nil), b.current...)
}
