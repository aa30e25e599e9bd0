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

package gamescript

import (
	"context"
	"fmt"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxDeltaTime skips the update step after a stall, such as a window drag.
const maxDeltaTime = 1.0

// Game drives a script through the frame loop of a Backend.
type Game struct {
	logger    *zap.Logger
	level     *zap.AtomicLevel
	config    Configuration
	maxFrames int

	ctx     *SharedContext
	backend Backend
	engine  ScriptingEngine
	frames  int
	stopped atomic.Bool
	closed  atomic.Bool
}

// NewGame loads the script at path and opens a window sized from the
// configuration the script left behind.
func NewGame(path string, backend Backend, options ...Option) (*Game, error) {
	g := &Game{
		logger:  zap.NewNop(),
		config:  NewConfiguration(),
		backend: backend,
	}
	for _, option := range options {
		option.apply(g)
	}
	g.ctx = NewSharedContext(&g.config)

	engine, err := NewEngine(path, g.ctx, g.logger)
	if err != nil {
		return nil, err
	}
	g.engine = engine
	if err := engine.Load(path); err != nil {
		return nil, multierr.Append(err, engine.Close())
	}
	if g.config.DebugMode {
		if g.level != nil && g.level.Enabled(zapcore.InfoLevel) {
			g.level.SetLevel(zapcore.DebugLevel)
		}
		g.logger.Debug("Configuration", g.config.Fields()...)
	}

	if err := backend.Init(); err != nil {
		return nil, multierr.Append(fmt.Errorf("backend init: %w", err), engine.Close())
	}
	g.ctx.Backend = backend
	err = backend.CreateWindow(g.config.ScreenWidth, g.config.ScreenHeight,
		g.config.UseFullscreen, g.config.WindowTitle)
	if err != nil {
		return nil, multierr.Combine(
			fmt.Errorf("create window: %w", err),
			backend.Shutdown(),
			engine.Close(),
		)
	}
	return g, nil
}

// Configuration returns the record as last written by the script.
func (g *Game) Configuration() Configuration {
	return g.config
}

func (g *Game) Engine() ScriptingEngine {
	return g.engine
}

// Frames counts the frames rendered so far.
func (g *Game) Frames() int {
	return g.frames
}

// Run calls create once and then steps frames until the backend reports a
// quit, Stop is called, ctx is done or the frame limit is reached.
func (g *Game) Run(ctx context.Context) error {
	g.engine.RunCreate()
	last := g.backend.Timestamp()
	for !g.stopped.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !g.backend.ProcessEvents() {
			break
		}
		now := g.backend.Timestamp()
		dt := now - last
		last = now
		if dt < maxDeltaTime {
			g.backend.PreFrameUpdate(dt)
			g.engine.RunUpdate(dt)
			g.backend.PostFrameUpdate(dt)
		}
		g.backend.PreFrameRender()
		g.engine.RunRender()
		g.backend.PostFrameRender()
		g.frames++
		if g.config.DebugMode {
			g.logger.Debug("Frame", zap.Int("frame", g.frames), zap.Float64("dt", dt))
		}
		if g.maxFrames > 0 && g.frames >= g.maxFrames {
			break
		}
	}
	return nil
}

// Stop makes Run return after the current frame. Safe from any goroutine.
func (g *Game) Stop() {
	g.stopped.Store(true)
}

// Close runs destroy, shuts the backend down and releases the interpreter.
func (g *Game) Close() error {
	if !g.closed.CompareAndSwap(false, true) {
		return nil
	}
	g.engine.RunDestroy()
	err := g.backend.Shutdown()
	g.ctx.Backend = nil
	return multierr.Append(err, g.engine.Close())
}
