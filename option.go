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

import "go.uber.org/zap"

type Option interface {
	apply(g *Game)
}

type funcOption struct {
	f func(*Game)
}

func (fdo *funcOption) apply(do *Game) {
	fdo.f(do)
}

func newOption(f func(*Game)) *funcOption {
	return &funcOption{
		f: f,
	}
}

func WithLogger(logger *zap.Logger) Option {
	return newOption(func(g *Game) {
		g.logger = logger
	})
}

// WithLevel hands the game the level controlling its logger. A script that
// enables DEBUG lowers it to debug.
func WithLevel(level zap.AtomicLevel) Option {
	return newOption(func(g *Game) {
		g.level = &level
	})
}

// WithConfiguration seeds the record before the script runs.
func WithConfiguration(cfg Configuration) Option {
	return newOption(func(g *Game) {
		g.config = cfg
	})
}

// WithMaxFrames stops Run after n rendered frames. Zero means no limit.
func WithMaxFrames(n int) Option {
	return newOption(func(g *Game) {
		g.maxFrames = n
	})
}
