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
	"strings"

	"github.com/deflinhec/gamescript/variant"
	"go.uber.org/zap"
)

// ScriptingEngine is the contract every interpreter adapter fulfils. The
// host calls it from a single goroutine.
type ScriptingEngine interface {
	// Load parses and runs the script's top-level code. On failure the
	// interpreter is released and a *ScriptLoadError is returned.
	Load(path string) error
	// Init replaces the shared configuration by value.
	Init(cfg Configuration)
	ScreenWidth() int
	ScreenHeight() int
	DrawCircle(x, y, radius int)

	// Lifecycle calls resolve the function name from the current
	// configuration. A missing or non-callable name is a no-op and a
	// failing callback is logged, never returned.
	RunCreate()
	RunDestroy()
	RunUpdate(deltaTime float64)
	RunRender()

	// Close releases the interpreter. Calling it again is a no-op.
	Close() error
}

// hostCapabilities is embedded by every adapter. It backs the engine
// namespace exposed to scripts and forwards to the shared context.
type hostCapabilities struct {
	sc     *SharedContext
	self   ScriptingEngine
	logger *zap.Logger
	raised error
}

func newHostCapabilities(sc *SharedContext, logger *zap.Logger, kind string) hostCapabilities {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sc == nil {
		sc = NewSharedContext(nil)
	}
	return hostCapabilities{
		sc:     sc,
		logger: logger.With(zap.String("engine", kind)),
	}
}

func (h *hostCapabilities) Init(cfg Configuration) {
	h.sc.Config.Copy(cfg)
}

func (h *hostCapabilities) ScreenWidth() int {
	w, _ := h.sc.windowSize()
	return w
}

func (h *hostCapabilities) ScreenHeight() int {
	_, hh := h.sc.windowSize()
	return hh
}

func (h *hostCapabilities) DrawCircle(x, y, radius int) {
	if h.sc.Backend == nil {
		return
	}
	h.sc.Backend.DrawCircle(x, y, radius)
}

func (h *hostCapabilities) scripting() ScriptingEngine {
	if h.sc.Scripting != nil {
		return h.sc.Scripting
	}
	return h.self
}

// initFrom marshals a script table on top of the current configuration and
// commits it only when every field parsed.
func (h *hostCapabilities) initFrom(table variant.Table) error {
	cfg := *h.sc.Config
	if err := ParseConfiguration(table, &cfg); err != nil {
		return err
	}
	h.scripting().Init(cfg)
	return nil
}

// drawFrom reads x, y and radius leniently: too few arguments draw at the
// origin with radius zero and non-numeric values read as zero.
func (h *hostCapabilities) drawFrom(args []variant.Variant) {
	var xyr [3]int
	if len(args) >= len(xyr) {
		for i := range xyr {
			xyr[i] = args[i].IntOr(0)
		}
	}
	h.scripting().DrawCircle(xyr[0], xyr[1], xyr[2])
}

func (h *hostCapabilities) screenWidth() int {
	return h.scripting().ScreenWidth()
}

func (h *hostCapabilities) screenHeight() int {
	return h.scripting().ScreenHeight()
}

// raise records a host error on its way into the script, so the failure
// that later surfaces from the interpreter still matches errors.As.
func (h *hostCapabilities) raise(err error) error {
	h.raised = err
	return err
}

func (h *hostCapabilities) surfaced(err error) error {
	raised := h.raised
	h.raised = nil
	if raised == nil || !strings.Contains(err.Error(), raised.Error()) {
		return err
	}
	return &scriptError{msg: err.Error(), cause: raised}
}

func (h *hostCapabilities) loadError(path string, err error) error {
	return &ScriptLoadError{Path: path, Err: h.surfaced(err)}
}

func (h *hostCapabilities) reportCallback(function string, err error) {
	h.logger.Error("Script callback failed",
		zap.Error(&ScriptRuntimeError{Function: function, Err: h.surfaced(err)}),
	)
}

func (h *hostCapabilities) printer() func(msg string) {
	logger := h.logger.WithOptions(zap.AddCallerSkip(1))
	return func(msg string) {
		logger.Info(msg, zap.String("source", "script"))
	}
}
