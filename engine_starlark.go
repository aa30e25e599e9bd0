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
	"github.com/deflinhec/gamescript/starconv"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
	"go.uber.org/zap"
)

func init() {
	Register(Kind{Name: "python", Extensions: []string{".py", ".star"}, New: NewStarlarkEngine})
}

// fileOptions enables the Python constructs game scripts rely on: top-level
// loops, while, recursion and rebinding globals at module scope.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

type starlarkEngine struct {
	hostCapabilities
	thread      *starlark.Thread
	predeclared starlark.StringDict
	globals     starlark.StringDict
}

// NewStarlarkEngine runs Python-dialect scripts on go.starlark.net. The
// engine module is predeclared; print goes to the engine logger.
func NewStarlarkEngine(sc *SharedContext, logger *zap.Logger) (ScriptingEngine, error) {
	e := &starlarkEngine{
		hostCapabilities: newHostCapabilities(sc, logger, "python"),
	}
	e.self = e
	logPrint := e.printer()
	e.thread = &starlark.Thread{
		Name: "gamescript",
		Print: func(_ *starlark.Thread, msg string) {
			logPrint(msg)
		},
	}
	e.predeclared = starlark.StringDict{
		"engine": &starlarkstruct.Module{
			Name: "engine",
			Members: starlark.StringDict{
				"init":            starlark.NewBuiltin("init", e.init),
				"getScreenWidth":  starlark.NewBuiltin("getScreenWidth", e.getScreenWidth),
				"getScreenHeight": starlark.NewBuiltin("getScreenHeight", e.getScreenHeight),
				"drawCircle":      starlark.NewBuiltin("drawCircle", e.drawCircle),
			},
		},
	}
	return e, nil
}

func (e *starlarkEngine) Load(path string) error {
	if e.thread == nil {
		return &ScriptLoadError{Path: path, Err: errEngineClosed}
	}
	_, prog, err := starlark.SourceProgramOptions(fileOptions, path, nil, e.predeclared.Has)
	if err == nil {
		e.globals, err = prog.Init(e.thread, e.predeclared)
	}
	if err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			e.logger.Debug("Script backtrace", zap.String("backtrace", evalErr.Backtrace()))
		}
		e.release()
		return e.loadError(path, err)
	}
	return nil
}

func (e *starlarkEngine) RunCreate() {
	e.call(e.sc.Config.CreateFunc)
}

func (e *starlarkEngine) RunDestroy() {
	e.call(e.sc.Config.DestroyFunc)
}

func (e *starlarkEngine) RunUpdate(deltaTime float64) {
	e.call(e.sc.Config.UpdateFunc, starlark.Float(deltaTime))
}

func (e *starlarkEngine) RunRender() {
	e.call(e.sc.Config.RenderFunc)
}

func (e *starlarkEngine) Close() error {
	e.release()
	return nil
}

func (e *starlarkEngine) release() {
	e.thread = nil
	e.globals = nil
}

func (e *starlarkEngine) call(name string, args ...starlark.Value) {
	if e.thread == nil || name == "" {
		return
	}
	fn, ok := e.globals[name].(starlark.Callable)
	if !ok {
		return
	}
	if _, err := starlark.Call(e.thread, fn, starlark.Tuple(args), nil); err != nil {
		e.reportCallback(name, err)
	}
}

func (e *starlarkEngine) init(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, _ []starlark.Tuple) (starlark.Value, error) {
	if len(args) == 0 || args[0] == starlark.None {
		return starlark.None, nil
	}
	mapping, ok := args[0].(starlark.Mapping)
	if !ok {
		return nil, e.raise(&ConfigParseError{Got: args[0].Type()})
	}
	if err := e.initFrom(starconv.Table{Mapping: mapping}); err != nil {
		return nil, e.raise(err)
	}
	return starlark.None, nil
}

func (e *starlarkEngine) getScreenWidth(_ *starlark.Thread, _ *starlark.Builtin, _ starlark.Tuple, _ []starlark.Tuple) (starlark.Value, error) {
	return starlark.MakeInt(e.screenWidth()), nil
}

func (e *starlarkEngine) getScreenHeight(_ *starlark.Thread, _ *starlark.Builtin, _ starlark.Tuple, _ []starlark.Tuple) (starlark.Value, error) {
	return starlark.MakeInt(e.screenHeight()), nil
}

func (e *starlarkEngine) drawCircle(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, _ []starlark.Tuple) (starlark.Value, error) {
	e.drawFrom(starconv.Args(args))
	return starlark.None, nil
}
