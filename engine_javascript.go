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
	"os"
	"strings"

	"github.com/deflinhec/gamescript/jsconv"
	"github.com/dop251/goja"
	"go.uber.org/zap"
)

func init() {
	Register(Kind{Name: "javascript", Extensions: []string{".js"}, New: NewJSEngine})
}

type jsEngine struct {
	hostCapabilities
	vm *goja.Runtime
}

// NewJSEngine runs scripts on goja. Lifecycle functions must be global:
// function declarations or var bindings at the top level.
func NewJSEngine(sc *SharedContext, logger *zap.Logger) (ScriptingEngine, error) {
	e := &jsEngine{
		hostCapabilities: newHostCapabilities(sc, logger, "javascript"),
		vm:               goja.New(),
	}
	e.self = e
	engine := e.vm.NewObject()
	functions := map[string]func(goja.FunctionCall) goja.Value{
		"init":            e.init,
		"getScreenWidth":  e.getScreenWidth,
		"getScreenHeight": e.getScreenHeight,
		"drawCircle":      e.drawCircle,
	}
	for name, fn := range functions {
		if err := engine.Set(name, fn); err != nil {
			return nil, err
		}
	}
	console := e.vm.NewObject()
	if err := console.Set("log", e.log); err != nil {
		return nil, err
	}
	if err := e.vm.Set("engine", engine); err != nil {
		return nil, err
	}
	if err := e.vm.Set("console", console); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *jsEngine) Load(path string) error {
	if e.vm == nil {
		return &ScriptLoadError{Path: path, Err: errEngineClosed}
	}
	src, err := os.ReadFile(path)
	if err != nil {
		e.vm = nil
		return &ScriptLoadError{Path: path, Err: err}
	}
	prog, err := goja.Compile(path, string(src), false)
	if err == nil {
		_, err = e.vm.RunProgram(prog)
	}
	if err != nil {
		e.vm = nil
		return e.loadError(path, err)
	}
	return nil
}

func (e *jsEngine) RunCreate() {
	e.call(e.sc.Config.CreateFunc)
}

func (e *jsEngine) RunDestroy() {
	e.call(e.sc.Config.DestroyFunc)
}

func (e *jsEngine) RunUpdate(deltaTime float64) {
	if e.vm == nil {
		return
	}
	e.call(e.sc.Config.UpdateFunc, e.vm.ToValue(deltaTime))
}

func (e *jsEngine) RunRender() {
	e.call(e.sc.Config.RenderFunc)
}

func (e *jsEngine) Close() error {
	e.vm = nil
	return nil
}

func (e *jsEngine) call(name string, args ...goja.Value) {
	if e.vm == nil || name == "" {
		return
	}
	fn, ok := goja.AssertFunction(e.vm.Get(name))
	if !ok {
		return
	}
	if _, err := fn(goja.Undefined(), args...); err != nil {
		e.reportCallback(name, err)
	}
}

func (e *jsEngine) init(call goja.FunctionCall) goja.Value {
	arg := call.Argument(0)
	if goja.IsUndefined(arg) || goja.IsNull(arg) {
		return goja.Undefined()
	}
	obj, ok := arg.(*goja.Object)
	if ok {
		_, callable := goja.AssertFunction(arg)
		ok = !callable && obj.ClassName() == "Object"
	}
	if !ok {
		panic(e.vm.NewGoError(e.raise(&ConfigParseError{Got: jsconv.TypeOf(arg)})))
	}
	if err := e.initFrom(jsconv.Table{Object: obj}); err != nil {
		panic(e.vm.NewGoError(e.raise(err)))
	}
	return goja.Undefined()
}

func (e *jsEngine) getScreenWidth(goja.FunctionCall) goja.Value {
	return e.vm.ToValue(e.screenWidth())
}

func (e *jsEngine) getScreenHeight(goja.FunctionCall) goja.Value {
	return e.vm.ToValue(e.screenHeight())
}

func (e *jsEngine) drawCircle(call goja.FunctionCall) goja.Value {
	e.drawFrom(jsconv.Args(call))
	return goja.Undefined()
}

func (e *jsEngine) log(call goja.FunctionCall) goja.Value {
	parts := make([]string, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		parts = append(parts, arg.String())
	}
	e.printer()(strings.Join(parts, " "))
	return goja.Undefined()
}
