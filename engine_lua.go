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
	"errors"
	"strings"

	"github.com/deflinhec/gamescript/luaconv"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

func init() {
	Register(Kind{Name: "lua", Extensions: []string{".lua"}, New: NewLuaEngine})
}

var errEngineClosed = errors.New("engine closed")

type luaEngine struct {
	hostCapabilities
	vm *lua.LState
}

// NewLuaEngine boots a gopher-lua state with the base libraries, the engine
// table and a preloadable logger module.
func NewLuaEngine(sc *SharedContext, logger *zap.Logger) (ScriptingEngine, error) {
	e := &luaEngine{
		hostCapabilities: newHostCapabilities(sc, logger, "lua"),
		vm: lua.NewState(lua.Options{
			CallStackSize:       256,
			SkipOpenLibs:        true,
			IncludeGoStackTrace: false,
		}),
	}
	e.self = e
	stdlibs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.OsLibName, lua.OpenOs},
		{lua.CoroutineLibName, lua.OpenCoroutine},
	}
	loadlibs := make([]string, 0, len(stdlibs))
	for _, lib := range stdlibs {
		e.vm.Push(e.vm.NewFunction(lib.fn))
		e.vm.Push(lua.LString(lib.name))
		e.vm.Call(1, 0)
		if len(lib.name) > 0 {
			loadlibs = append(loadlibs, lib.name)
		}
	}
	e.vm.SetGlobal("print", e.vm.NewFunction(e.print))
	functions := map[string]lua.LGFunction{
		"init":            e.init,
		"getScreenWidth":  e.getScreenWidth,
		"getScreenHeight": e.getScreenHeight,
		"drawCircle":      e.drawCircle,
	}
	e.vm.SetGlobal("engine", e.vm.SetFuncs(e.vm.CreateTable(0, len(functions)), functions))
	e.vm.PreloadModule("logger", e.openLogger)
	e.logger.Debug("Runtime information",
		zap.Strings("load", loadlibs),
		zap.Strings("preload", []string{"logger"}),
	)
	return e, nil
}

func (e *luaEngine) Load(path string) error {
	if e.vm == nil {
		return &ScriptLoadError{Path: path, Err: errEngineClosed}
	}
	if err := e.vm.DoFile(path); err != nil {
		e.vm.Close()
		e.vm = nil
		return e.loadError(path, err)
	}
	return nil
}

func (e *luaEngine) RunCreate() {
	e.call(e.sc.Config.CreateFunc)
}

func (e *luaEngine) RunDestroy() {
	e.call(e.sc.Config.DestroyFunc)
}

func (e *luaEngine) RunUpdate(deltaTime float64) {
	e.call(e.sc.Config.UpdateFunc, lua.LNumber(deltaTime))
}

func (e *luaEngine) RunRender() {
	e.call(e.sc.Config.RenderFunc)
}

func (e *luaEngine) Close() error {
	if e.vm != nil {
		e.vm.Close()
		e.vm = nil
	}
	return nil
}

func (e *luaEngine) call(name string, args ...lua.LValue) {
	if e.vm == nil || name == "" {
		return
	}
	fn, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return
	}
	err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		e.reportCallback(name, err)
	}
}

func (e *luaEngine) init(l *lua.LState) int {
	lv := l.Get(1)
	if lv == lua.LNil {
		return 0
	}
	table, ok := lv.(*lua.LTable)
	if !ok {
		l.RaiseError("%s", e.raise(&ConfigParseError{Got: lv.Type().String()}).Error())
		return 0
	}
	if err := e.initFrom(luaconv.Table{LTable: table}); err != nil {
		l.RaiseError("%s", e.raise(err).Error())
	}
	return 0
}

func (e *luaEngine) getScreenWidth(l *lua.LState) int {
	l.Push(lua.LNumber(e.screenWidth()))
	return 1
}

func (e *luaEngine) getScreenHeight(l *lua.LState) int {
	l.Push(lua.LNumber(e.screenHeight()))
	return 1
}

func (e *luaEngine) drawCircle(l *lua.LState) int {
	e.drawFrom(luaconv.Args(l))
	return 0
}

func (e *luaEngine) print(l *lua.LState) int {
	top := l.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, l.ToStringMeta(l.Get(i)).String())
	}
	e.printer()(strings.Join(parts, "\t"))
	return 0
}

// openLogger backs require("logger"): logger.info(msg, fields) and friends
// write structured entries through the engine logger.
func (e *luaEngine) openLogger(l *lua.LState) int {
	logger := e.logger.With(zap.String("source", "script"))
	level := func(write func(string, ...zap.Field)) lua.LGFunction {
		return func(l *lua.LState) int {
			msg := l.CheckString(1)
			switch value := l.Get(2).(type) {
			case *lua.LTable:
				write(msg, luaconv.Fields(value)...)
			case lua.LString:
				write(msg, zap.String("content", string(value)))
			default:
				write(msg)
			}
			return 0
		}
	}
	functions := map[string]lua.LGFunction{
		"debug": level(logger.Debug),
		"info":  level(logger.Info),
		"warn":  level(logger.Warn),
		"error": level(logger.Error),
	}
	l.Push(l.SetFuncs(l.CreateTable(0, len(functions)), functions))
	return 1
}
