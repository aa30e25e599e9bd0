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

	"github.com/deflinhec/gamescript/lispconv"
	"github.com/luthersystems/elps/elpsutil"
	"github.com/luthersystems/elps/lisp"
	"github.com/luthersystems/elps/lisp/lisplib"
	"github.com/luthersystems/elps/parser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapio"
)

func init() {
	Register(Kind{Name: "lisp", Extensions: []string{".lisp", ".lsp"}, New: NewLispEngine})
}

type lispEngine struct {
	hostCapabilities
	env    *lisp.LEnv
	stderr *zapio.Writer
}

// NewLispEngine boots an ELPS environment with the standard library and an
// engine package, so scripts call (engine:init ...) and friends.
// debug-print output is written to the engine logger.
func NewLispEngine(sc *SharedContext, logger *zap.Logger) (ScriptingEngine, error) {
	e := &lispEngine{
		hostCapabilities: newHostCapabilities(sc, logger, "lisp"),
	}
	e.self = e
	e.stderr = &zapio.Writer{
		Log:   e.logger.With(zap.String("source", "script")),
		Level: zap.InfoLevel,
	}
	env := lisp.NewEnv(nil)
	env.Runtime.Reader = parser.NewReader()
	env.Runtime.Library = &lisp.RelativeFileSystemLibrary{}
	env.Runtime.Stderr = e.stderr
	loaders := []elpsutil.Loader{
		func(env *lisp.LEnv) *lisp.LVal { return lisp.InitializeUserEnv(env) },
		lisplib.LoadLibrary,
		elpsutil.PackageLoader(&lispPackage{e}),
	}
	for _, load := range loaders {
		if rc := elpsutil.Load(env, load); rc.Type == lisp.LError {
			return nil, (*lisp.ErrorVal)(rc)
		}
	}
	e.env = env
	return e, nil
}

func (e *lispEngine) Load(path string) error {
	if e.env == nil {
		return &ScriptLoadError{Path: path, Err: errEngineClosed}
	}
	res := e.env.LoadFile(path)
	if res.Type == lisp.LError {
		lerr := (*lisp.ErrorVal)(res)
		var trace strings.Builder
		lerr.WriteTrace(&trace)
		e.logger.Debug("Script backtrace", zap.String("backtrace", trace.String()))
		e.release()
		return e.loadError(path, lerr)
	}
	return nil
}

func (e *lispEngine) RunCreate() {
	e.call(e.sc.Config.CreateFunc)
}

func (e *lispEngine) RunDestroy() {
	e.call(e.sc.Config.DestroyFunc)
}

func (e *lispEngine) RunUpdate(deltaTime float64) {
	e.call(e.sc.Config.UpdateFunc, lisp.Float(deltaTime))
}

func (e *lispEngine) RunRender() {
	e.call(e.sc.Config.RenderFunc)
}

func (e *lispEngine) Close() error {
	if e.env == nil {
		return nil
	}
	return e.release()
}

func (e *lispEngine) release() error {
	e.env = nil
	return e.stderr.Close()
}

func (e *lispEngine) call(name string, args ...*lisp.LVal) {
	if e.env == nil || name == "" {
		return
	}
	fn := e.env.Get(lisp.Symbol(name))
	if fn.Type != lisp.LFun {
		return
	}
	if res := e.env.FunCall(fn, lisp.SExpr(args)); res.Type == lisp.LError {
		e.reportCallback(name, (*lisp.ErrorVal)(res))
	}
}

func (e *lispEngine) init(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	if len(args.Cells) == 0 || args.Cells[0].IsNil() {
		return lisp.Nil()
	}
	table := args.Cells[0]
	if table.Type != lisp.LSortMap {
		return env.Error(e.raise(&ConfigParseError{Got: table.Type.String()}))
	}
	if err := e.initFrom(lispconv.Table{LVal: table}); err != nil {
		return env.Error(e.raise(err))
	}
	return lisp.Nil()
}

func (e *lispEngine) getScreenWidth(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	return lisp.Int(e.screenWidth())
}

func (e *lispEngine) getScreenHeight(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	return lisp.Int(e.screenHeight())
}

func (e *lispEngine) drawCircle(env *lisp.LEnv, args *lisp.LVal) *lisp.LVal {
	e.drawFrom(lispconv.Args(args))
	return lisp.Nil()
}

type lispPackage struct {
	e *lispEngine
}

func (p *lispPackage) PackageName() string {
	return "engine"
}

func (p *lispPackage) PackageDoc() string {
	return "Host capabilities of the game runtime."
}

func (p *lispPackage) Builtins() []lisp.LBuiltinDef {
	varargs := lisp.Formals(lisp.VarArgSymbol, "args")
	return []lisp.LBuiltinDef{
		elpsutil.Function("init", varargs, p.e.init),
		elpsutil.Function("getScreenWidth", lisp.Formals(), p.e.getScreenWidth),
		elpsutil.Function("getScreenHeight", lisp.Formals(), p.e.getScreenHeight),
		elpsutil.Function("drawCircle", varargs, p.e.drawCircle),
	}
}
