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

package gamescript_test

import (
	"errors"
	"testing"

	"github.com/deflinhec/gamescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKinds(t *testing.T) {
	names := make([]string, 0)
	for _, k := range gamescript.Kinds() {
		names = append(names, k.Name)
	}
	assert.Subset(t, names, []string{"javascript", "lisp", "lua", "python"})
	assert.IsIncreasing(t, names)
}

func TestKindOfExtension(t *testing.T) {
	tests := map[string]string{
		"game.lua":        "lua",
		"GAME.LUA":        "lua",
		"game.py":         "python",
		"dir/game.star":   "python",
		"game.lisp":       "lisp",
		"game.lsp":        "lisp",
		"scripts/game.js": "javascript",
	}
	for path, want := range tests {
		kind, err := gamescript.KindOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, kind.Name, path)
	}
}

func TestUnsupportedScriptKind(t *testing.T) {
	for _, path := range []string{"game.rb", "game", "game.txt"} {
		sc := gamescript.NewSharedContext(nil)
		engine, err := gamescript.NewEngine(path, sc, zap.NewNop())
		assert.Nil(t, engine)
		assert.Nil(t, sc.Scripting)

		var kindErr *gamescript.UnsupportedScriptKindError
		require.True(t, errors.As(err, &kindErr), path)
		assert.Equal(t, path, kindErr.Path)
	}

	_, err := gamescript.NewEngine("game.rb", nil, nil)
	assert.Contains(t, err.Error(), "unsupported script [rb]")
	assert.Contains(t, err.Error(), ".lua")
}

func TestNewEngineAttachesToContext(t *testing.T) {
	sc := gamescript.NewSharedContext(nil)
	engine, err := gamescript.NewEngine("game.lua", sc, zap.NewNop())
	require.NoError(t, err)
	defer engine.Close()
	assert.Same(t, engine, sc.Scripting)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	factory := func(*gamescript.SharedContext, *zap.Logger) (gamescript.ScriptingEngine, error) {
		return nil, errors.New("unused")
	}
	gamescript.Register(gamescript.Kind{Name: "registry-test", Extensions: []string{".regtest"}, New: factory})

	assert.Panics(t, func() {
		gamescript.Register(gamescript.Kind{Name: "registry-test", New: factory})
	})
	assert.Panics(t, func() {
		gamescript.Register(gamescript.Kind{Name: "registry-test-2", Extensions: []string{".REGTEST"}, New: factory})
	})

	_, err := gamescript.NewEngine("game.regtest", nil, nil)
	assert.ErrorContains(t, err, "unused")
}
