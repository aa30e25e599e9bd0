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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestLuaStateClosedAfterFailedLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.lua")
	require.NoError(t, os.WriteFile(path, []byte("error('boom')"), 0644))

	engine, err := NewLuaEngine(NewSharedContext(nil), zaptest.NewLogger(t))
	require.NoError(t, err)
	e := engine.(*luaEngine)
	require.NotNil(t, e.vm)

	err = e.Load(path)
	require.Error(t, err)
	assert.Nil(t, e.vm)
	assert.NoError(t, e.Close())
}

func TestSurfacedMatchesRaisedError(t *testing.T) {
	h := newHostCapabilities(nil, nil, "test")
	raised := h.raise(&ConfigParseError{Field: KeyDebug, Got: "number"})

	err := h.loadError("game.lua", nativeError("game.lua:1: "+raised.Error()))
	var parseErr *ConfigParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, KeyDebug, parseErr.Field)
	assert.Nil(t, h.raised)

	h.raise(&ConfigParseError{Field: KeyDebug, Got: "number"})
	err = h.loadError("game.lua", nativeError("unrelated"))
	assert.False(t, errors.As(err, &parseErr))
}

func TestLuaLoggerModule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logger.lua")
	src := `
		local logger = require("logger")
		logger.warn("low fuel", { level = 3, ship = "kestrel" })
		logger.info("docked", "bay 4")
		logger.debug("plain")
	`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	core, logs := observer.New(zapcore.DebugLevel)
	engine, err := NewLuaEngine(NewSharedContext(nil), zap.New(core))
	require.NoError(t, err)
	defer engine.Close()
	require.NoError(t, engine.Load(path))

	warn := logs.FilterMessage("low fuel").All()
	require.Len(t, warn, 1)
	assert.Equal(t, zapcore.WarnLevel, warn[0].Level)
	assert.Equal(t, int64(3), warn[0].ContextMap()["level"])
	assert.Equal(t, "kestrel", warn[0].ContextMap()["ship"])
	assert.Equal(t, "script", warn[0].ContextMap()["source"])
	assert.Equal(t, "lua", warn[0].ContextMap()["engine"])

	info := logs.FilterMessage("docked").All()
	require.Len(t, info, 1)
	assert.Equal(t, "bay 4", info[0].ContextMap()["content"])

	assert.Equal(t, 1, logs.FilterMessage("plain").Len())
}

type nativeError string

func (e nativeError) Error() string {
	return string(e)
}
