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

package starconv_test

import (
	"testing"

	"github.com/deflinhec/gamescript/starconv"
	"github.com/deflinhec/gamescript/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"
)

func TestVariant(t *testing.T) {
	assert.Equal(t, variant.None(), starconv.Variant(starlark.None))
	assert.Equal(t, variant.OfBool(false), starconv.Variant(starlark.False))
	assert.Equal(t, variant.OfString("x"), starconv.Variant(starlark.String("x")))
	assert.Equal(t, variant.OfNumber(7), starconv.Variant(starlark.MakeInt(7)))
	assert.Equal(t, variant.OfNumber(7.5), starconv.Variant(starlark.Float(7.5)))
	assert.Equal(t, variant.OfUnsupported("list"), starconv.Variant(starlark.NewList(nil)))
}

func TestTableField(t *testing.T) {
	d := starlark.NewDict(2)
	require.NoError(t, d.SetKey(starlark.String("SCREEN_HEIGHT"), starlark.Float(200.9)))
	require.NoError(t, d.SetKey(starlark.String("USE_FULLSCREEN"), starlark.True))
	cfg := starconv.Table{Mapping: d}

	n, ok := cfg.Field("SCREEN_HEIGHT").Int()
	assert.True(t, ok)
	assert.Equal(t, 200, n)
	assert.Equal(t, variant.OfBool(true), cfg.Field("USE_FULLSCREEN"))
	assert.True(t, cfg.Field("DEBUG").IsAbsent())
}

func TestArgs(t *testing.T) {
	got := starconv.Args(starlark.Tuple{starlark.MakeInt(1), starlark.None})
	assert.Equal(t, []variant.Variant{variant.OfNumber(1), variant.None()}, got)
}
