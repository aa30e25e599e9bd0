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

package jsconv_test

import (
	"testing"

	"github.com/deflinhec/gamescript/jsconv"
	"github.com/deflinhec/gamescript/variant"
	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant(t *testing.T) {
	vm := goja.New()
	assert.Equal(t, variant.None(), jsconv.Variant(goja.Undefined()))
	assert.Equal(t, variant.None(), jsconv.Variant(goja.Null()))
	assert.Equal(t, variant.OfBool(true), jsconv.Variant(vm.ToValue(true)))
	assert.Equal(t, variant.OfString("x"), jsconv.Variant(vm.ToValue("x")))
	assert.Equal(t, variant.OfNumber(4), jsconv.Variant(vm.ToValue(4)))
	assert.Equal(t, variant.OfNumber(4.25), jsconv.Variant(vm.ToValue(4.25)))
	assert.Equal(t, variant.OfUnsupported("object"), jsconv.Variant(vm.NewObject()))
}

func TestTypeOf(t *testing.T) {
	vm := goja.New()
	fn, err := vm.RunString("(function() {})")
	require.NoError(t, err)

	assert.Equal(t, "undefined", jsconv.TypeOf(goja.Undefined()))
	assert.Equal(t, "null", jsconv.TypeOf(goja.Null()))
	assert.Equal(t, "function", jsconv.TypeOf(fn))
	assert.Equal(t, "object", jsconv.TypeOf(vm.NewArray()))
	assert.Equal(t, "number", jsconv.TypeOf(vm.ToValue(1)))
	assert.Equal(t, "string", jsconv.TypeOf(vm.ToValue("")))
	assert.Equal(t, "boolean", jsconv.TypeOf(vm.ToValue(false)))
}

func TestTableField(t *testing.T) {
	vm := goja.New()
	v, err := vm.RunString(`({ SCREEN_WIDTH: 800, create: "start", DEBUG: null })`)
	require.NoError(t, err)
	cfg := jsconv.Table{Object: v.ToObject(vm)}

	assert.Equal(t, variant.OfNumber(800), cfg.Field("SCREEN_WIDTH"))
	assert.Equal(t, variant.OfString("start"), cfg.Field("create"))
	assert.True(t, cfg.Field("DEBUG").IsAbsent())
	assert.True(t, cfg.Field("render").IsAbsent())
}
