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

// Package jsconv converts goja values for the host.
package jsconv

import (
	"fmt"

	"github.com/deflinhec/gamescript/variant"
	"github.com/dop251/goja"
)

// Variant reads a single JavaScript value. undefined and null are absent.
func Variant(v goja.Value) variant.Variant {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return variant.None()
	}
	if _, ok := v.(*goja.Object); ok {
		return variant.OfUnsupported(TypeOf(v))
	}
	switch x := v.Export().(type) {
	case bool:
		return variant.OfBool(x)
	case string:
		return variant.OfString(x)
	case int64:
		return variant.OfNumber(float64(x))
	case float64:
		return variant.OfNumber(x)
	default:
		return variant.OfUnsupported(TypeOf(v))
	}
}

func Args(call goja.FunctionCall) []variant.Variant {
	ret := make([]variant.Variant, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		ret = append(ret, Variant(arg))
	}
	return ret
}

// TypeOf approximates the typeof operator for diagnostics.
func TypeOf(v goja.Value) string {
	switch {
	case v == nil || goja.IsUndefined(v):
		return "undefined"
	case goja.IsNull(v):
		return "null"
	}
	if _, ok := goja.AssertFunction(v); ok {
		return "function"
	}
	if _, ok := v.(*goja.Object); ok {
		return "object"
	}
	switch v.Export().(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case int64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v.Export())
	}
}

// Table is a variant.Table over a plain object.
type Table struct {
	*goja.Object
}

func (t Table) Field(name string) variant.Variant {
	return Variant(t.Get(name))
}
