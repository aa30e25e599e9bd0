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

// Package starconv converts Starlark values for the host.
package starconv

import (
	"github.com/deflinhec/gamescript/variant"
	"go.starlark.net/starlark"
)

func Variant(v starlark.Value) variant.Variant {
	switch v := v.(type) {
	case nil, starlark.NoneType:
		return variant.None()
	case starlark.Bool:
		return variant.OfBool(bool(v))
	case starlark.String:
		return variant.OfString(string(v))
	case starlark.Int, starlark.Float:
		f, _ := starlark.AsFloat(v)
		return variant.OfNumber(f)
	default:
		return variant.OfUnsupported(v.Type())
	}
}

func Args(args starlark.Tuple) []variant.Variant {
	ret := make([]variant.Variant, 0, len(args))
	for _, arg := range args {
		ret = append(ret, Variant(arg))
	}
	return ret
}

// Table is a variant.Table over any Starlark mapping, usually a dict.
// Keys that fail to hash read as absent.
type Table struct {
	starlark.Mapping
}

func (t Table) Field(name string) variant.Variant {
	v, found, err := t.Get(starlark.String(name))
	if err != nil || !found {
		return variant.None()
	}
	return Variant(v)
}
