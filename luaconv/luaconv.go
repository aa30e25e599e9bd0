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

// Package luaconv converts gopher-lua values for the host.
package luaconv

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/deflinhec/gamescript/variant"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Variant reads a single Lua value. Tables, functions and userdata are
// reported as unsupported with their Lua type name.
func Variant(lv lua.LValue) variant.Variant {
	switch v := lv.(type) {
	case nil, *lua.LNilType:
		return variant.None()
	case lua.LBool:
		return variant.OfBool(bool(v))
	case lua.LString:
		return variant.OfString(string(v))
	case lua.LNumber:
		return variant.OfNumber(float64(v))
	default:
		return variant.OfUnsupported(lv.Type().String())
	}
}

// Args reads every argument on the stack of l.
func Args(l *lua.LState) []variant.Variant {
	top := l.GetTop()
	args := make([]variant.Variant, 0, top)
	for i := 1; i <= top; i++ {
		args = append(args, Variant(l.Get(i)))
	}
	return args
}

// Table is a variant.Table over a Lua table. Lookups are raw so a
// metatable cannot run script code during marshaling.
type Table struct {
	*lua.LTable
}

func (t Table) Field(name string) variant.Variant {
	return Variant(t.RawGetString(name))
}

// Value converts lv into plain Go values. Whole numbers become int64 and
// tables with a sequence part become slices.
func Value(lv lua.LValue) interface{} {
	switch v := lv.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(v)
	case lua.LString:
		return string(v)
	case lua.LNumber:
		if f := float64(v); f == float64(int64(f)) {
			return int64(f)
		}
		return float64(v)
	case *lua.LTable:
		if n := v.MaxN(); n > 0 {
			ret := make([]interface{}, 0, n)
			for i := 1; i <= n; i++ {
				ret = append(ret, Value(v.RawGetInt(i)))
			}
			return ret
		}
		ret := make(map[string]interface{})
		v.ForEach(func(key, value lua.LValue) {
			ret[fmt.Sprint(Value(key))] = Value(value)
		})
		return ret
	default:
		return lv.String()
	}
}

// Fields flattens a Lua table into zap fields ordered by key.
func Fields(table *lua.LTable) []zap.Field {
	fields := make([]zap.Field, 0)
	table.ForEach(func(key, value lua.LValue) {
		var name string
		switch k := Value(key).(type) {
		case string:
			name = k
		case int64:
			name = strconv.FormatInt(k, 10)
		default:
			return
		}
		switch v := Value(value).(type) {
		case int64:
			fields = append(fields, zap.Int64(name, v))
		case float64:
			fields = append(fields, zap.Float64(name, v))
		case string:
			fields = append(fields, zap.String(name, v))
		case bool:
			fields = append(fields, zap.Bool(name, v))
		default:
			fields = append(fields, zap.Any(name, v))
		}
	})
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}
