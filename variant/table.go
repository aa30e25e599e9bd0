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

package variant

import "fmt"

// Table is a read-only view over a script-native associative value. Each
// interpreter binding implements it over its own table/dict/map type; the
// returned Variant must not reference interpreter-managed memory.
type Table interface {
	Field(name string) Variant
}

// Map is a Table backed by plain Go values, used by hosts that build
// configuration tables without an interpreter.
type Map map[string]interface{}

func (m Map) Field(name string) Variant {
	v, ok := m[name]
	if !ok {
		return None()
	}
	return Of(v)
}

// Of converts a Go value into a Variant.
func Of(v interface{}) Variant {
	switch v := v.(type) {
	case nil:
		return None()
	case Variant:
		return v
	case string:
		return OfString(v)
	case bool:
		return OfBool(v)
	case int:
		return OfNumber(float64(v))
	case int32:
		return OfNumber(float64(v))
	case int64:
		return OfNumber(float64(v))
	case uint32:
		return OfNumber(float64(v))
	case float32:
		return OfNumber(float64(v))
	case float64:
		return OfNumber(v)
	default:
		return OfUnsupported(fmt.Sprintf("%T", v))
	}
}
