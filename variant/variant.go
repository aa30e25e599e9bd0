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

// Package variant holds the interpreter-neutral value used while reading a
// single field out of a script-supplied table.
package variant

import (
	"fmt"
	"math"
)

type Kind uint8

const (
	Absent Kind = iota
	String
	Number
	Boolean
	// Unsupported marks a value the host has no conversion for (tables,
	// functions, userdata...). TypeName carries the native type for errors.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Unsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Variant is a tagged union; only the payload matching Kind is meaningful.
type Variant struct {
	Kind     Kind
	Str      string
	Num      float64
	Bool     bool
	TypeName string
}

func None() Variant {
	return Variant{Kind: Absent}
}

func OfString(s string) Variant {
	return Variant{Kind: String, Str: s}
}

func OfNumber(n float64) Variant {
	return Variant{Kind: Number, Num: n}
}

func OfBool(b bool) Variant {
	return Variant{Kind: Boolean, Bool: b}
}

func OfUnsupported(typeName string) Variant {
	return Variant{Kind: Unsupported, TypeName: typeName}
}

func (v Variant) IsAbsent() bool {
	return v.Kind == Absent
}

// Type names the dynamic type for diagnostics, preferring the native name.
func (v Variant) Type() string {
	if v.TypeName != "" {
		return v.TypeName
	}
	return v.Kind.String()
}

// Int truncates a Number toward zero. ok is false for other kinds and for
// values that do not fit in an int.
func (v Variant) Int() (int, bool) {
	if v.Kind != Number {
		return 0, false
	}
	if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
		return 0, false
	}
	t := math.Trunc(v.Num)
	if t >= -float64(math.MinInt) || t < float64(math.MinInt) {
		return 0, false
	}
	return int(t), true
}

// IntOr is the lenient form of Int used by draw arguments.
func (v Variant) IntOr(def int) int {
	if n, ok := v.Int(); ok {
		return n
	}
	return def
}

func (v Variant) String() string {
	switch v.Kind {
	case String:
		return fmt.Sprintf("%q", v.Str)
	case Number:
		return fmt.Sprint(v.Num)
	case Boolean:
		return fmt.Sprint(v.Bool)
	case Unsupported:
		return "<" + v.Type() + ">"
	default:
		return "<absent>"
	}
}
