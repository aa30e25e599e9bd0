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

// Package lispconv converts ELPS values for the host.
package lispconv

import (
	"github.com/deflinhec/gamescript/variant"
	"github.com/luthersystems/elps/lisp"
)

// Variant reads a single ELPS value. The symbols true and false are the
// language's booleans; nil and errors read as absent.
func Variant(v *lisp.LVal) variant.Variant {
	if v == nil || v.IsNil() {
		return variant.None()
	}
	switch v.Type {
	case lisp.LString:
		return variant.OfString(v.Str)
	case lisp.LInt:
		return variant.OfNumber(float64(v.Int))
	case lisp.LFloat:
		return variant.OfNumber(v.Float)
	case lisp.LSymbol:
		switch v.Str {
		case lisp.TrueSymbol:
			return variant.OfBool(true)
		case lisp.FalseSymbol:
			return variant.OfBool(false)
		}
	case lisp.LError:
		return variant.None()
	}
	return variant.OfUnsupported(v.Type.String())
}

func Args(args *lisp.LVal) []variant.Variant {
	ret := make([]variant.Variant, 0, len(args.Cells))
	for _, arg := range args.Cells {
		ret = append(ret, Variant(arg))
	}
	return ret
}

// Table is a variant.Table over a sorted-map. String keys are tried before
// symbol keys.
type Table struct {
	*lisp.LVal
}

func (t Table) Field(name string) variant.Variant {
	if t.LVal == nil || t.Type != lisp.LSortMap {
		return variant.None()
	}
	if v := Variant(t.MapGet(name)); !v.IsAbsent() {
		return v
	}
	return Variant(t.MapGet(lisp.Symbol(name)))
}
