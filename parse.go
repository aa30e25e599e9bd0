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

import "github.com/deflinhec/gamescript/variant"

// ParseConfiguration reads the nine known keys out of table into cfg.
// Absent keys leave the field untouched. The first mistyped key aborts the
// parse with a *ConfigParseError and leaves cfg partially updated, so
// callers parse into a scratch copy.
func ParseConfiguration(table variant.Table, cfg *Configuration) error {
	ints := []struct {
		key string
		dst *int
	}{
		{KeyScreenWidth, &cfg.ScreenWidth},
		{KeyScreenHeight, &cfg.ScreenHeight},
	}
	for _, f := range ints {
		if err := readInt(table, f.key, f.dst); err != nil {
			return err
		}
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{KeyUseFullscreen, &cfg.UseFullscreen},
		{KeyDebug, &cfg.DebugMode},
	}
	for _, f := range bools {
		if err := readBool(table, f.key, f.dst); err != nil {
			return err
		}
	}
	strs := []struct {
		key string
		dst *string
	}{
		{KeyWindowTitle, &cfg.WindowTitle},
		{KeyCreate, &cfg.CreateFunc},
		{KeyDestroy, &cfg.DestroyFunc},
		{KeyUpdate, &cfg.UpdateFunc},
		{KeyRender, &cfg.RenderFunc},
	}
	for _, f := range strs {
		if err := readString(table, f.key, f.dst); err != nil {
			return err
		}
	}
	return nil
}

func readInt(table variant.Table, key string, dst *int) error {
	v := table.Field(key)
	if v.IsAbsent() {
		return nil
	}
	n, ok := v.Int()
	if !ok {
		return &ConfigParseError{Field: key, Got: v.Type()}
	}
	*dst = n
	return nil
}

func readBool(table variant.Table, key string, dst *bool) error {
	v := table.Field(key)
	if v.IsAbsent() {
		return nil
	}
	if v.Kind != variant.Boolean {
		return &ConfigParseError{Field: key, Got: v.Type()}
	}
	*dst = v.Bool
	return nil
}

func readString(table variant.Table, key string, dst *string) error {
	v := table.Field(key)
	if v.IsAbsent() {
		return nil
	}
	if v.Kind != variant.String {
		return &ConfigParseError{Field: key, Got: v.Type()}
	}
	*dst = v.Str
	return nil
}
