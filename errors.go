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
	"fmt"
	"path/filepath"
	"strings"
)

// ScriptLoadError reports a script that failed to parse, compile or run its
// top-level code. Err carries the interpreter's own diagnostic.
type ScriptLoadError struct {
	Path string
	Err  error
}

func (e *ScriptLoadError) Error() string {
	return fmt.Sprintf("unable to load %s: %v", e.Path, e.Err)
}

func (e *ScriptLoadError) Unwrap() error {
	return e.Err
}

// ConfigParseError reports a configuration field of the wrong dynamic type.
// An empty Field means the configuration value itself was not a table.
type ConfigParseError struct {
	Field string
	Got   string
}

func (e *ConfigParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unable to parse configuration table: expected a table, got %s", e.Got)
	}
	return fmt.Sprintf("unable to parse configuration table: field %s is not an expected type (got %s)",
		e.Field, e.Got)
}

// ScriptRuntimeError wraps a failure raised inside a lifecycle callback.
// Adapters log it; it never reaches the host loop.
type ScriptRuntimeError struct {
	Function string
	Err      error
}

func (e *ScriptRuntimeError) Error() string {
	return fmt.Sprintf("script error in %s: %v", e.Function, e.Err)
}

func (e *ScriptRuntimeError) Unwrap() error {
	return e.Err
}

type UnsupportedScriptKindError struct {
	Path string
	Ext  string
}

func (e *UnsupportedScriptKindError) Error() string {
	ext := strings.TrimPrefix(e.Ext, ".")
	return fmt.Sprintf("unsupported script [%s] : %s (supported: %s)",
		ext, filepath.Base(e.Path), strings.Join(Extensions(), ", "))
}

// scriptError keeps the interpreter's diagnostic text while exposing the
// host error the script did not catch.
type scriptError struct {
	msg   string
	cause error
}

func (e *scriptError) Error() string {
	return e.msg
}

func (e *scriptError) Unwrap() error {
	return e.cause
}
