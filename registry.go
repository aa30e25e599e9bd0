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
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Factory boots an interpreter bound to sc. The returned engine has not
// loaded a script yet.
type Factory func(sc *SharedContext, logger *zap.Logger) (ScriptingEngine, error)

// Kind describes one script language. Adapters register themselves from an
// init function.
type Kind struct {
	Name       string
	Extensions []string
	New        Factory
}

var (
	kinds      = make(map[string]Kind)
	extensions = make(map[string]string)
	mu         sync.RWMutex
)

// Register adds a script kind. Panics when the name or an extension is
// already taken.
func Register(kind Kind) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := kinds[kind.Name]; exists {
		panic(fmt.Sprintf("gamescript: kind %q already registered", kind.Name))
	}
	for _, ext := range kind.Extensions {
		ext = strings.ToLower(ext)
		if owner, exists := extensions[ext]; exists {
			panic(fmt.Sprintf("gamescript: extension %q already registered by %q", ext, owner))
		}
	}
	for _, ext := range kind.Extensions {
		extensions[strings.ToLower(ext)] = kind.Name
	}
	kinds[kind.Name] = kind
}

// Kinds lists the registered kinds sorted by name.
func Kinds() []Kind {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		result = append(result, k)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Extensions lists every registered extension, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(extensions))
	for ext := range extensions {
		result = append(result, ext)
	}
	sort.Strings(result)
	return result
}

// KindOf resolves the kind for a script path by its extension.
func KindOf(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mu.RLock()
	defer mu.RUnlock()

	name, ok := extensions[ext]
	if !ok {
		return Kind{}, &UnsupportedScriptKindError{Path: path, Ext: ext}
	}
	return kinds[name], nil
}

// NewEngine creates the engine for path and attaches it to sc when sc has
// no engine yet.
func NewEngine(path string, sc *SharedContext, logger *zap.Logger) (ScriptingEngine, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	engine, err := kind.New(sc, logger)
	if err != nil {
		return nil, fmt.Errorf("unable to start %s interpreter: %w", kind.Name, err)
	}
	if sc != nil && sc.Scripting == nil {
		sc.Scripting = engine
	}
	return engine, nil
}
