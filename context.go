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

// SharedContext links the host-owned configuration, backend and scripting
// engine. It owns none of them: the host creates the context before the
// engine and closes the engine before dropping the context.
type SharedContext struct {
	Config    *Configuration
	Backend   Backend
	Scripting ScriptingEngine
}

// NewSharedContext binds cfg; Backend and Scripting are attached later.
func NewSharedContext(cfg *Configuration) *SharedContext {
	if cfg == nil {
		c := NewConfiguration()
		cfg = &c
	}
	return &SharedContext{Config: cfg}
}

func (sc *SharedContext) windowSize() (int, int) {
	if sc.Backend == nil {
		return 0, 0
	}
	return sc.Backend.WindowSize()
}
