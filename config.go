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
	"io"

	"go.uber.org/zap"
)

// Keys of the configuration table a script hands to engine.init.
const (
	KeyScreenWidth   = "SCREEN_WIDTH"
	KeyScreenHeight  = "SCREEN_HEIGHT"
	KeyUseFullscreen = "USE_FULLSCREEN"
	KeyDebug         = "DEBUG"
	KeyWindowTitle   = "WINDOW_TITLE"
	KeyCreate        = "create"
	KeyDestroy       = "destroy"
	KeyUpdate        = "update"
	KeyRender        = "render"
)

const DefaultWindowTitle = "Lua Game Scripting Engine v1.0"

// Configuration holds host, window and lifecycle settings. The lifecycle
// fields are function names looked up in the script, so a script may rename
// its entry points.
type Configuration struct {
	ScreenWidth   int    `yaml:"SCREEN_WIDTH"`
	ScreenHeight  int    `yaml:"SCREEN_HEIGHT"`
	UseFullscreen bool   `yaml:"USE_FULLSCREEN"`
	DebugMode     bool   `yaml:"DEBUG"`
	WindowTitle   string `yaml:"WINDOW_TITLE"`
	CreateFunc    string `yaml:"create"`
	DestroyFunc   string `yaml:"destroy"`
	UpdateFunc    string `yaml:"update"`
	RenderFunc    string `yaml:"render"`
}

func NewConfiguration() Configuration {
	return Configuration{
		ScreenWidth:   640,
		ScreenHeight:  480,
		UseFullscreen: false,
		DebugMode:     true,
		WindowTitle:   DefaultWindowTitle,
		CreateFunc:    "create",
		DestroyFunc:   "destroy",
		UpdateFunc:    "update",
		RenderFunc:    "render",
	}
}

// Copy overwrites c with other as a whole record.
func (c *Configuration) Copy(other Configuration) {
	*c = other
}

func (c *Configuration) Print(w io.Writer) {
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "%s: %d\n", KeyScreenWidth, c.ScreenWidth)
	fmt.Fprintf(w, "%s: %d\n", KeyScreenHeight, c.ScreenHeight)
	fmt.Fprintf(w, "%s: %s\n", KeyUseFullscreen, pyBool(c.UseFullscreen))
	fmt.Fprintf(w, "%s: %s\n", KeyDebug, pyBool(c.DebugMode))
	fmt.Fprintf(w, "%s: %s\n", KeyWindowTitle, c.WindowTitle)
	fmt.Fprintf(w, "%s: %s\n", KeyCreate, c.CreateFunc)
	fmt.Fprintf(w, "%s: %s\n", KeyDestroy, c.DestroyFunc)
	fmt.Fprintf(w, "%s: %s\n", KeyUpdate, c.UpdateFunc)
	fmt.Fprintf(w, "%s: %s\n", KeyRender, c.RenderFunc)
}

// Fields renders the record for structured logs.
func (c *Configuration) Fields() []zap.Field {
	return []zap.Field{
		zap.Int(KeyScreenWidth, c.ScreenWidth),
		zap.Int(KeyScreenHeight, c.ScreenHeight),
		zap.Bool(KeyUseFullscreen, c.UseFullscreen),
		zap.Bool(KeyDebug, c.DebugMode),
		zap.String(KeyWindowTitle, c.WindowTitle),
		zap.String(KeyCreate, c.CreateFunc),
		zap.String(KeyDestroy, c.DestroyFunc),
		zap.String(KeyUpdate, c.UpdateFunc),
		zap.String(KeyRender, c.RenderFunc),
	}
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
