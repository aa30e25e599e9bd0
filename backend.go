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

// Backend owns the window, the clock and the render surface. All methods are
// called from the goroutine driving Game.Run.
type Backend interface {
	Init() error
	CreateWindow(width, height int, fullscreen bool, title string) error
	// WindowSize reports (0, 0) until a window exists.
	WindowSize() (int, int)
	// Timestamp returns seconds on a monotonic clock.
	Timestamp() float64
	Shutdown() error

	// ProcessEvents drains input and returns false once the user asked to quit.
	ProcessEvents() bool
	PreFrameUpdate(deltaTime float64)
	PostFrameUpdate(deltaTime float64)
	PreFrameRender()
	PostFrameRender()

	DrawCircle(x, y, radius int)
}
