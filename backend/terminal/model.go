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

package terminal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameMsg carries a rendered canvas from the game loop to the program.
type frameMsg string

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

type model struct {
	keys     keyMap
	title    string
	frame    string
	onQuit   func()
	onResize func(cols, rows int)
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.onQuit != nil {
				m.onQuit()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if m.onResize != nil {
			m.onResize(msg.Width, msg.Height)
		}
	case frameMsg:
		m.frame = string(msg)
	}
	return m, nil
}

func (m model) View() string {
	help := m.keys.Quit.Help()
	header := titleStyle.Render(m.title) + "  " + help.Key + " " + help.Desc
	return header + "\n" + m.frame
}
