// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key bindings announced by the focused model.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/numinput/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool
	size     util.Size
	help     help.Model
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}

	return nil
}

func (m Model) View() string {
	switch {
	case m.KeyMap == nil:
		return ""
	case m.Expanded:
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	default:
		return ShortHelpView(m.help, m.KeyMap.ShortHelp())
	}
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur() tea.Cmd                 { return nil }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
