// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer shows the key help of the focused view together with the
// application wide bindings.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/ui/tui/models/components/keyhelp"
	"github.com/toeirei/numinput/ui/tui/util"
)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// the base bindings are always shown after the view's own
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) View() string {
	pos := lipgloss.Left
	if m.help.Expanded {
		pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			pos, lipgloss.Top,
			m.help.View(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur() tea.Cmd                 { return nil }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
