// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/numinput/ui/tui/util"
)

type openMsg struct {
	Model   *util.Model
	OnClose func(*util.Model) tea.Cmd
}

type closeMsg struct{}

// Open shows m on top of the current view and moves focus to it.
func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// OpenWithCallback is Open with cb called after the popup closed.
func OpenWithCallback(m *util.Model, cb func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: cb} }
}

// Close closes the top popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
