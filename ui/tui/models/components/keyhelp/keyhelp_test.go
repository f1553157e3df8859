// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/numinput/ui/tui/util"
)

type testKeys []key.Binding

func (k testKeys) ShortHelp() []key.Binding  { return k }
func (k testKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func binding(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

func TestShortHelpView_SkipsDisabledWithoutSeparator(t *testing.T) {
	h := help.New()
	h.Width = 80
	disabled := binding("x", "hidden")
	disabled.SetEnabled(false)

	view := ShortHelpView(h, []key.Binding{disabled, binding("up", "increment")})
	require.Contains(t, view, "increment")
	require.NotContains(t, view, "hidden")
	require.NotContains(t, view, h.ShortSeparator)
}

func TestShortHelpView_Truncates(t *testing.T) {
	h := help.New()
	h.Width = 14
	view := ShortHelpView(h, []key.Binding{binding("up", "increment"), binding("down", "decrement")})
	require.Contains(t, view, "increment")
	require.Contains(t, view, h.Ellipsis)
	require.NotContains(t, view, "decrement")
}

func TestModel_ShowsAnnouncedKeyMap(t *testing.T) {
	m := New()
	require.Empty(t, m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: testKeys{binding("enter", "next")}})
	require.Contains(t, m.View(), "next")

	m.ToggleExpanded()
	require.Contains(t, m.View(), "enter")
}
