// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package summary

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/numinput/internal/i18n"
	"github.com/toeirei/numinput/ui/tui/models/components/popup"
)

func TestMain(m *testing.M) {
	i18n.Init("en")
	m.Run()
}

func TestSummary_ListsEntries(t *testing.T) {
	m := New("", []Entry{{Label: "Months", Value: "12"}, {Label: "Input #1", Value: "1,000"}})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	view := m.View()
	require.Contains(t, view, "Submitted values")
	require.Contains(t, view, "Months")
	require.Contains(t, view, "1,000")
	require.Contains(t, view, "Close")

	require.Contains(t, New("Budget", nil).View(), "Budget")
}

func TestSummary_Closes(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{
		"escape": {Type: tea.KeyEsc},
		"button": {Type: tea.KeyEnter},
	} {
		t.Run(name, func(t *testing.T) {
			m := New("", nil)
			m.Focus()
			cmd := m.Update(msg)
			require.NotNil(t, cmd)
			require.IsType(t, popup.Close()(), cmd())
		})
	}
}
