// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/numinput/ui/tui/util"
)

type tick struct{}

type recorder struct {
	view    string
	focused bool
	ticks   int
	keys    int
	size    util.Size
}

func (r *recorder) Init() tea.Cmd { return nil }
func (r *recorder) View() string  { return r.view }

func (r *recorder) Update(msg tea.Msg) tea.Cmd {
	if r.size.Update(msg) {
		return nil
	}
	switch msg.(type) {
	case tick:
		r.ticks++
	case tea.KeyMsg:
		r.keys++
	}
	return nil
}

func (r *recorder) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return nil, nil
}

func (r *recorder) Blur() tea.Cmd {
	r.focused = false
	return nil
}

func TestInjector_OpenRoutesKeysToPopup(t *testing.T) {
	child := &recorder{view: "child"}
	top := &recorder{view: "popup"}
	in := NewInjector(util.ModelPointer(child))
	in.Focus()
	in.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	in.Update(Open(util.ModelPointer(top))())
	require.Equal(t, 1, in.Depth())
	require.False(t, child.focused)
	require.True(t, top.focused)
	require.Equal(t, util.Size{Width: 24, Height: 8}, top.size)

	in.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, top.keys)
	require.Equal(t, 0, child.keys)

	in.Update(tick{})
	require.Equal(t, 1, top.ticks)
	require.Equal(t, 1, child.ticks, "non key messages reach the view underneath")
}

func TestInjector_CloseRunsCallback(t *testing.T) {
	child := &recorder{view: "child"}
	in := NewInjector(util.ModelPointer(child))
	in.Focus()

	closed := false
	in.Update(OpenWithCallback(util.ModelPointer(&recorder{}), func(*util.Model) tea.Cmd {
		closed = true
		return nil
	})())
	in.Update(Close()())

	require.True(t, closed)
	require.Equal(t, 0, in.Depth())
	require.True(t, child.focused)

	require.Nil(t, in.close(), "closing without popups is a no-op")
}

func TestOverlay_CentresForeground(t *testing.T) {
	bg := "aaaaa\naaaaa\naaaaa"
	require.Equal(t, "aaaaa\naabaa\naaaaa", overlay(bg, "b"))
	require.Equal(t, "aaaaa\nbbbbb\naaaaa", overlay("aaaaa\naaaaa\naaaaa", "bbbbbbb"),
		"wider foreground is cut to the background width")
}
