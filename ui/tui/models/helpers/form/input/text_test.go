// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/numinput/ui/tui/models/helpers/form"
)

func TestText_TypingAndNext(t *testing.T) {
	txt := NewText("Title", "none")
	txt.Focus()

	for _, r := range "abc" {
		_, action := txt.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		require.Equal(t, form.ActionNone, action)
	}
	require.Equal(t, "abc", txt.Get())

	_, action := txt.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, form.ActionNext, action)
}

func TestText_SetResetAndLimit(t *testing.T) {
	txt := NewText("Title", "")

	txt.Set("hello")
	require.Equal(t, "hello", txt.Get())

	txt.Set(42)
	require.Equal(t, "hello", txt.Get(), "non-string values are ignored")

	txt.Reset()
	require.Equal(t, "", txt.Get())

	txt.Set(strings.Repeat("x", TextCharLimit+10))
	require.Len(t, txt.Get(), TextCharLimit)
}

func TestText_ViewShowsLabel(t *testing.T) {
	txt := NewText("Title", "")
	require.Contains(t, txt.View(30), "Title")
}

func TestButton_Submits(t *testing.T) {
	b := NewButton("Submit", false)
	b.Focus()

	_, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, form.ActionSubmit, action)

	_, action = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Equal(t, form.ActionNone, action)
}

func TestButton_DisabledIgnoresClick(t *testing.T) {
	b := NewButton("Submit", true)
	b.Focus()

	_, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, form.ActionNone, action)
	require.Contains(t, b.View(20), "Submit")
}
