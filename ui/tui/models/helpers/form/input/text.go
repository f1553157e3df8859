// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/internal/i18n"
	"github.com/toeirei/numinput/ui/tui/models/helpers/form"
)

// TextCharLimit caps the length of free text entries.
const TextCharLimit = 64

// Text is a single line free text input.
type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	LabelStyle   lipgloss.Style
	FocusedStyle lipgloss.Style

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) *Text {
	input := textinput.New()
	input.CharLimit = TextCharLimit

	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("form.next")),
			),
		},
		LabelStyle:   lipgloss.NewStyle().Foreground(colorMuted),
		FocusedStyle: lipgloss.NewStyle().Foreground(colorFocus).Bold(true),
		input:        input,
	}
}

func (t *Text) Blur() tea.Cmd {
	t.input.Blur()
	t.focused = false
	return nil
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	style := t.LabelStyle
	if t.focused {
		style = t.FocusedStyle
	}
	label := style.Width(width).Render(t.Label)

	t.input.Width = width - 2
	t.input.Placeholder = t.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left, label, t.input.View())
}

var _ form.FormInput = (*Text)(nil)
