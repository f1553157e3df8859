// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package summary is the popup listing the values of a submitted form.
package summary

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/internal/i18n"
	"github.com/toeirei/numinput/ui/tui/models/components/popup"
	"github.com/toeirei/numinput/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/numinput/ui/tui/models/helpers/form/input"
	"github.com/toeirei/numinput/ui/tui/util"
	"github.com/toeirei/numinput/util/slicest"
)

const maxWidth = 40

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

// Entry is one listed value, already formatted.
type Entry struct {
	Label string
	Value string
}

type KeyMap struct {
	Close key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Close} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Close}} }

type Model struct {
	Title   string
	Entries []Entry
	KeyMap  KeyMap

	form form.Form[struct{}]
}

func New(title string, entries []Entry) *Model {
	keyMap := KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("summary.close")),
		),
	}
	return &Model{
		Title:   title,
		Entries: entries,
		KeyMap:  keyMap,
		form: form.New(
			form.WithInput[struct{}]("", forminput.NewButton(i18n.T("summary.close"), false)),
			form.WithOnSubmit(func(struct{}, error) tea.Cmd { return popup.Close() }),
			form.WithKeyMap[struct{}](keyMap),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) (cmd tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.KeyMap.Close) {
		return popup.Close()
	}
	m.form, cmd = m.form.Update(msg)
	return
}

func (m Model) View() string {
	width := 0
	for _, e := range m.Entries {
		width = max(width, lipgloss.Width(e.Label))
	}

	rows := slicest.Map(m.Entries, func(e Entry) string {
		return labelStyle.Width(width+2).Render(e.Label) + valueStyle.Render(e.Value)
	})

	heading := i18n.T("summary.heading")
	if m.Title != "" {
		heading = m.Title
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{headingStyle.Render(heading)}, rows...)...,
	)
	return lipgloss.NewStyle().MaxWidth(maxWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, body, "", m.form.View()),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() tea.Cmd {
	return m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
