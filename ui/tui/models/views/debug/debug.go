// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package debug is an optional side panel showing the internal state of
// the numeric controls and the most recent messages.
package debug

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/core/numeric"
	"github.com/toeirei/numinput/ui/tui/util"
	"github.com/toeirei/numinput/util/slicest"
)

// MaxMessages is the number of messages kept for display.
const MaxMessages = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	stateStyle = map[numeric.State]lipgloss.Style{
		numeric.Idle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		numeric.Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		numeric.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		numeric.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// Probe names a control to inspect.
type Probe struct {
	Label   string
	Control *numeric.Control
}

type Model struct {
	probes []Probe
	msgs   []string
	size   util.Size
}

func New(probes []Probe) *Model {
	return &Model{probes: probes}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) || msg == nil {
		return nil
	}
	m.record(describe(msg))
	return nil
}

func (m *Model) record(line string) {
	m.msgs = append(m.msgs, line)
	if len(m.msgs) > MaxMessages {
		m.msgs = m.msgs[len(m.msgs)-MaxMessages:]
	}
}

func describe(msg tea.Msg) string {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return fmt.Sprintf("key %q", msg.String())
	}
	return fmt.Sprintf("%T", msg)
}

// Lines returns the control rows followed by the messages, newest first.
func (m Model) Lines() []string {
	lines := slicest.Map(m.probes, func(p Probe) string {
		c := p.Control
		state := c.State()
		return fmt.Sprintf("%s %s value=%d last=%d text=%q timer=%d",
			p.Label, stateStyle[state].Render(state.String()),
			c.Value(), c.LastValid(), c.Display(), c.PendingTimer())
	})

	msgs := slices.Clone(m.msgs)
	slices.Reverse(msgs)
	return append(lines, msgs...)
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		MaxWidth(m.size.Width).
		MaxHeight(m.size.Height).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			append([]string{titleStyle.Render("debug")}, m.Lines()...)...,
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.record("focus")
	return nil, nil
}

func (m *Model) Blur() tea.Cmd {
	m.record("blur")
	return nil
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
