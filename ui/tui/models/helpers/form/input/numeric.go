// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/core/numeric"
	"github.com/toeirei/numinput/internal/i18n"
	"github.com/toeirei/numinput/ui/tui/models/helpers/form"
)

var lastNumericID atomic.Int64

// errorExpiredMsg is delivered when the error display of one numeric input
// ends. owner keeps timers of sibling inputs apart.
type errorExpiredMsg struct {
	owner int64
	id    numeric.TimerID
}

// tickScheduler turns scheduled error timers into tea.Tick commands which
// are collected until the next flush. Cancel is a no-op: the control drops
// expiries it no longer waits for.
type tickScheduler struct {
	owner int64
	cmds  []tea.Cmd
}

func (s *tickScheduler) Schedule(id numeric.TimerID, after time.Duration) {
	owner := s.owner
	s.cmds = append(s.cmds, tea.Tick(after, func(time.Time) tea.Msg {
		return errorExpiredMsg{owner: owner, id: id}
	}))
}

func (s *tickScheduler) Cancel(numeric.TimerID) {}

func (s *tickScheduler) flush() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

type NumericKeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	Next      key.Binding
}

func (k NumericKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Reset}
}

func (k NumericKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Increment, k.Decrement}, {k.Reset, k.Next}}
}

func DefaultNumericKeyMap() NumericKeyMap {
	return NumericKeyMap{
		Increment: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", i18n.T("numeric.increment")),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", i18n.T("numeric.decrement")),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T("numeric.reset")),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("numeric.next")),
		),
	}
}

type NumericStyles struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	ErrorLabel   lipgloss.Style
	SuccessLabel lipgloss.Style
	Button       lipgloss.Style
	Hint         lipgloss.Style
	ErrorHint    lipgloss.Style
}

func DefaultNumericStyles() NumericStyles {
	return NumericStyles{
		Label:        lipgloss.NewStyle().Foreground(colorMuted),
		FocusedLabel: lipgloss.NewStyle().Foreground(colorFocus).Bold(true),
		ErrorLabel:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		SuccessLabel: lipgloss.NewStyle().Foreground(colorSuccess),
		Button:       lipgloss.NewStyle().Foreground(colorMuted),
		Hint:         lipgloss.NewStyle().Foreground(colorMuted).Faint(true),
		ErrorHint:    lipgloss.NewStyle().Foreground(colorError),
	}
}

// Numeric is a form input around a numeric.Control. The step and reset keys
// act as the control's internal buttons and never end the edit.
type Numeric struct {
	Label  string
	KeyMap NumericKeyMap
	Styles NumericStyles

	control   *numeric.Control
	scheduler *tickScheduler
	input     textinput.Model
	owner     int64
	focused   bool
	wantFocus bool
}

func NewNumeric(label string, cfg numeric.Config) (*Numeric, error) {
	n := &Numeric{
		Label:     label,
		KeyMap:    DefaultNumericKeyMap(),
		Styles:    DefaultNumericStyles(),
		owner:     lastNumericID.Add(1),
		input:     textinput.New(),
		scheduler: &tickScheduler{},
	}
	n.scheduler.owner = n.owner

	control, err := numeric.New(cfg,
		numeric.WithScheduler(n.scheduler),
		numeric.WithFocusRequest(func() { n.wantFocus = true }),
	)
	if err != nil {
		return nil, err
	}
	n.control = control
	n.input.Prompt = ""
	n.input.Placeholder = cfg.Placeholder
	n.sync()

	return n, nil
}

// Control exposes the underlying state machine, e.g. to register callbacks.
func (n *Numeric) Control() *numeric.Control {
	return n.control
}

func (n *Numeric) Focus() (tea.Cmd, help.KeyMap) {
	n.focused, n.wantFocus = true, false
	n.control.Focus()
	n.sync()
	return n.input.Focus(), n.KeyMap
}

func (n *Numeric) Blur() tea.Cmd {
	n.focused = false
	n.input.Blur()
	n.control.Blur(numeric.TargetOutside)
	n.sync()
	return n.scheduler.flush()
}

func (n *Numeric) Get() any {
	return n.control.Value()
}

func (n *Numeric) Set(value any) {
	n.control.Write(value)
	n.sync()
}

func (n *Numeric) Reset() {
	n.control.Reset()
	n.sync()
}

func (n *Numeric) Init() tea.Cmd {
	return nil
}

func (n *Numeric) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	switch msg := msg.(type) {
	case errorExpiredMsg:
		if msg.owner != n.owner || !n.control.ExpireErrorTimer(msg.id) {
			return nil, form.ActionNone
		}
		n.sync()
		return n.takeFocusRequest()

	case tea.KeyMsg:
		if !n.focused {
			return nil, form.ActionNone
		}
		switch {
		case key.Matches(msg, n.KeyMap.Increment):
			n.control.Increment()
			n.sync()
			return n.scheduler.flush(), form.ActionNone
		case key.Matches(msg, n.KeyMap.Decrement):
			n.control.Decrement()
			n.sync()
			return n.scheduler.flush(), form.ActionNone
		case key.Matches(msg, n.KeyMap.Reset):
			n.control.Reset()
			n.sync()
			return nil, form.ActionNone
		case key.Matches(msg, n.KeyMap.Next):
			return nil, form.ActionNext
		}

		before := n.input.Value()
		var cmd tea.Cmd
		n.input, cmd = n.input.Update(msg)
		if raw := n.input.Value(); raw != before {
			n.control.Input(raw)
			// only move the cursor when grouping rewrote the text
			if display := n.control.Display(); display != raw {
				n.input.SetValue(display)
				n.input.CursorEnd()
			}
		}
		return cmd, form.ActionNone
	}

	// cursor blink and other textinput internals
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd, form.ActionNone
}

// takeFocusRequest answers a focus request of the control. An input that
// lost focus to a sibling asks the form to hand it back.
func (n *Numeric) takeFocusRequest() (tea.Cmd, form.Action) {
	cmd := n.scheduler.flush()
	if !n.wantFocus {
		return cmd, form.ActionNone
	}
	n.wantFocus = false
	if n.focused {
		return tea.Batch(cmd, n.input.Focus()), form.ActionNone
	}
	return cmd, form.ActionFocus
}

// FocusDeclined leaves the control unfocused when the form could not hand
// focus back after an error.
func (n *Numeric) FocusDeclined() tea.Cmd {
	if !n.focused {
		n.input.Blur()
		n.control.Release()
	}
	return nil
}

func (n *Numeric) sync() {
	n.input.SetValue(n.control.Display())
	n.input.CursorEnd()
}

func (n *Numeric) View(width int) string {
	cfg := n.control.Config()
	flags := n.control.Flags()

	labelStyle := n.Styles.Label
	switch {
	case flags.Error:
		labelStyle = n.Styles.ErrorLabel
	case n.focused:
		labelStyle = n.Styles.FocusedLabel
	case flags.Success:
		labelStyle = n.Styles.SuccessLabel
	}
	label := labelStyle.Width(width).Render(n.Label)

	decrement := n.Styles.Button.Render("[-]")
	increment := n.Styles.Button.Render("[+]")
	reset := n.Styles.Button.Render("[↺]")
	buttonsWidth := lipgloss.Width(decrement) + lipgloss.Width(increment) + lipgloss.Width(reset) + 3

	n.input.Width = max(1, width-buttonsWidth-2)
	field := n.input.View()
	if cfg.Background != "" {
		field = lipgloss.NewStyle().Background(lipgloss.Color(cfg.Background)).Render(field)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, decrement, " ", field, " ", increment, " ", reset)

	var hint string
	if flags.Error {
		hint = n.Styles.ErrorHint.Render(i18n.T("numeric.invalid"))
	} else {
		f := n.control.Formatter()
		hint = n.Styles.Hint.Render(i18n.T("numeric.range", f.Format(cfg.Min), f.Format(cfg.Max)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, row, hint)
}

var (
	_ form.FormInput     = (*Numeric)(nil)
	_ form.FocusDecliner = (*Numeric)(nil)
)
