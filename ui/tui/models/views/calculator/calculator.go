// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calculator is the demo view: a form of numeric inputs built from
// the configured fields, a title and a submit button.
package calculator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/internal/config"
	"github.com/toeirei/numinput/internal/i18n"
	"github.com/toeirei/numinput/internal/logging"
	"github.com/toeirei/numinput/ui/tui/models/components/popup"
	"github.com/toeirei/numinput/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/numinput/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/numinput/ui/tui/models/helpers/title"
	"github.com/toeirei/numinput/ui/tui/models/views/debug"
	"github.com/toeirei/numinput/ui/tui/models/views/summary"
	"github.com/toeirei/numinput/ui/tui/util"
)

const (
	titleID  = "title"
	paddingX = 2
	paddingY = 1
)

// Values are the submitted form values by field id. The title is stored
// under "title".
type Values = map[string]any

type field struct {
	config.Field
	input *forminput.Numeric
}

type Model struct {
	fields []field
	form   form.Form[Values]
	size   util.Size
}

// New builds one numeric input per field. Fields after the first are laid
// out in pairs.
func New(fields []config.Field) (*Model, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("calculator: no fields configured")
	}

	m := &Model{}
	opts := []form.NewOpt[Values]{
		form.WithInput[Values](titleID, forminput.NewText(i18n.T("form.title_label"), i18n.T("form.title_placeholder"))),
	}

	var pending []form.IdentifiedInput
	for i, f := range fields {
		if f.ID == "" || f.ID == titleID {
			return nil, fmt.Errorf("calculator: field %d: invalid id %q", i, f.ID)
		}
		if f.Label == "" {
			f.Label = defaultLabel(f.ID)
		}

		input, err := forminput.NewNumeric(f.Label, f.Config)
		if err != nil {
			return nil, fmt.Errorf("calculator: field %s: %w", f.ID, err)
		}
		m.fields = append(m.fields, field{Field: f, input: input})
		m.observe(f.ID, input)

		identified := form.IdentifiedInput{ID: f.ID, Input: input}
		if i == 0 {
			opts = append(opts, form.WithRow[Values](identified))
			continue
		}
		pending = append(pending, identified)
		if len(pending) == 2 {
			opts = append(opts, form.WithRow[Values](pending...))
			pending = nil
		}
	}
	opts = append(opts,
		form.WithRow[Values](pending...),
		form.WithInput[Values]("", forminput.NewButton(i18n.T("form.submit"), false)),
		form.WithOnSubmit(m.submit),
	)

	m.form = form.New(opts...)
	return m, nil
}

// defaultLabel names the fields of the default form. "termN" becomes
// "Input #N".
func defaultLabel(id string) string {
	if id == "months" {
		return i18n.T("calculator.months")
	}
	if n, ok := strings.CutPrefix(id, "term"); ok {
		if index, err := strconv.Atoi(n); err == nil {
			return i18n.T("calculator.term", map[string]any{"Index": index})
		}
	}
	return id
}

// observe logs every committed value and, once none of the other inputs
// is zero, the whole set.
func (m *Model) observe(id string, input *forminput.Numeric) {
	log := logging.With("field", id)
	input.Control().Subscribe(func(value int) {
		log.Info("value changed", "value", value)
		if m.complete() {
			logging.Infof("all values set: %s", m.describe())
		}
	})
}

func (m *Model) complete() bool {
	for _, f := range m.fields {
		if f.input.Control().Value() == 0 {
			return false
		}
	}
	return true
}

func (m *Model) describe() string {
	parts := make([]string, len(m.fields))
	for i, f := range m.fields {
		parts[i] = fmt.Sprintf("%s=%d", f.ID, f.input.Control().Value())
	}
	return strings.Join(parts, " ")
}

// Probes exposes the controls to the debug panel.
func (m *Model) Probes() []debug.Probe {
	probes := make([]debug.Probe, len(m.fields))
	for i, f := range m.fields {
		probes[i] = debug.Probe{Label: f.ID, Control: f.input.Control()}
	}
	return probes
}

// Entries returns the current values formatted for display.
func (m *Model) Entries() []summary.Entry {
	entries := make([]summary.Entry, len(m.fields))
	for i, f := range m.fields {
		control := f.input.Control()
		entries[i] = summary.Entry{
			Label: f.Label,
			Value: control.Formatter().Format(control.Value()),
		}
	}
	return entries
}

func (m *Model) submit(values Values, err error) tea.Cmd {
	if err != nil {
		logging.Errorf("could not read form values: %v", err)
		return nil
	}
	title, _ := values[titleID].(string)
	logging.With("title", title).Info("form submitted", "values", m.describe())
	return popup.Open(util.ModelPointer(summary.New(title, m.Entries())))
}

// Get returns the current form values.
func (m *Model) Get() (Values, error) {
	return m.form.Get()
}

// Set pushes values into the inputs. Unknown keys are ignored.
func (m *Model) Set(values Values) error {
	return m.form.Set(values)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), windowtitle.Set(i18n.T("app.title")))
}

func (m *Model) Update(msg tea.Msg) (cmd tea.Cmd) {
	if m.size.Update(msg) {
		msg = tea.WindowSizeMsg{
			Width:  max(m.size.Width-2*paddingX, 0),
			Height: max(m.size.Height-2*paddingY, 0),
		}
	}
	m.form, cmd = m.form.Update(msg)
	return
}

func (m Model) View() string {
	return lipgloss.NewStyle().Padding(paddingY, paddingX).Render(m.form.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() tea.Cmd {
	return m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
