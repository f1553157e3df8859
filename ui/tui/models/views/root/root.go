// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top level model: header, the calculator inside a
// popup injector, and the footer.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/numinput/buildvars"
	"github.com/toeirei/numinput/internal/config"
	"github.com/toeirei/numinput/internal/i18n"
	"github.com/toeirei/numinput/ui/tui/models/components/header"
	"github.com/toeirei/numinput/ui/tui/models/components/popup"
	"github.com/toeirei/numinput/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/numinput/ui/tui/models/helpers/title"
	"github.com/toeirei/numinput/ui/tui/models/views/calculator"
	"github.com/toeirei/numinput/ui/tui/models/views/debug"
	"github.com/toeirei/numinput/ui/tui/models/views/footer"
	"github.com/toeirei/numinput/ui/tui/util"
)

const title string = "numinput"

type Model struct {
	KeyMap       KeyMap
	stack        *stack.Model
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

// New builds the root model. With debugPanel the calculator shares its row
// with the debug view.
func New(fields []config.Field, debugPanel bool) (*Model, error) {
	calc, err := calculator.New(fields)
	if err != nil {
		return nil, err
	}

	content := util.ModelPointer(popup.NewInjector(util.ModelPointer(calc)))
	if debugPanel {
		content = util.ModelPointer(stack.New(
			stack.WithOrientation(stack.Horizontal),
			stack.WithGap(1),
			stack.WithItem(content, stack.VariableSize(3)),
			stack.WithItem(util.ModelPointer(debug.New(calc.Probes())), stack.VariableSize(1)),
		))
	}

	keyMap := DefaultKeyMap()
	version := buildvars.VersionOrDefault("dev")

	// kept for toggling the expanded help
	footerPtr := util.ModelPointer(footer.New(keyMap))

	return &Model{
		KeyMap: keyMap,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithItem(util.ModelPointer(header.New(i18n.T("app.title"))), header.SizeConfig),
			stack.WithFocusNext(),
			stack.WithItem(content, stack.VariableSize(1)),
			stack.WithItem(footerPtr, footer.SizeConfig),
		),
		footer:       footerPtr,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, version), " | "),
	}, nil
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.KeyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Help):
			util.BorrowModelFunc(m.footer, func(f *footer.Model) {
				f.ToggleExpanded()
			})
			// the stack recalculates the footer height on the next update
			return m, m.stack.Update(nil)
		}
		return m, m.stack.Update(msg)
	}

	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}

	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
