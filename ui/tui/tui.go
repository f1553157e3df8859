// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/numinput/internal/config"
	"github.com/toeirei/numinput/ui/tui/models/views/root"
)

// Options selects what the TUI shows.
type Options struct {
	Fields []config.Field
	Debug  bool
}

// Run shows the calculator until the user quits.
func Run(o Options, opts ...tea.ProgramOption) error {
	model, err := root.New(o.Fields, o.Debug)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...).Run()
	return err
}
