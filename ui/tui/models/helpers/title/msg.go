// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set replaces the view part of the window title. An empty title shows
// the base only.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
