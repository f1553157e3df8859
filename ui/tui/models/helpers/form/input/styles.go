// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import "github.com/charmbracelet/lipgloss"

// palette shared by all form inputs
var (
	colorMuted   = lipgloss.Color("240")
	colorFocus   = lipgloss.Color("205")
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("42")
)

func boxStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(colorMuted)
}
