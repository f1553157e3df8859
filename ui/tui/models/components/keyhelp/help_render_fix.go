// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line, replacing what does not fit
// m.Width with an ellipsis. help.Model.ShortHelpView counts the separator
// of skipped bindings against the width.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	if len(bindings) == 0 {
		return ""
	}

	var b strings.Builder
	var usedWidth int
	var items []string
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}

		var sep string
		if len(items) > 0 {
			sep = separator
		}

		str := sep +
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)

		items = append(items, str)
	}

	for i, item := range items {
		itemLen := lipgloss.Width(item)
		if i < len(items)-1 {
			// when not last
			if usedWidth+itemLen+tailLen <= m.Width {
				// when next items and at least the tail fit
				usedWidth += itemLen
				b.WriteString(item)
			} else {
				// else just add the tail
				usedWidth += tailLen
				b.WriteString(tail)
				break
			}
		} else {
			// when last
			if usedWidth+itemLen <= m.Width {
				// last item fits
				b.WriteString(item)
			} else if usedWidth+tailLen <= m.Width {
				// tail fits
				b.WriteString(tail)
			}
			// nothing fits
		}
	}

	return b.String()
}

// FullHelpView renders one column per group. Groups without enabled
// bindings are skipped.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	if len(groups) == 0 {
		return ""
	}

	var cols []string
	var result []string
	var usedWidth int
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	for _, group := range groups {
		if group == nil || !slices.ContainsFunc(group, func(binding key.Binding) bool {
			return binding.Enabled()
		}) {
			continue
		}
		var (
			sep          string
			keys         []string
			descriptions []string
		)

		if len(cols) > 0 {
			sep = separator
		}

		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		col := lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		)

		cols = append(cols, col)
	}

	for i, col := range cols {
		colLen := lipgloss.Width(col)
		if i < len(cols)-1 {
			// when not last
			if usedWidth+colLen+tailLen <= m.Width {
				// when next items and at least the tail fit
				usedWidth += colLen
				result = append(result, col)
			} else {
				// else just add the tail
				usedWidth += tailLen
				result = append(result, tail)
				break
			}
		} else {
			// when last
			if usedWidth+colLen <= m.Width {
				// last item fits
				result = append(result, col)
			} else if usedWidth+tailLen <= m.Width {
				// tail fits
				result = append(result, tail)
			}
			// nothing fits
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, result...)
}
