// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models in a row or column and splits the
// available size between them.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/ui/tui/util"
	"github.com/toeirei/numinput/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items        []Item
	size         util.Size
	focusedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	}

	cmds := slicest.Map(s.items, func(item Item) tea.Cmd {
		filtered := applyMessageFilters(*item.Model, msg, item.MsgFilters)
		filtered = applyMessageFilters(*item.Model, filtered, s.MsgFilters)
		if filtered == nil {
			return nil
		}
		return (*item.Model).Update(filtered)
	})

	// children may change their preferred size on any message
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size + margin).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size + margin).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	return joiner(
		s.Align,
		slicest.MapI(s.items, func(i int, item Item) string {
			if item.size == 0 {
				return ""
			}
			// no gap before the first item
			margin := s.Gap * min(i, 1)
			return styler(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focusedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))
		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}
		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focusedIndex].Model).Focus()
}

func (s *Model) Blur() tea.Cmd {
	if len(s.items) == 0 {
		return nil
	}
	if s.focusedIndex == FocusAll() {
		return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
			return (*item.Model).Blur()
		})...)
	}
	return (*s.items[s.focusedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

// SetFocus blurs the current focus target and focuses the new one.
func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	blurCmd := s.Blur()
	s.focusedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	focusCmd, keyMap := s.Focus()
	return tea.Batch(blurCmd, focusCmd), keyMap
}
