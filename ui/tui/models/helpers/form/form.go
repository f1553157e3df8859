// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/numinput/ui/tui/util"
	"github.com/toeirei/numinput/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// FocusDecliner is implemented by inputs that need to know when a blurred
// form turned down their ActionFocus request.
type FocusDecliner interface {
	FocusDeclined() tea.Cmd
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool
	BaseKeyMap       help.KeyMap

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)

	// non key messages (timers, results) reach every input, focused or not
	if !isKey {
		return f, f.broadcast(msg)
	}

	if f.focused {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}

		// pass msg to active input
		return f, f.updateInput(f.activeIndex, msg)
	}

	return f, nil
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(item_index int) string {
					return f.items[item_index].input.View(f.size.Width / len(row.items))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.keyMap(nil)
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, f.keyMap(keyMap)
}

func (f *Form[T]) Blur() tea.Cmd {
	f.focused = false
	if len(f.items) == 0 {
		return nil
	}
	return f.items[f.activeIndex].input.Blur()
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// Focused reports whether the form holds focus.
func (f *Form[T]) Focused() bool { return f.focused }

// ActiveID returns the id of the active input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// Input returns the input registered under id.
func (f *Form[T]) Input(id string) (FormInput, bool) {
	for _, item := range f.items {
		if item.id == id {
			return item.input, true
		}
	}
	return nil, false
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}

	return f.setActiveIndex(0)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	var submitCmd tea.Cmd
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.items))
	for i := range f.items {
		cmds[i] = f.updateInput(i, msg)
	}
	return tea.Batch(cmds...)
}

func (f *Form[T]) updateInput(index int, msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[index].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	case ActionFocus:
		if f.focused {
			actionCmd = f.setActiveIndex(index)
		} else if d, ok := f.items[index].input.(FocusDecliner); ok {
			actionCmd = d.FocusDeclined()
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	index := (f.activeIndex + delta) % len(f.items)
	if index < 0 {
		index += len(f.items)
	}
	return f.setActiveIndex(index)
}

// setActiveIndex blurs the old input before focusing the new one so a
// commit on blur happens first.
func (f *Form[T]) setActiveIndex(index int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	if !f.focused {
		f.activeIndex = index
		return nil
	}

	var blurCmd tea.Cmd
	if index != f.activeIndex {
		blurCmd = f.items[f.activeIndex].input.Blur()
		f.activeIndex = index
	}

	focusCmd, keyMap := f.items[f.activeIndex].input.Focus()
	return tea.Batch(blurCmd, focusCmd, util.AnnounceKeyMapCmd(f.keyMap(keyMap)))
}

func (f *Form[T]) keyMap(inputKeyMap help.KeyMap) help.KeyMap {
	return util.MergeKeyMaps(inputKeyMap, DefaultKeyMap, f.BaseKeyMap)
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id == "" {
			continue
		}
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
