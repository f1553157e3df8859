// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.BaseKeyMap = keyMap
	}
}

// WithInput adds an input on its own row.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{items: []int{len(form.items)}})
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
	}
}

// WithRow adds inputs side by side. Focus order follows the argument order.
func WithRow[T any](inputs ...IdentifiedInput) NewOpt[T] {
	return func(form *Form[T]) {
		if len(inputs) == 0 {
			return
		}
		var row formRow
		for _, in := range inputs {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{id: in.ID, input: in.Input})
		}
		form.rows = append(form.rows, row)
	}
}

type IdentifiedInput struct {
	ID    string
	Input FormInput
}
