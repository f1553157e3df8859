// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/numinput/ui/tui/util"
	"github.com/toeirei/numinput/util/slicest"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches
// an item.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

// KeyMsgFilter drops key messages so an item only reacts to everything else.
func KeyMsgFilter(_ util.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	return msg
}

func applyMessageFilters(model util.Model, msg tea.Msg, filters []MsgFilter) tea.Msg {
	return slicest.ReduceD(filters, msg, func(filter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return filter(model, msg)
	})
}
