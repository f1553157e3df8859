// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/numinput/internal/i18n"
)

type KeyMap struct {
	Exit key.Binding
	Help key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Exit, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Help, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap uses f1 for help since "?" is valid text in a title.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("root.exit")),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", i18n.T("root.help")),
		),
	}
}
