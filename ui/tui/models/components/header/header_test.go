// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestSizeConfig_HidesOnSmallTerminals(t *testing.T) {
	m := New("")
	require.Equal(t, 4, SizeConfig.Calculate(m, 40, 40))
	require.Equal(t, 0, SizeConfig.Calculate(m, 12, 12))

	m.Subtitle = "v1.0.0"
	require.Equal(t, 5, SizeConfig.Calculate(m, 40, 40))
}

func TestView_ShowsSubtitle(t *testing.T) {
	m := New("v1.0.0")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	view := m.View()
	require.Contains(t, view, "v1.0.0")
	require.Len(t, strings.Split(view, "\n"), 5)
}
