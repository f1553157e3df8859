// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	h := NewHandler("numinput v1", " | ")
	require.Equal(t, "numinput v1", h.Title())

	require.Nil(t, h.Handle(tea.KeyMsg{}))
	require.NotNil(t, h.Handle(Set("Calculator")()))
	require.Equal(t, "numinput v1 | Calculator", h.Title())
	require.Nil(t, h.Handle(Set("Calculator")()), "unchanged titles are not re-sent")

	h.Handle(Set("")())
	require.Equal(t, "numinput v1", h.Title())
}
