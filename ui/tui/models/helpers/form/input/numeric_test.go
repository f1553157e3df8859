// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/numinput/core/numeric"
	"github.com/toeirei/numinput/ui/tui/models/helpers/form"
)

func newTestNumeric(t *testing.T, cfg numeric.Config) *Numeric {
	t.Helper()
	n, err := NewNumeric("Amount", cfg)
	require.NoError(t, err)
	return n
}

func typeInto(n *Numeric, text string) {
	n.input.SetValue("")
	n.control.Input("")
	for _, r := range text {
		n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func expire(n *Numeric) (tea.Cmd, form.Action) {
	return n.Update(errorExpiredMsg{owner: n.owner, id: n.control.PendingTimer()})
}

func TestNumeric_RejectsInvalidConfig(t *testing.T) {
	cfg := numeric.DefaultConfig()
	cfg.Min, cfg.Max = 10, 5

	_, err := NewNumeric("Broken", cfg)
	require.ErrorIs(t, err, numeric.ErrInvalidConfig)
}

func TestNumeric_InitialView(t *testing.T) {
	n := newTestNumeric(t, numeric.DefaultConfig())

	require.Equal(t, 1000, n.Get())
	require.Equal(t, "1,000", n.input.Value())

	view := n.View(40)
	require.Contains(t, view, "Amount")
	require.Contains(t, view, "1,000")
	require.Contains(t, view, "Allowed: 1 to 9,999,999")
}

func TestNumeric_TypingRegroupsAndBlurCommits(t *testing.T) {
	n := newTestNumeric(t, numeric.DefaultConfig())
	var changes []int
	n.Control().RegisterOnChange(func(v int) { changes = append(changes, v) })

	n.Focus()
	typeInto(n, "5000000")
	require.Equal(t, "5,000,000", n.input.Value())
	require.Empty(t, changes)

	cmd := n.Blur()
	require.Nil(t, cmd)
	require.Equal(t, 5000000, n.Get())
	require.True(t, n.Control().Flags().Success)
	require.Equal(t, []int{5000000}, changes)
}

func TestNumeric_InvalidTextShowsErrorUntilTimer(t *testing.T) {
	n := newTestNumeric(t, numeric.DefaultConfig())

	n.Focus()
	typeInto(n, "abc")
	require.Equal(t, "abc", n.input.Value())

	cmd := n.Blur()
	require.NotNil(t, cmd, "blur into the error state schedules the timer")
	require.Equal(t, numeric.Error, n.Control().State())
	require.Equal(t, "1,000", n.input.Value())
	require.Contains(t, n.View(40), "Invalid value")

	_, action := expire(n)
	require.Equal(t, form.ActionFocus, action, "a blurred input asks the form for focus")
	require.False(t, n.Control().Flags().Error)
	require.NotContains(t, n.View(40), "Invalid value")
}

func TestNumeric_TimerWhileFocusedRefocusesField(t *testing.T) {
	cfg := numeric.DefaultConfig()
	cfg.Min, cfg.Max, cfg.Step, cfg.Default = 10, 20, 7, 15
	n := newTestNumeric(t, cfg)

	n.Focus()
	cmd, action := n.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.NotNil(t, cmd)
	require.Equal(t, form.ActionNone, action)
	require.Equal(t, 20, n.Get())
	require.True(t, n.Control().Flags().Error)

	_, action = expire(n)
	require.Equal(t, form.ActionNone, action)
	require.True(t, n.input.Focused())
	require.Equal(t, numeric.Focused, n.Control().State())
}

func TestNumeric_IgnoresForeignAndStaleTimers(t *testing.T) {
	n := newTestNumeric(t, numeric.DefaultConfig())
	n.Focus()
	typeInto(n, "x")
	n.Blur()
	pending := n.control.PendingTimer()

	_, action := n.Update(errorExpiredMsg{owner: n.owner + 1, id: pending})
	require.Equal(t, form.ActionNone, action)
	require.True(t, n.Control().Flags().Error)

	n.Focus()
	_, action = n.Update(errorExpiredMsg{owner: n.owner, id: pending})
	require.Equal(t, form.ActionNone, action)
	require.Equal(t, numeric.Focused, n.Control().State())
}

func TestNumeric_StepKeys(t *testing.T) {
	cfg := numeric.DefaultConfig()
	cfg.Min, cfg.Max, cfg.Step, cfg.Default = 10, 20, 5, 15
	n := newTestNumeric(t, cfg)

	// keys are ignored until the form focuses the input
	n.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 15, n.Get())

	n.Focus()
	n.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 20, n.Get())
	require.Equal(t, "20", n.input.Value())
	n.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 20, n.Get())

	n.Update(tea.KeyMsg{Type: tea.KeyDown})
	n.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 10, n.Get())
	require.True(t, n.focused, "step keys keep the edit going")

	n.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, 15, n.Get())
}

func TestNumeric_EnterMovesOn(t *testing.T) {
	n := newTestNumeric(t, numeric.DefaultConfig())
	n.Focus()

	_, action := n.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, form.ActionNext, action)
}

func TestNumeric_SetGetReset(t *testing.T) {
	n := newTestNumeric(t, numeric.DefaultConfig())

	n.Set("2,500")
	require.Equal(t, 2500, n.Get())
	require.Equal(t, "2,500", n.input.Value())

	n.Set(-1)
	require.Equal(t, 1000, n.Get())

	n.Set(42)
	n.Reset()
	require.Equal(t, 1000, n.Get())
}

func TestNumeric_PlaceholderAndBackground(t *testing.T) {
	cfg := numeric.DefaultConfig()
	cfg.Placeholder = "amount"
	cfg.Background = "#202020"
	n := newTestNumeric(t, cfg)

	require.Equal(t, "amount", n.input.Placeholder)
	require.NotEmpty(t, n.View(30))
}

func TestNumeric_GermanLocale(t *testing.T) {
	cfg := numeric.DefaultConfig()
	cfg.Locale = "de"
	n := newTestNumeric(t, cfg)

	require.Equal(t, "1.000", n.input.Value())
	n.Focus()
	typeInto(n, "12345")
	require.Equal(t, "12.345", n.input.Value())
	n.Blur()
	require.Equal(t, 12345, n.Get())
}

type twoFields struct {
	First  int `mapstructure:"first"`
	Second int `mapstructure:"second"`
}

func TestNumeric_FormHandsFocusBackAfterError(t *testing.T) {
	first := newTestNumeric(t, numeric.DefaultConfig())
	second := newTestNumeric(t, numeric.DefaultConfig())
	f := form.New(
		form.WithInput[twoFields]("first", first),
		form.WithInput[twoFields]("second", second),
	)
	f.Focus()

	typeInto(first, "oops")
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "second", f.ActiveID())
	require.True(t, first.Control().Flags().Error)

	f, _ = f.Update(errorExpiredMsg{owner: first.owner, id: first.control.PendingTimer()})
	require.Equal(t, "first", f.ActiveID())
	require.True(t, first.focused)
	require.False(t, second.focused)
	require.Equal(t, 1000, first.Get())

	data, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, twoFields{First: 1000, Second: 1000}, data)
}

func TestNumeric_BlurredFormReleasesControl(t *testing.T) {
	first := newTestNumeric(t, numeric.DefaultConfig())
	second := newTestNumeric(t, numeric.DefaultConfig())
	f := form.New(
		form.WithInput[twoFields]("first", first),
		form.WithInput[twoFields]("second", second),
	)
	f.Focus()

	typeInto(first, "oops")
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	// a popup takes focus away from the whole form
	f.Blur()

	f, _ = f.Update(errorExpiredMsg{owner: first.owner, id: first.control.PendingTimer()})
	require.Equal(t, "second", f.ActiveID())
	require.False(t, first.focused)
	require.False(t, first.input.Focused())
	require.Equal(t, numeric.Idle, first.Control().State())

	f.Focus()
	require.Equal(t, numeric.Idle, first.Control().State())
	require.Equal(t, numeric.Focused, second.Control().State())
}

func TestNumeric_FormSetWritesValues(t *testing.T) {
	first := newTestNumeric(t, numeric.DefaultConfig())
	second := newTestNumeric(t, numeric.DefaultConfig())
	f := form.New(
		form.WithRow[twoFields](
			form.IdentifiedInput{ID: "first", Input: first},
			form.IdentifiedInput{ID: "second", Input: second},
		),
	)

	require.NoError(t, f.Set(twoFields{First: 7, Second: 99_999_999}))
	require.Equal(t, 7, first.Get())
	require.Equal(t, 1000, second.Get(), "out of range writes reset to the default")
	require.False(t, second.Control().Flags().Error)

	view := f.View()
	require.True(t, strings.Contains(view, "Amount"))
}
