// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/numinput/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	}

	// keys belong to the top popup, everything else (timers) also reaches
	// the models underneath
	if _, ok := msg.(tea.KeyMsg); ok || len(m.popups) == 0 {
		return (*m.activeModel()).Update(msg)
	}
	return tea.Batch(
		(*m.activeModel()).Update(msg),
		(*m.child).Update(msg),
	)
}

// overlay centres fg on top of bg. fg is cut to fit.
func overlay(bg, fg string) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, fgHeight := lipgloss.Size(fg)

	left := (bgWidth - fgWidth) / 2
	top := (bgHeight - fgHeight) / 2

	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := i + top
		if row >= len(bgLines) {
			break
		}
		bgLeft := ansi.Truncate(bgLines[row], left, "")
		bgRight := ansi.TruncateLeft(bgLines[row], left+fgWidth, "")
		bgLines[row] = bgLeft + line + bgRight
	}

	return strings.Join(bgLines, "\n")
}

func (m Injector) View() string {
	childView := (*m.child).View()

	if len(m.popups) > 0 {
		popupView := lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			Margin(0, 1).
			Render((*m.activeModel()).View())

		childView = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{
				Light: "#DDDADA",
				Dark:  "#3C3C3C",
			}).
			Render(ansi.Strip(childView))

		return overlay(childView, popupView)
	}
	return childView
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() tea.Cmd {
	return (*m.activeModel()).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Injector)(nil)

// Depth returns the number of open popups.
func (m *Injector) Depth() int { return len(m.popups) }

func (m *Injector) open(p popup) tea.Cmd {
	blurCmd := m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		blurCmd,
		(*p.model).Init(),
		m.focusActiveModel(),
		(*m.activeModel()).Update(m.popupSize()),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}

	blurCmd := m.Blur()
	var onCloseCmd tea.Cmd
	if p := m.popups[len(m.popups)-1]; p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	m.popups = m.popups[:len(m.popups)-1]

	return tea.Batch(
		blurCmd,
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}
