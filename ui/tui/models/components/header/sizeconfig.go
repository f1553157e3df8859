// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/ui/tui/models/components/stack"
	"github.com/toeirei/numinput/ui/tui/util"
)

// minContentHeight is kept free for the content below the header.
const minContentHeight = 10

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the header on small terminals.
func (s *sizeConfig) Calculate(model util.Model, _ int, total int) int {
	height := lipgloss.Height(logo) + 1
	if h, ok := model.(*Model); ok && h.Subtitle != "" {
		height++
	}
	if total >= minContentHeight+height {
		return height
	}
	return 0
}
