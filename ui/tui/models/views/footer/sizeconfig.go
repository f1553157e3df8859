// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/numinput/ui/tui/models/components/stack"
	"github.com/toeirei/numinput/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

// Calculate grows the footer with the help text plus its top border.
func (s *sizeConfig) Calculate(model util.Model, _ int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return lipgloss.Height(footer.help.View()) + 1
	}
	return 2
}
