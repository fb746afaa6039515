package sectiontitle

import (
	"github.com/charmbracelet/lipgloss"

	"valuestep/internal/tui/util"
)

// Width is the column every title is padded to so controls line up.
const Width = 8

// View renders a muted row label such as "Unit" or "Value".
func View(text string, noColor bool) string {
	style := lipgloss.NewStyle().Width(Width)
	if !noColor {
		style = style.Foreground(util.DefaultPalette().Muted)
	}
	return style.Render(text)
}
