package tooltip

import (
	"github.com/charmbracelet/lipgloss"

	"valuestep/internal/tui/util"
)

// View renders a hint bubble with a caret pointing down at the control
// below it, or nothing when show is false.
func View(text string, show, noColor bool) string {
	if !show {
		return ""
	}
	if noColor {
		return "(" + text + ")\n" + caret(text)
	}
	p := util.DefaultPalette()
	bubble := lipgloss.NewStyle().
		Background(p.Field).
		Foreground(p.Text).
		Padding(0, 1).
		Render(text)
	tip := lipgloss.NewStyle().Foreground(p.Field).Render(caret(text))
	return lipgloss.JoinVertical(lipgloss.Center, bubble, tip)
}

func caret(text string) string {
	return lipgloss.PlaceHorizontal(lipgloss.Width(text)+2, lipgloss.Center, "▾")
}
