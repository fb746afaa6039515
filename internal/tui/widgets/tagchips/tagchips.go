package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"valuestep/internal/tui/state"
	"valuestep/internal/tui/util"
	"valuestep/internal/value"
)

// View renders status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, unit value.Unit, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, unit, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, unit value.Unit, noColor bool) string {
	label := chipLabel(t, unit)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(" " + label + " ")
}

func chipLabel(t state.Tag, unit value.Unit) string {
	switch t.Kind {
	case state.EDITING:
		return "Editing"
	case state.CLAMPED:
		return "Clamped"
	case state.REVERTED:
		return "Reverted"
	case state.AT_MIN:
		return "Min"
	case state.AT_MAX:
		return "Max"
	case state.PREV:
		return fmt.Sprintf("Prev %s%s", value.Format(t.Value), unit)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch t.Kind {
	case state.EDITING:
		return base.Background(p.Focus).Foreground(p.Text)
	case state.CLAMPED:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.REVERTED:
		return base.Background(p.Danger).Foreground(p.Text)
	case state.AT_MIN, state.AT_MAX:
		return base.Background(p.Indicator).Foreground(p.Muted)
	case state.PREV:
		return base.Background(p.Field).Foreground(p.Muted)
	default:
		return base
	}
}
