package unitselector

import (
	"github.com/charmbracelet/lipgloss"

	"valuestep/internal/tui/util"
	"valuestep/internal/value"
)

const segmentWidth = 6

// View renders the two-segment unit toggle. The selected segment carries
// the indicator background; without color it is bracketed instead.
func View(selected value.Unit, noColor bool) string {
	units := []value.Unit{value.Percent, value.Pixel}
	if noColor {
		out := ""
		for _, u := range units {
			label := u.String()
			if u == selected {
				out += "[" + label + "]"
			} else {
				out += " " + label + " "
			}
		}
		return out
	}

	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Width(segmentWidth).Align(lipgloss.Center)
	segs := make([]string, 0, len(units))
	for _, u := range units {
		st := base.Foreground(p.Muted).Background(p.Field)
		if u == selected {
			st = base.Foreground(p.Text).Background(p.Indicator).Bold(true)
		}
		segs = append(segs, st.Render(u.String()))
	}
	track := lipgloss.NewStyle().Background(p.Field).Padding(0, 1)
	return track.Render(lipgloss.JoinHorizontal(lipgloss.Top, segs...))
}
