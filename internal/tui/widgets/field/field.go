package field

import (
	"github.com/charmbracelet/lipgloss"

	"valuestep/internal/tui/state"
	"valuestep/internal/tui/util"
)

const inputWidth = 10

type Field struct{}

func NewField() Field { return Field{} }

// View renders the minus button, the text field and the plus button on one
// row. input is what the field shows; while editing callers pass the text
// input's own view so the cursor is drawn.
func (Field) View(s state.State, input string, noColor bool) string {
	minusOff := state.DecrementDisabled(s)
	plusOff := state.IncrementDisabled(s)
	if noColor {
		return asciiButton("-", minusOff, s.HoverMinus) +
			asciiField(input, s.Focused, s.HoverField) +
			asciiButton("+", plusOff, s.HoverPlus)
	}

	p := util.DefaultPalette()
	bg := p.Field
	if s.HoverField && !s.Focused {
		bg = p.Hover
	}
	button := func(label string, off, hover bool) string {
		st := lipgloss.NewStyle().Padding(0, 1).Background(bg).Foreground(p.Text)
		switch {
		case off:
			st = st.Foreground(p.Muted).Faint(true)
		case hover:
			st = st.Background(p.Hover)
		}
		return st.Render(label)
	}
	box := lipgloss.NewStyle().
		Width(inputWidth).
		Align(lipgloss.Center).
		Background(bg).
		Foreground(p.Text).
		Render(input)
	row := lipgloss.JoinHorizontal(lipgloss.Center, button("-", minusOff, s.HoverMinus), box, button("+", plusOff, s.HoverPlus))

	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Field)
	if s.Focused {
		frame = frame.BorderForeground(p.Focus)
	}
	return frame.Render(row)
}

// Disabled buttons use parentheses, hovered elements an asterisk and the
// field braces while editing.
func asciiButton(label string, off, hover bool) string {
	out := "[" + label + "]"
	if off {
		out = "(" + label + ")"
	}
	if hover {
		out += "*"
	}
	return out
}

func asciiField(input string, focused, hover bool) string {
	out := "[ " + input + " ]"
	if focused {
		out = "{ " + input + " }"
	}
	if hover {
		out += "*"
	}
	return out
}
