package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors shared by the control's widgets.
type Palette struct {
	Surface   lipgloss.Color // panel background
	Field     lipgloss.Color // text field and selector track
	Hover     lipgloss.Color // hovered field or button
	Indicator lipgloss.Color // selected unit pill
	Focus     lipgloss.Color // focus ring
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
}

// DefaultPalette returns the default dark palette.
func DefaultPalette() Palette {
	return Palette{
		Surface:   lipgloss.Color("#151515"),
		Field:     lipgloss.Color("#212121"),
		Hover:     lipgloss.Color("#3B3B3B"),
		Indicator: lipgloss.Color("#424242"),
		Focus:     lipgloss.Color("#3C67FF"),
		Text:      lipgloss.Color("#F9F9F9"),
		Muted:     lipgloss.Color("#AAAAAA"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
	}
}
