package statusbar

import (
	"fmt"
	"strings"

	"valuestep/internal/tui/state"
	"valuestep/internal/value"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting the control's state.
func (StatusBar) View(s state.State) string {
	mode := "[IDLE]"
	if s.Focused {
		mode = "[EDIT]"
	}
	unit := "Unit: " + s.Unit.String()
	val := "Value: " + value.Format(s.Value)
	prev := "Prev: " + value.Format(s.PreviousValid)

	parts := []string{mode, unit, val, prev}
	if s.Committed {
		parts = append(parts, fmt.Sprintf("Last: %s", s.Last.Outcome))
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
