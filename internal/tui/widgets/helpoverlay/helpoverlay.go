package helpoverlay

import (
	"fmt"
	"strings"

	"valuestep/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.State) string {
	mode := "IDLE"
	if s.Focused {
		mode = "EDIT"
	}
	sections := []struct {
		title string
		keys  []string
	}{
		{"Value", []string{"tab/enter: edit field", "enter/esc/tab: commit", "+/→: step up 0.1", "-/←: step down 0.1"}},
		{"Unit", []string{"%: percent", "p: pixels", "u: toggle"}},
		{"Pointer", []string{"h/l: move hover between -, field and +"}},
		{"Other", []string{"y: copy value", "?: close help", "q: quit"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
