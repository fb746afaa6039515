package helpoverlay

import (
	"strings"
	"testing"

	"valuestep/internal/tui/state"
)

func TestHelpShowsMode(t *testing.T) {
	h := NewHelpOverlay()
	if out := h.View(state.New()); !strings.Contains(out, "Mode: IDLE") || !strings.Contains(out, "Unit:") {
		t.Fatalf("unexpected help: %s", out)
	}
	if out := h.View(state.Focus(state.New())); !strings.Contains(out, "Mode: EDIT") {
		t.Fatalf("expected EDIT mode in help")
	}
}
