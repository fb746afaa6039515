package field

import (
	"strings"
	"testing"

	"valuestep/internal/tui/state"
)

func TestIdleRow(t *testing.T) {
	f := NewField()
	s := state.New()
	if out := f.View(s, s.Text, true); out != "[-][ 1 ][+]" {
		t.Fatalf("unexpected idle row: %q", out)
	}
}

func TestDisabledAndHover(t *testing.T) {
	f := NewField()
	s := state.Blur(state.Edit(state.Focus(state.New()), "0"))
	s = state.Hover(s, true, false, false)
	if out := f.View(s, s.Text, true); out != "(-)*[ 0 ][+]" {
		t.Fatalf("unexpected disabled row: %q", out)
	}
	s = state.Blur(state.Edit(state.Focus(s), "100"))
	s = state.Hover(s, false, true, false)
	if out := f.View(s, s.Text, true); out != "[-][ 100 ]*(+)" {
		t.Fatalf("unexpected max row: %q", out)
	}
}

func TestFocusedUsesBraces(t *testing.T) {
	f := NewField()
	s := state.Edit(state.Focus(state.New()), "12,")
	if out := f.View(s, s.Text, true); out != "[-]{ 12. }[+]" {
		t.Fatalf("unexpected focused row: %q", out)
	}
	if out := f.View(s, s.Text, false); !strings.Contains(out, "12.") {
		t.Fatalf("colored row lost the text: %q", out)
	}
}
