package tooltip

import (
	"strings"
	"testing"
)

func TestHiddenRendersNothing(t *testing.T) {
	if out := View("hint", false, true); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestShownHasTextAndCaret(t *testing.T) {
	out := View("Value must greater than 0", true, true)
	if !strings.HasPrefix(out, "(Value must greater than 0)") {
		t.Fatalf("missing text: %q", out)
	}
	if !strings.Contains(out, "▾") {
		t.Fatalf("missing caret: %q", out)
	}
	if !strings.Contains(View("x", true, false), "x") {
		t.Fatalf("colored tooltip lost its text")
	}
}
