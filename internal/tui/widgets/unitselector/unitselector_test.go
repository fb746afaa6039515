package unitselector

import (
	"strings"
	"testing"

	"valuestep/internal/value"
)

func TestSelectedSegmentBracketed(t *testing.T) {
	if out := View(value.Percent, true); out != "[%] px " {
		t.Fatalf("unexpected percent selector: %q", out)
	}
	if out := View(value.Pixel, true); out != " % [px]" {
		t.Fatalf("unexpected pixel selector: %q", out)
	}
}

func TestColoredKeepsLabels(t *testing.T) {
	out := View(value.Pixel, false)
	if !strings.Contains(out, "%") || !strings.Contains(out, "px") {
		t.Fatalf("missing labels: %q", out)
	}
}
