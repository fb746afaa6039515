package sectiontitle

import "testing"

func TestPaddedToWidth(t *testing.T) {
	if out := View("Unit", true); out != "Unit    " {
		t.Fatalf("unexpected title: %q", out)
	}
}
