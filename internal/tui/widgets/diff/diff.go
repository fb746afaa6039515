package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"valuestep/internal/tui/state"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = delLine.Strikethrough(true)
	addChar = addLine.Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View shows how the last commit rewrote the typed text. It returns an
// empty string when there is no commit or the text was kept as typed.
// Without color the output uses wdiff markers: [-removed-]{+added+}.
func (DiffView) View(c state.Commit, committed, noColor bool) string {
	if !committed || c.Raw == c.Text {
		return ""
	}
	d := dmp.New()
	diffs := d.DiffMain(c.Raw, c.Text, false)
	diffs = d.DiffCleanupSemantic(diffs)

	var b strings.Builder
	if noColor {
		b.WriteString("typed: ")
	} else {
		b.WriteString(faint.Render("typed: "))
	}
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			if noColor {
				b.WriteString("[-" + df.Text + "-]")
			} else {
				b.WriteString(delChar.Render(df.Text))
			}
		case dmp.DiffInsert:
			if noColor {
				b.WriteString("{+" + df.Text + "+}")
			} else {
				b.WriteString(addChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			b.WriteString(df.Text)
		}
	}
	return b.String()
}
