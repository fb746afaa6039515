package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"valuestep/internal/logx"
	"valuestep/internal/tui/state"
	"valuestep/internal/tui/util"
	"valuestep/internal/tui/widgets/diff"
	"valuestep/internal/tui/widgets/field"
	"valuestep/internal/tui/widgets/helpoverlay"
	"valuestep/internal/tui/widgets/sectiontitle"
	"valuestep/internal/tui/widgets/statusbar"
	"valuestep/internal/tui/widgets/tagchips"
	"valuestep/internal/tui/widgets/tooltip"
	"valuestep/internal/tui/widgets/unitselector"
	"valuestep/internal/value"
)

// Options configures the stepper program.
type Options struct {
	Unit    value.Unit
	Value   float64
	NoColor bool
	Log     *logrus.Logger
}

// Run shows the stepper and blocks until the user quits. It returns the
// last committed state; an edit still in progress is committed first.
func Run(opts Options) (state.State, error) {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return m.s, err
	}
	fm := final.(model)
	if fm.s.Focused {
		fm.s = state.Blur(fm.s)
	}
	return fm.s, nil
}

// ===== Model =====

// hover positions, left to right
const (
	hoverNone = iota - 1
	hoverMinus
	hoverField
	hoverPlus
)

type copiedMsg struct {
	text string
	err  error
}

type model struct {
	s     state.State
	input textinput.Model
	help  help.Model
	keys  keyMap

	hover    int
	showHelp bool
	noColor  bool
	log      *logrus.Logger
}

func newModel(opts Options) model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.Width = 8

	log := opts.Log
	if log == nil {
		log = logx.Discard()
	}
	s := state.Mount(opts.Unit, opts.Value)
	ti.SetValue(s.Text)
	return model{
		s:       s,
		input:   ti,
		help:    help.New(),
		keys:    defaultKeys(),
		hover:   hoverNone,
		noColor: util.NoColor(opts.NoColor),
		log:     log,
	}
}

func (m model) Init() tea.Cmd { return nil }

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.s.Notice = "Copy failed: " + msg.err.Error()
			m.log.WithError(msg.err).Warn("clipboard write failed")
		} else {
			m.s.Notice = "Copied " + msg.text
		}
		return m, nil

	case tea.KeyMsg:
		if m.s.Focused {
			return m.updateEditing(msg)
		}
		return m.updateIdle(msg)
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.apply("blur", state.Blur)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Commit):
		m.apply("blur", state.Blur)
		m.input.Blur()
		m.input.SetValue(m.s.Text)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if typed := m.input.Value(); typed != m.s.Text {
		m.apply("type", func(s state.State) state.State { return state.Edit(s, typed) })
		if m.s.Text != typed {
			m.input.SetValue(m.s.Text)
		}
	}
	return m, cmd
}

func (m model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Edit):
		m.apply("focus", state.Focus)
		m.input.SetValue(m.s.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Inc):
		m.apply("inc", state.Increment)
		m.input.SetValue(m.s.Text)
	case key.Matches(msg, m.keys.Dec):
		m.apply("dec", state.Decrement)
		m.input.SetValue(m.s.Text)
	case key.Matches(msg, m.keys.Percent):
		m.selectUnit(value.Percent)
	case key.Matches(msg, m.keys.Pixel):
		m.selectUnit(value.Pixel)
	case key.Matches(msg, m.keys.Toggle):
		if m.s.Unit == value.Percent {
			m.selectUnit(value.Pixel)
		} else {
			m.selectUnit(value.Percent)
		}
	case key.Matches(msg, m.keys.HoverPrev):
		m.moveHover(-1)
	case key.Matches(msg, m.keys.HoverNext):
		m.moveHover(1)
	case key.Matches(msg, m.keys.Copy):
		return m, copyValue(value.Format(m.s.Value) + m.s.Unit.String())
	}
	return m, nil
}

func (m *model) selectUnit(u value.Unit) {
	m.apply("unit", func(s state.State) state.State { return state.SelectUnit(s, u) })
	m.input.SetValue(m.s.Text)
}

// moveHover emulates the pointer: h/l walk across minus, field and plus.
func (m *model) moveHover(delta int) {
	m.hover += delta
	if m.hover < hoverMinus {
		m.hover = hoverMinus
	}
	if m.hover > hoverPlus {
		m.hover = hoverPlus
	}
	m.apply("hover", func(s state.State) state.State {
		return state.Hover(s, m.hover == hoverMinus, m.hover == hoverField, m.hover == hoverPlus)
	})
}

// apply runs one transition and logs the resulting state vector.
func (m *model) apply(event string, fn func(state.State) state.State) {
	before := m.s
	m.s = fn(m.s)
	entry := m.log.WithFields(logrus.Fields{
		"event": event,
		"unit":  m.s.Unit.String(),
		"value": value.Format(m.s.Value),
		"text":  m.s.Text,
		"prev":  value.Format(m.s.PreviousValid),
	})
	if event == "blur" && m.s.Last.Outcome != state.Accepted {
		entry.WithField("typed", m.s.Last.Raw).Infof("commit %s", m.s.Last.Outcome)
		return
	}
	if event == "unit" && before.Value != m.s.Value {
		entry.Info("unit switch clamped value")
		return
	}
	entry.Debug("transition")
}

func copyValue(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// ===== Views =====

var titleStyle = lipgloss.NewStyle().Bold(true)

func (m model) View() string {
	if m.showHelp {
		return helpoverlay.NewHelpOverlay().View(m.s)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("valuestep") + "\n\n")
	b.WriteString(sectiontitle.View("Unit", m.noColor) + unitselector.View(m.s.Unit, m.noColor) + "\n\n")

	if tip := m.tooltip(); tip != "" {
		b.WriteString(tip + "\n")
	}
	input := m.s.Text
	if m.s.Focused {
		input = m.input.View()
	}
	row := field.NewField().View(m.s, input, m.noColor)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, sectiontitle.View("Value", m.noColor), row) + "\n\n")

	b.WriteString(tagchips.View(util.ComputeTags(m.s), m.s.Unit, m.noColor) + "\n")
	if d := diff.NewDiffView().View(m.s.Last, m.s.Committed, m.noColor); d != "" && !m.s.Focused {
		b.WriteString(d + "\n")
	}
	b.WriteString("\n" + statusbar.NewStatusBar().View(m.s) + "\n")
	if m.s.Focused {
		b.WriteString(m.help.View(editingHelp{m.keys}) + "\n")
	} else {
		b.WriteString(m.help.View(m.keys) + "\n")
	}
	return b.String()
}

// tooltip places the hint over the button it explains.
func (m model) tooltip() string {
	var tip string
	switch {
	case state.ShowMinTooltip(m.s):
		tip = tooltip.View(state.MinTooltip, true, m.noColor)
	case state.ShowMaxTooltip(m.s):
		tip = tooltip.View(state.MaxTooltip, true, m.noColor)
	default:
		return ""
	}
	return lipgloss.NewStyle().MarginLeft(sectiontitle.Width).Render(tip)
}
