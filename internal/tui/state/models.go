package state

import "valuestep/internal/value"

const (
	// DefaultValue is the value a freshly mounted control shows.
	DefaultValue = 1.0
	// StepSize is the amount the +/- controls add or remove.
	StepSize = 0.1
)

// Tooltip texts shown while hovering a disabled step control.
const (
	MinTooltip = "Value must greater than 0"
	MaxTooltip = "Value must smaller than 100"
)

// Outcome classifies what a commit did with the typed text.
type Outcome int

const (
	Accepted Outcome = iota
	Clamped
	Reverted
)

func (o Outcome) String() string {
	switch o {
	case Clamped:
		return "clamped"
	case Reverted:
		return "reverted"
	default:
		return "accepted"
	}
}

// Commit records the most recent blur: what was typed and what stuck.
type Commit struct {
	Raw     string
	Text    string
	Outcome Outcome
}

// State is the full state vector of one stepper control. Every transition
// in reducers.go takes a State and returns the next one.
type State struct {
	// Unit & value
	Unit  value.Unit
	Value float64 // last accepted number, provisional while typing
	Text  string  // exactly what the field shows

	// Revert target for an invalid commit
	PreviousValid float64

	// Interaction
	Focused    bool
	HoverMinus bool
	HoverPlus  bool
	HoverField bool

	// Last commit, if any
	Last      Commit
	Committed bool

	// Notices and ephemeral messages
	Notice string
}

// New returns the state of a freshly mounted control: 1 in percent.
func New() State {
	return State{
		Unit:          value.Percent,
		Value:         DefaultValue,
		Text:          value.Format(DefaultValue),
		PreviousValid: DefaultValue,
	}
}

// Mount returns a control starting at v in unit u. v is validated the way a
// commit would be, so an out-of-range start reverts to DefaultValue.
func Mount(u value.Unit, v float64) State {
	s := New()
	s.Unit = u
	got := value.Validate(v, true, DefaultValue, u.Options(DefaultValue))
	s.Value = got
	s.Text = value.Format(got)
	s.PreviousValid = got
	return reconcile(s)
}
