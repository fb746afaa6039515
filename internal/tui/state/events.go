package state

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"valuestep/internal/value"
)

// EventKind enumerates the actions a rendering layer can send.
type EventKind int

const (
	FocusEvent EventKind = iota
	BlurEvent
	EditEvent
	StepEvent
	UnitEvent
	HoverEvent
)

func (k EventKind) String() string {
	switch k {
	case FocusEvent:
		return "focus"
	case BlurEvent:
		return "blur"
	case EditEvent:
		return "type"
	case StepEvent:
		return "step"
	case UnitEvent:
		return "unit"
	case HoverEvent:
		return "hover"
	default:
		return "unknown"
	}
}

// HoverTarget names an element that can be hovered.
type HoverTarget int

const (
	HoverMinusTarget HoverTarget = iota
	HoverFieldTarget
	HoverPlusTarget
)

// Event is one user action. Only the fields relevant to Kind are read.
type Event struct {
	Kind   EventKind
	Text   string      // EditEvent
	Delta  float64     // StepEvent
	Unit   value.Unit  // UnitEvent
	Target HoverTarget // HoverEvent
	On     bool        // HoverEvent
}

// Apply runs the transition for e.
func Apply(s State, e Event) State {
	switch e.Kind {
	case FocusEvent:
		return Focus(s)
	case BlurEvent:
		return Blur(s)
	case EditEvent:
		return Edit(s, e.Text)
	case StepEvent:
		return Step(s, e.Delta)
	case UnitEvent:
		return SelectUnit(s, e.Unit)
	case HoverEvent:
		minus, field, plus := s.HoverMinus, s.HoverField, s.HoverPlus
		switch e.Target {
		case HoverMinusTarget:
			minus = e.On
		case HoverFieldTarget:
			field = e.On
		case HoverPlusTarget:
			plus = e.On
		}
		return Hover(s, minus, field, plus)
	}
	return s
}

// ErrUnknownEvent is returned for a script line with an unrecognised verb.
var ErrUnknownEvent = errors.New("unknown event")

// ParseEvent parses one script line:
//
//	focus | blur | type <text> | step +|- | inc | dec | unit %|px |
//	hover minus|field|plus on|off
func ParseEvent(line string) (Event, error) {
	verb, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	arg := strings.TrimSpace(rest)
	switch strings.ToLower(verb) {
	case "focus":
		return Event{Kind: FocusEvent}, nil
	case "blur", "commit":
		return Event{Kind: BlurEvent}, nil
	case "type":
		// keep inner spacing: the field stores text verbatim
		return Event{Kind: EditEvent, Text: strings.TrimRight(rest, "\r")}, nil
	case "inc":
		return Event{Kind: StepEvent, Delta: StepSize}, nil
	case "dec":
		return Event{Kind: StepEvent, Delta: -StepSize}, nil
	case "step":
		switch arg {
		case "+":
			return Event{Kind: StepEvent, Delta: StepSize}, nil
		case "-":
			return Event{Kind: StepEvent, Delta: -StepSize}, nil
		}
		return Event{}, fmt.Errorf("step wants + or -, got %q", arg)
	case "unit":
		u, err := value.ParseUnit(arg)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: UnitEvent, Unit: u}, nil
	case "hover":
		return parseHover(arg)
	}
	return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, verb)
}

func parseHover(arg string) (Event, error) {
	fields := strings.Fields(strings.ToLower(arg))
	if len(fields) != 2 {
		return Event{}, fmt.Errorf("hover wants <minus|field|plus> <on|off>, got %q", arg)
	}
	e := Event{Kind: HoverEvent}
	switch fields[0] {
	case "minus":
		e.Target = HoverMinusTarget
	case "field":
		e.Target = HoverFieldTarget
	case "plus":
		e.Target = HoverPlusTarget
	default:
		return Event{}, fmt.Errorf("unknown hover target %q", fields[0])
	}
	switch fields[1] {
	case "on":
		e.On = true
	case "off":
	default:
		return Event{}, fmt.Errorf("hover state must be on or off, got %q", fields[1])
	}
	return e, nil
}

// ParseScript reads one event per line. Blank lines and lines starting
// with # are skipped. Errors carry the 1-based line number.
func ParseScript(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		e, err := ParseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return events, nil
}

// Controller serialises transitions for hosts that deliver events from
// more than one goroutine. Each Dispatch applies one whole transition.
type Controller struct {
	mu sync.Mutex
	s  State
}

// NewController wraps an initial state.
func NewController(s State) *Controller { return &Controller{s: s} }

// Dispatch applies e and returns the resulting state.
func (c *Controller) Dispatch(e Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s = Apply(c.s, e)
	return c.s
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s
}
