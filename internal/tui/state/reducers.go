package state

import (
	"math"
	"strings"

	"valuestep/internal/value"
)

// SelectUnit switches the unit. Moving to percent clamps anything above 100
// down to 100 and makes 100 the revert target.
func SelectUnit(s State, u value.Unit) State {
	if u == value.Percent && s.Value > value.MaxPercent {
		s.Value = value.MaxPercent
		s.Text = value.Format(value.MaxPercent)
		s.PreviousValid = value.MaxPercent
		s.Notice = "Clamped to 100%"
	}
	s.Unit = u
	return reconcile(s)
}

// ToggleUnit flips between percent and pixels.
func ToggleUnit(s State) State {
	if s.Unit == value.Percent {
		return SelectUnit(s, value.Pixel)
	}
	return SelectUnit(s, value.Percent)
}

// Step adds delta to the number currently in the field (or the last
// accepted value when the field does not parse). The result is always in
// range, so it also becomes the revert target. Stepping a disabled control
// is a no-op.
func Step(s State, delta float64) State {
	if delta < 0 && DecrementDisabled(s) {
		return s
	}
	if delta > 0 && IncrementDisabled(s) {
		return s
	}
	base, ok := value.Extract(s.Text)
	if !ok {
		base = s.Value
	}
	next := math.Max(0, value.Round9(base+delta))
	if s.Unit == value.Percent && next > value.MaxPercent {
		next = value.MaxPercent
	}
	s.PreviousValid = next
	s.Value = next
	s.Text = value.Format(next)
	s.Notice = ""
	return reconcile(s)
}

// Increment steps up by StepSize.
func Increment(s State) State { return Step(s, StepSize) }

// Decrement steps down by StepSize.
func Decrement(s State) State { return Step(s, -StepSize) }

// Edit applies a keystroke: the text is kept as typed (commas become
// points) and the value follows whenever the text parses. No clamping
// happens until the field is committed.
func Edit(s State, text string) State {
	text = strings.ReplaceAll(text, ",", ".")
	s.Text = text
	if v, ok := value.Extract(text); ok {
		s.Value = v
	}
	return reconcile(s)
}

// Focus starts an edit and snapshots the value to revert to.
func Focus(s State) State {
	if s.Focused {
		return s
	}
	s.Focused = true
	s.PreviousValid = s.Value
	s.Notice = ""
	return reconcile(s)
}

// Blur commits the field. An in-range number is accepted (rounded), a
// negative one clamps to 0, and anything else (too large, unparseable)
// reverts to the previous valid value.
func Blur(s State) State {
	s.Focused = false
	raw := s.Text
	v, ok := value.Extract(raw)
	if ok {
		if r := value.Round9(v); s.Unit.InRange(r) {
			s.PreviousValid = r
		}
	}
	got := value.Validate(v, ok, s.PreviousValid, s.Unit.Options(s.PreviousValid))
	s.Value = got
	s.Text = value.Format(got)
	s.PreviousValid = got

	s.Last = Commit{Raw: raw, Text: s.Text, Outcome: outcome(v, ok, s.Unit)}
	s.Committed = true
	switch s.Last.Outcome {
	case Clamped:
		s.Notice = "Clamped to 0"
	case Reverted:
		s.Notice = "Reverted to " + s.Text + s.Unit.String()
	default:
		s.Notice = ""
	}
	return reconcile(s)
}

// Hover updates the rendering layer's hover flags. Values are untouched.
func Hover(s State, minus, field, plus bool) State {
	s.HoverMinus = minus
	s.HoverField = field
	s.HoverPlus = plus
	return reconcile(s)
}

// DecrementDisabled reports whether the minus control is inert.
func DecrementDisabled(s State) bool { return s.Value <= 0 }

// IncrementDisabled reports whether the plus control is inert.
func IncrementDisabled(s State) bool {
	return s.Unit == value.Percent && s.Value >= value.MaxPercent
}

// ShowMinTooltip reports whether the "must be greater than 0" hint shows.
func ShowMinTooltip(s State) bool { return DecrementDisabled(s) && s.HoverMinus }

// ShowMaxTooltip reports whether the "must be smaller than 100" hint shows.
func ShowMaxTooltip(s State) bool { return IncrementDisabled(s) && s.HoverPlus }

// reconcile keeps PreviousValid in step with an in-range value whenever
// the user is not mid-edit. It runs at the end of every transition.
func reconcile(s State) State {
	if !s.Focused && s.Unit.InRange(s.Value) {
		s.PreviousValid = s.Value
	}
	if s.Unit == value.Percent && s.Value == value.MaxPercent {
		s.PreviousValid = value.MaxPercent
	}
	return s
}

func outcome(v float64, ok bool, u value.Unit) Outcome {
	if !ok {
		return Reverted
	}
	r := value.Round9(v)
	switch {
	case r < 0:
		return Clamped
	case !u.InRange(r):
		return Reverted
	default:
		return Accepted
	}
}
