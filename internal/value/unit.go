package value

import (
	"fmt"
	"math"
	"strings"
)

// Unit selects how the value is interpreted and which ceiling applies.
type Unit int

const (
	Percent Unit = iota
	Pixel
)

// MaxPercent is the ceiling for Percent values.
const MaxPercent = 100.0

func (u Unit) String() string {
	if u == Pixel {
		return "px"
	}
	return "%"
}

// Max returns the inclusive upper bound for u, or +Inf when unbounded.
func (u Unit) Max() float64 {
	if u == Percent {
		return MaxPercent
	}
	return math.Inf(1)
}

// Bounded reports whether u has a finite ceiling.
func (u Unit) Bounded() bool { return u == Percent }

// InRange reports whether v lies within [0, u.Max()].
func (u Unit) InRange(v float64) bool {
	return v >= 0 && v <= u.Max()
}

// Options returns validation options for u with prev as the revert target.
func (u Unit) Options(prev float64) Options {
	opts := Options{PreviousValid: Bound(prev)}
	if u.Bounded() {
		opts.Max = Bound(u.Max())
	}
	return opts
}

// ParseUnit accepts "%", "percent", "px" and "pixel" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "%", "percent", "pct":
		return Percent, nil
	case "px", "pixel", "pixels":
		return Pixel, nil
	}
	return Percent, fmt.Errorf("unknown unit %q (want %% or px)", s)
}
