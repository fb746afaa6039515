package value

import "math"

// Options bounds a validation. Min is the floor (zero value 0). Max and
// PreviousValid are optional.
type Options struct {
	Min           float64
	Max           *float64
	PreviousValid *float64
}

// Bound returns a pointer for use in Options.
func Bound(v float64) *float64 { return &v }

// Validate reconciles a parsed number with its allowed range.
//
// When ok is false, or parsed is NaN or infinite, there is nothing new to
// validate and current is returned. Below Min the result is Min. Above Max the result reverts to
// PreviousValid when one is known and caps at Max otherwise: overshooting
// the ceiling is treated as a typo, undershooting the floor as a clamp.
func Validate(parsed float64, ok bool, current float64, opts Options) float64 {
	if !ok || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return current
	}
	r := Round9(parsed)
	if r < opts.Min {
		return opts.Min
	}
	if opts.Max != nil && r > *opts.Max {
		if opts.PreviousValid != nil {
			return *opts.PreviousValid
		}
		return *opts.Max
	}
	return r
}
