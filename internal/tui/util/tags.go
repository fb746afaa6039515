package util

import (
	"valuestep/internal/tui/state"
)

// ComputeTags derives the status chips for the control.
//
// The returned slice preserves a stable order:
//
//	Editing, Clamped, Reverted, At Min, At Max, Prev
//
// Rules:
//   - Editing reflects an edit in progress.
//   - Clamped and Reverted describe the last commit and are mutually
//     exclusive; they are hidden while editing so they never describe
//     text the user is still changing.
//   - At Min / At Max mirror the disabled step controls.
//   - Prev (the revert target) is always included.
func ComputeTags(s state.State) []state.Tag {
	tags := make([]state.Tag, 0, 6)

	// 1) Editing
	if s.Focused {
		tags = append(tags, state.Tag{Kind: state.EDITING})
	}

	// 2) / 3) last commit outcome
	if s.Committed && !s.Focused {
		switch s.Last.Outcome {
		case state.Clamped:
			tags = append(tags, state.Tag{Kind: state.CLAMPED})
		case state.Reverted:
			tags = append(tags, state.Tag{Kind: state.REVERTED})
		}
	}

	// 4) / 5) bounds
	if state.DecrementDisabled(s) {
		tags = append(tags, state.Tag{Kind: state.AT_MIN})
	}
	if state.IncrementDisabled(s) {
		tags = append(tags, state.Tag{Kind: state.AT_MAX})
	}

	// 6) revert target
	tags = append(tags, state.Tag{Kind: state.PREV, Value: s.PreviousValid})

	return tags
}
