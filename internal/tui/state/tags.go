package state

// TagKind enumerates the status chips shown under the control.
type TagKind int

const (
	// Stable ordering for display: Editing, Clamped, Reverted, At Min, At Max, Prev
	EDITING TagKind = iota
	CLAMPED
	REVERTED
	AT_MIN
	AT_MAX
	PREV
)

// Tag represents a single status chip. Value carries the number for PREV;
// other tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value float64
}
