package reconcile

import "errors"

// Outcome is the result of recording a swipe.
type Outcome int

const (
	// Applied means the event replaced the monument's stored state.
	Applied Outcome = iota + 1
	// SkippedDuplicate means the event was already the stored state.
	SkippedDuplicate
)

// String returns the metric/log label of the outcome.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// ErrInvalidEvent is returned when a required event field is empty.
var ErrInvalidEvent = errors.New("invalid swipe event")
