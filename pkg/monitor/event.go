package monitor

import (
	"github.com/iotaledger/hive.go/stringify"
)

// Event describes a single detected mutation of a monitored value. It carries
// the value before and after the change and, if one was attached to the
// mutating operation, a caller-supplied tag.
type Event[T comparable] struct {
	// Old is the value immediately before the change.
	Old T

	// New is the value immediately after the change.
	New T

	// Tag is the caller-supplied annotation of the change (only meaningful if
	// Tagged is true).
	Tag string

	// Tagged indicates whether a tag was attached to the mutating operation.
	Tagged bool
}

// String returns a human-readable version of the Event.
func (e *Event[T]) String() string {
	return stringify.Struct("Event",
		stringify.NewStructField("old", e.Old),
		stringify.NewStructField("new", e.New),
		stringify.NewStructField("tag", e.Tag),
		stringify.NewStructField("tagged", e.Tagged),
	)
}
