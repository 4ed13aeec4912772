package monitor

import (
	"github.com/iotaledger/hive.go/runtime/options"
)

// WithEqualsFunc overrides the equality relation that is used for change
// detection. The default compares with ==, which misbehaves for types whose
// equality is not reflexive (NaN-bearing floats, for example); callers can
// supply a well-behaved relation here. The relation must be reflexive and
// consistent for detection to be correct.
func WithEqualsFunc[T comparable](equals func(currentValue T, newValue T) bool) options.Option[Cell[T]] {
	return func(c *Cell[T]) {
		c.equals = equals
	}
}

// WithCloneFunc overrides how values are copied out of the cell for
// snapshots, reads and event payloads. The default is a plain value copy;
// pointer-bearing types can supply a deep clone so that event payloads stay
// isolated from later mutations (usually combined with WithEqualsFunc, since
// == on fresh pointers never matches).
func WithCloneFunc[T comparable](clone func(value T) T) options.Option[Cell[T]] {
	return func(c *Cell[T]) {
		c.clone = clone
	}
}
