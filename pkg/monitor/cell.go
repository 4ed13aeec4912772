package monitor

import (
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
	"go.uber.org/atomic"
)

// Callback is the handler that a Cell invokes for every detected mutation.
// Panics raised by the handler propagate to the caller of the mutating
// operation.
type Callback[T comparable] func(event *Event[T])

// Cell wraps a single value, hands out scoped exclusive access for in-place
// mutation and invokes its Callback exactly when the value's content actually
// changed. Detected changes are queued and only delivered once the mutating
// borrow has been fully released, so a callback may safely re-enter the cell.
//
// A Cell is a single-owner, single-goroutine primitive: sharing an instance
// across goroutines without external synchronization is unsupported. The
// internal flags exist to fail fast on guard protocol violations, not to make
// the cell safe for concurrent use.
type Cell[T comparable] struct {
	// value holds the current value, exclusively owned by the cell.
	value T

	// callback is the single subscriber, fixed at construction.
	callback Callback[T]

	// equals is the equality relation used for change detection.
	equals func(currentValue T, newValue T) bool

	// clone copies values out of the cell for snapshots and event payloads.
	clone func(value T) T

	// queue holds detected changes that were not delivered yet.
	queue []*Event[T]

	// borrowed indicates that a guard is outstanding.
	borrowed atomic.Bool

	// draining indicates that the queue is currently being delivered.
	draining atomic.Bool
}

// NewCell creates a new Cell holding the given initial value. The callback is
// mandatory and lives as long as the cell; options can override the equality
// relation and the clone behaviour.
func NewCell[T comparable](initial T, callback Callback[T], opts ...options.Option[Cell[T]]) *Cell[T] {
	if callback == nil {
		panic(ErrNilCallback)
	}

	return options.Apply(&Cell[T]{
		value:    initial,
		callback: callback,
	}, opts, func(c *Cell[T]) {
		if c.equals == nil {
			c.equals = func(currentValue T, newValue T) bool { return currentValue == newValue }
		}

		if c.clone == nil {
			c.clone = func(value T) T { return value }
		}
	})
}

// Get returns a clone of the current value. It never mutates the value and
// never triggers a notification.
func (c *Cell[T]) Get() T {
	return c.clone(c.value)
}

// Replace swaps in the given value and triggers the callback if it does not
// equal the previous one. The resulting event carries no tag. Replace panics
// with ErrCellBorrowed while a guard is outstanding.
func (c *Cell[T]) Replace(newValue T) {
	guard := c.Guard()
	defer guard.Release()

	*guard.Value() = newValue
}

// Compute sets the new value by applying computeFunc to the current value and
// triggers the callback if the value changed. It returns the previous value.
func (c *Cell[T]) Compute(computeFunc func(currentValue T) T) (previousValue T) {
	guard := c.Guard()
	defer guard.Release()

	value := guard.Value()
	previousValue = guard.snapshot
	*value = computeFunc(*value)

	return previousValue
}

// Guard acquires exclusive mutable access to the wrapped value and returns
// the scoped token for it. The guard snapshots the current value; on release
// the cell compares the snapshot against the post-mutation value and notifies
// on change. Requesting a guard while another one is outstanding is a
// contract violation and panics with ErrCellBorrowed.
func (c *Cell[T]) Guard() *Guard[T] {
	if !c.borrowed.CompareAndSwap(false, true) {
		panic(ErrCellBorrowed)
	}

	return &Guard[T]{
		cell:     c,
		snapshot: c.clone(c.value),
	}
}

// GuardWithTag acquires a guard like Guard and attaches the given tag to it.
func (c *Cell[T]) GuardWithTag(tag string) *Guard[T] {
	return c.Guard().WithTag(tag)
}

// String returns a human-readable version of the Cell.
func (c *Cell[T]) String() string {
	return stringify.Struct("Cell",
		stringify.NewStructField("value", c.value),
	)
}

// queueEvent appends the given event to the delivery queue and starts
// draining unless a drain is already running further up the call stack.
func (c *Cell[T]) queueEvent(event *Event[T]) {
	c.queue = append(c.queue, event)

	c.drainQueue()
}

// drainQueue delivers the queued events while no borrow is held. Events that
// a re-entrant callback queues are picked up by the already running drain,
// which keeps delivery in trigger order.
func (c *Cell[T]) drainQueue() {
	if !c.draining.CompareAndSwap(false, true) {
		return
	}
	defer c.draining.Store(false)

	for len(c.queue) > 0 {
		batch := c.queue
		c.queue = nil

		lo.ForEach(batch, func(event *Event[T]) {
			c.callback(event)
		})
	}
}
