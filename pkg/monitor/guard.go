package monitor

// Guard grants exclusive mutable access to a Cell's value for the duration of
// its scope. Releasing the guard first returns the exclusive access to the
// cell and only then runs the change detection, so the callback observes a
// fully committed value and may itself read, replace or re-guard the cell.
//
// A Guard must stay within the scope that created it; the usual pattern is to
// release it with defer so that every exit path, including a panicking one,
// runs the detection exactly once.
type Guard[T comparable] struct {
	// cell is the owner that issued the guard.
	cell *Cell[T]

	// snapshot is the clone of the value taken at acquisition, used as the
	// old side of the comparison.
	snapshot T

	// tag is the pending annotation for the eventual event (only meaningful
	// if tagged is true).
	tag string

	// tagged indicates whether a tag was attached to the guard.
	tagged bool

	// released indicates that the guard reached its terminal state.
	released bool
}

// Value returns write access to the wrapped value, valid until the guard is
// released. It panics with ErrGuardReleased afterwards.
func (g *Guard[T]) Value() *T {
	if g.released {
		panic(ErrGuardReleased)
	}

	return &g.cell.value
}

// WithTag attaches the given tag to the guard. If the guard's mutation turns
// out to be a change, the tag is carried by the resulting event; otherwise it
// is discarded together with the event. Attaching a tag has no influence on
// whether a notification fires. Calling WithTag again overwrites the previous
// tag (the last call wins). It panics with ErrGuardReleased on a released
// guard.
func (g *Guard[T]) WithTag(tag string) *Guard[T] {
	if g.released {
		panic(ErrGuardReleased)
	}

	g.tag = tag
	g.tagged = true

	return g
}

// Release ends the guard's scope: it hands the exclusive access back to the
// cell, compares the snapshot taken at acquisition against the post-mutation
// value and queues a single event if they differ. How many in-place writes
// happened in between does not matter, only the values at the guard
// boundaries. Calling Release again is a no-op.
func (g *Guard[T]) Release() {
	if g.released {
		return
	}
	g.released = true

	// clone while the access is still exclusive, then give the borrow back
	// before anything is delivered.
	newValue := g.cell.clone(g.cell.value)
	g.cell.borrowed.Store(false)

	if !g.cell.equals(g.snapshot, newValue) {
		g.cell.queueEvent(&Event[T]{
			Old:    g.snapshot,
			New:    newValue,
			Tag:    g.tag,
			Tagged: g.tagged,
		})
	}
}
