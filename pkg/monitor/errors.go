package monitor

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrCellBorrowed is panicked when an operation requires exclusive access
	// to a cell whose guard is still outstanding.
	ErrCellBorrowed = ierrors.New("cell value is already exclusively borrowed")

	// ErrGuardReleased is panicked when a released guard is used again.
	ErrGuardReleased = ierrors.New("guard was already released")

	// ErrNilCallback is panicked when a cell is constructed without a callback.
	ErrNilCallback = ierrors.New("callback must not be nil")
)
