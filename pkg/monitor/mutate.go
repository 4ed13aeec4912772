package monitor

// Mutate applies mutateFunc to the cell's value under a fresh guard and
// returns whatever mutateFunc returns. The callback is triggered at most
// once, after the guard is released, if the boundary values differ.
func Mutate[T comparable, R any](cell *Cell[T], mutateFunc func(value *T) R) R {
	guard := cell.Guard()
	defer guard.Release()

	return mutateFunc(guard.Value())
}

// MutateTagged behaves like Mutate but additionally attaches the given tag to
// the resulting event (if one fires).
func MutateTagged[T comparable, R any](cell *Cell[T], tag string, mutateFunc func(value *T) R) R {
	guard := cell.GuardWithTag(tag)
	defer guard.Release()

	return mutateFunc(guard.Value())
}
