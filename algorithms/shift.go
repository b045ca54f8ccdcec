package algorithms

// ShiftLeft moves s[n:] to the front of s, element by element from the head,
// and returns the end of the shifted range, len(s)-n.
//
// Only slots that were a source and not written afterwards end up in the
// moved-from state produced by Move: those at index >= max(n, len(s)-n).
// When n > len(s)-n, the slots in [len(s)-n, n) are never read and keep
// their old values.
//
// When n is zero or at least len(s) nothing is moved: the result is len(s)
// for n == 0 and 0 for n >= len(s), matching where the valid elements end.
// n must not be negative; that is not checked.
func ShiftLeft[T any](s []T, n int) int {
	return ShiftLeftFunc(s, n, Move[T])
}

// ShiftLeftFunc is ShiftLeft with a caller-supplied transfer.
func ShiftLeftFunc[T any](s []T, n int, move MoveFunc[T]) int {
	if n == 0 {
		return len(s)
	}
	if n >= len(s) {
		return 0
	}
	end := len(s) - n
	for i := 0; i < end; i++ {
		move(&s[i], &s[i+n])
	}
	return end
}
