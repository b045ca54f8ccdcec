// Package algorithms implements element relocation over slices: a backward
// move that tolerates overlapping ranges, and a left shift that leaves the
// vacated tail in a moved-from state.
//
// Go has no move constructor, so a "move" here is an explicit function that
// writes the destination and then puts the source in whatever state the
// caller considers moved-from. The zero value is the default.
package algorithms

// MoveFunc transfers the contents of *src into *dst. Implementations decide
// what *src looks like afterwards.
type MoveFunc[T any] func(dst, src *T)

// Move assigns *src to *dst and resets *src to the zero value.
// Moving an element onto itself leaves it untouched.
func Move[T any](dst, src *T) {
	if dst == src {
		return
	}
	*dst = *src
	var zero T
	*src = zero
}

// Copy assigns *src to *dst and leaves *src as it was. It is the transfer
// for values where a move and a copy are the same thing (ints, floats).
func Copy[T any](dst, src *T) {
	*dst = *src
}

// MoveBackward relocates every element of src into the last len(src) slots
// of dst, keeping their order, and resets the sources with Move.
// It returns the index in dst where the relocated range begins.
func MoveBackward[T any](src, dst []T) int {
	return MoveBackwardFunc(src, dst, Move[T])
}

// MoveBackwardFunc is MoveBackward with a caller-supplied transfer.
//
// Elements are processed from the tail of src toward its head, so src and
// dst may be views of the same backing array as long as dst ends at or to
// the right of where src ends.
//
// len(dst) must be at least len(src). A shorter dst is not checked and
// panics with an index out of range.
func MoveBackwardFunc[T any](src, dst []T, move MoveFunc[T]) int {
	last, dLast := len(src), len(dst)
	for last > 0 {
		last--
		dLast--
		move(&dst[dLast], &src[last])
	}
	return dLast
}
