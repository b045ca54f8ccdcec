// Package fixedarray provides Array, a container whose length is chosen at
// construction and never changes afterwards, plus the usual search, sort
// and accumulate helpers over it.
//
// Go's own [N]T already has this shape, but N must be a constant. Array
// trades that for a runtime length while keeping the same guarantees: no
// append, no reslice, and Swap only between arrays of equal length.
package fixedarray

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrLengthMismatch = errors.New("array length mismatch")
	ErrTooManyValues  = errors.New("too many values for array")
)

// IndexError reports a checked access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// Array is a fixed-length sequence of T.
type Array[T any] struct {
	data []T
}

// New returns an array of n zero values.
func New[T any](n int) *Array[T] {
	return &Array[T]{data: make([]T, n)}
}

// Of returns an array holding a copy of vals; its length is len(vals).
func Of[T any](vals ...T) *Array[T] {
	a := New[T](len(vals))
	copy(a.data, vals)
	return a
}

// Len is fixed for the life of the array.
func (a *Array[T]) Len() int { return len(a.data) }

// Assign replaces the whole contents. Fewer values than Len zero the rest;
// more values return ErrTooManyValues and leave a unchanged.
func (a *Array[T]) Assign(vals ...T) error {
	if len(vals) > len(a.data) {
		return fmt.Errorf("assign %d values to length %d: %w", len(vals), len(a.data), ErrTooManyValues)
	}
	n := copy(a.data, vals)
	clear(a.data[n:])
	return nil
}

// Get returns element i without a bounds check of its own. An index outside
// [0, Len) is the caller's bug and panics like a raw slice index.
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Set stores v at i without a bounds check of its own; see Get.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// At returns element i, or an *IndexError when i is out of range.
func (a *Array[T]) At(i int) (T, error) {
	if err := a.check(i); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// SetAt stores v at i, or returns an *IndexError when i is out of range.
func (a *Array[T]) SetAt(i int, v T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Front is the first element. Calling it on an empty array panics.
func (a *Array[T]) Front() T { return a.data[0] }

// Back is the last element. Calling it on an empty array panics.
func (a *Array[T]) Back() T { return a.data[len(a.data)-1] }

// Data exposes the backing storage. Writes through it change a; its length
// must not be changed by the caller.
func (a *Array[T]) Data() []T { return a.data }

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Swap exchanges the contents of a and other element by element.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.data) != len(other.data) {
		return fmt.Errorf("swap length %d with %d: %w", len(a.data), len(other.data), ErrLengthMismatch)
	}
	for i := range a.data {
		a.data[i], other.data[i] = other.data[i], a.data[i]
	}
	return nil
}

// String renders "[ 1 2 3 ]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, v := range a.data {
		fmt.Fprintf(&sb, "%v ", v)
	}
	sb.WriteString("]")
	return sb.String()
}

func (a *Array[T]) check(i int) error {
	if i < 0 || i >= len(a.data) {
		return &IndexError{Index: i, Len: len(a.data)}
	}
	return nil
}
