package fixedarray

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is anything Sum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sort orders a ascending in place.
func Sort[T cmp.Ordered](a *Array[T]) {
	slices.Sort(a.data)
}

// MinElement returns the index of the first smallest element, or -1 when a
// is empty.
func MinElement[T cmp.Ordered](a *Array[T]) int {
	if len(a.data) == 0 {
		return -1
	}
	best := 0
	for i, v := range a.data[1:] {
		if v < a.data[best] {
			best = i + 1
		}
	}
	return best
}

// MaxElement returns the index of the first largest element, or -1 when a
// is empty.
func MaxElement[T cmp.Ordered](a *Array[T]) int {
	if len(a.data) == 0 {
		return -1
	}
	best := 0
	for i, v := range a.data[1:] {
		if v > a.data[best] {
			best = i + 1
		}
	}
	return best
}

// AdjacentFind returns the first i with a[i] == a[i+1], or -1.
func AdjacentFind[T comparable](a *Array[T]) int {
	for i := 0; i+1 < len(a.data); i++ {
		if a.data[i] == a.data[i+1] {
			return i
		}
	}
	return -1
}

// Sum adds every element to init.
func Sum[T Number](a *Array[T], init T) T {
	acc := init
	for _, v := range a.data {
		acc += v
	}
	return acc
}

// Count returns how many elements equal v.
func Count[T comparable](a *Array[T], v T) int {
	n := 0
	for _, x := range a.data {
		if x == v {
			n++
		}
	}
	return n
}

// CountIf returns how many elements satisfy pred.
func CountIf[T any](a *Array[T], pred func(T) bool) int {
	n := 0
	for _, x := range a.data {
		if pred(x) {
			n++
		}
	}
	return n
}
