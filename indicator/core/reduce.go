package core

import "golang.org/x/exp/constraints"

// Number is any type a window reduction can add up.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds every value held by the window. O(capacity).
func Sum[T Number](w *Window[T]) T {
	var total T
	for v := range w.Iter() {
		total += v
	}
	return total
}

// MaxIndex returns the largest value in the window and its age (0 = newest).
// Ties resolve to the newest occurrence. The window must not be empty.
func MaxIndex[T constraints.Ordered](w *Window[T]) (T, int) {
	best, at := w.At(0), 0
	i := 0
	for v := range w.Iter() {
		if v > best {
			best, at = v, i
		}
		i++
	}
	return best, at
}

// MinIndex returns the smallest value in the window and its age (0 = newest).
// Ties resolve to the newest occurrence. The window must not be empty.
func MinIndex[T constraints.Ordered](w *Window[T]) (T, int) {
	best, at := w.At(0), 0
	i := 0
	for v := range w.Iter() {
		if v < best {
			best, at = v, i
		}
		i++
	}
	return best, at
}
