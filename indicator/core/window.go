package core

import "iter"

// Window is a fixed-capacity circular buffer holding the last N pushed values.
//
// A window never has a partially filled state: NewWindow replicates the seed
// value into every slot, so callers can read N logical values right after
// construction. Push is the only mutator; it overwrites the oldest slot and
// hands the evicted value back, which lets running aggregates (sums, sums of
// squares, weighted numerators) be updated in O(1).
//
// Index 0 is the newest value and Len()-1 the oldest.
//
// A zero-capacity window is legal to construct but pushing into it or
// indexing it is a programmer error. The default build panics with a
// descriptive message; building with the `unchecked` tag drops those checks.
type Window[T any] struct {
	buf   []T
	index int // slot that the next Push overwrites
}

// NewWindow allocates a window of the given capacity filled with seed.
// A negative capacity is treated as zero.
func NewWindow[T any](capacity int, seed T) *Window[T] {
	if capacity < 0 {
		capacity = 0
	}
	buf := make([]T, capacity)
	for i := range buf {
		buf[i] = seed
	}
	return &Window[T]{buf: buf}
}

// Push stores value as the newest element and returns the element it evicted.
func (w *Window[T]) Push(value T) T {
	checkPush(len(w.buf))
	old := w.buf[w.index]
	w.buf[w.index] = value
	w.index++
	if w.index == len(w.buf) {
		w.index = 0
	}
	return old
}

// Len returns the window capacity.
func (w *Window[T]) Len() int { return len(w.buf) }

// IsEmpty reports whether the window was built with zero capacity.
func (w *Window[T]) IsEmpty() bool { return len(w.buf) == 0 }

// At returns the value pushed i steps ago (0 = newest).
func (w *Window[T]) At(i int) T {
	checkIndex(i, len(w.buf))
	return w.buf[w.slot(i)]
}

// Newest returns the most recently pushed value.
func (w *Window[T]) Newest() T { return w.At(0) }

// Oldest returns the value that the next Push will evict.
func (w *Window[T]) Oldest() T {
	checkIndex(0, len(w.buf))
	return w.buf[w.index]
}

// Iter yields the values from newest to oldest. Every call starts a fresh
// traversal and the window is not modified.
func (w *Window[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := len(w.buf)
		for i := 0; i < n; i++ {
			if !yield(w.buf[w.slot(i)]) {
				return
			}
		}
	}
}

// IterRev yields the values from oldest to newest.
func (w *Window[T]) IterRev() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := len(w.buf)
		for i := n - 1; i >= 0; i-- {
			if !yield(w.buf[w.slot(i)]) {
				return
			}
		}
	}
}

// Values returns a newest-to-oldest copy of the window contents.
func (w *Window[T]) Values() []T {
	out := make([]T, 0, len(w.buf))
	for v := range w.Iter() {
		out = append(out, v)
	}
	return out
}

// slot maps an age index onto the backing slice.
func (w *Window[T]) slot(i int) int {
	s := w.index - 1 - i
	if s < 0 {
		s += len(w.buf)
	}
	return s
}
