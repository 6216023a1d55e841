package core

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_PushReturnsEvicted(t *testing.T) {
	w := NewWindow(3, 1)
	var got []int
	for _, v := range []int{2, 3, 4, 5, 6} {
		got = append(got, w.Push(v))
	}
	assert.Equal(t, []int{1, 1, 1, 2, 3}, got)
}

func TestWindow_SeedFillsEverySlot(t *testing.T) {
	w := NewWindow(4, 7.5)
	require.Equal(t, 4, w.Len())
	for i := 0; i < w.Len(); i++ {
		assert.Equal(t, 7.5, w.At(i))
	}
	assert.Equal(t, 7.5, w.Newest())
	assert.Equal(t, 7.5, w.Oldest())
}

func TestWindow_IndexingAndIterationAgree(t *testing.T) {
	w := NewWindow(5, 0)
	for i := 1; i <= 13; i++ {
		w.Push(i)

		assert.Equal(t, i, w.At(0))
		assert.Equal(t, w.At(0), w.Newest())
		assert.Equal(t, w.At(w.Len()-1), w.Oldest())

		var fwd []int
		for v := range w.Iter() {
			fwd = append(fwd, v)
		}
		want := make([]int, w.Len())
		for k := range want {
			want[k] = w.At(k)
		}
		assert.Equal(t, want, fwd)

		rev := slices.Collect(w.IterRev())
		slices.Reverse(rev)
		assert.Equal(t, want, rev)
	}
}

func TestWindow_IterIsRestartable(t *testing.T) {
	w := NewWindow(3, 1.0)
	for _, v := range []float64{2, 3, 4} {
		w.Push(v)
	}
	seq := w.Iter()
	assert.Equal(t, []float64{4, 3, 2}, slices.Collect(seq))
	assert.Equal(t, []float64{4, 3, 2}, slices.Collect(seq))
	assert.Equal(t, []float64{2, 3, 4}, slices.Collect(w.IterRev()))
	assert.Equal(t, []float64{4, 3, 2}, w.Values())

	// Early break must not disturb the cursor.
	for range w.Iter() {
		break
	}
	assert.Equal(t, 4.0, w.Newest())
}

func TestWindow_CapacityOne(t *testing.T) {
	w := NewWindow(1, 10)
	assert.Equal(t, 10, w.Push(11))
	assert.Equal(t, 11, w.Push(12))
	assert.Equal(t, 12, w.Newest())
	assert.Equal(t, 12, w.Oldest())
}

func TestWindow_Empty(t *testing.T) {
	w := NewWindow(0, 1.0)
	assert.True(t, w.IsEmpty())
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Values())

	if !Checked {
		t.Skip("precondition checks disabled")
	}
	assert.Panics(t, func() { w.Push(2) })
	assert.Panics(t, func() { w.Newest() })
}

func TestWindow_OutOfRangeIndexPanics(t *testing.T) {
	if !Checked {
		t.Skip("precondition checks disabled")
	}
	w := NewWindow(2, 1)
	assert.Panics(t, func() { w.At(2) })
	assert.Panics(t, func() { w.At(-1) })
}

func TestWindow_Reductions(t *testing.T) {
	w := NewWindow(4, 0.0)
	for _, v := range []float64{3, 9, 1, 9} {
		w.Push(v)
	}
	assert.Equal(t, 22.0, Sum(w))

	hi, at := MaxIndex(w)
	assert.Equal(t, 9.0, hi)
	assert.Equal(t, 0, at, "ties resolve to the newest value")

	lo, at := MinIndex(w)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1, at)

	ints := NewWindow(3, int64(2))
	assert.Equal(t, int64(6), Sum(ints))
}

func TestWindow_PushDoesNotAllocate(t *testing.T) {
	w := NewWindow(16, 0.0)
	v := 0.0
	allocs := testing.AllocsPerRun(500, func() {
		v++
		w.Push(v)
	})
	assert.Zero(t, allocs)
}
