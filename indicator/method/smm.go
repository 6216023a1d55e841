package method

import (
	"sort"

	"github.com/evdnx/gota/indicator/core"
)

// SMM is the simple moving median.
//
// Besides the window it keeps a sorted copy of the same values. Both slices
// are allocated in NewSMM; Next only shifts elements inside the sorted slice,
// so a step costs O(period) moves and no allocation.
//
// NaN is outside the domain: it breaks the ordering of the sorted view.
type SMM struct {
	window *core.Window[float64]
	sorted []float64
}

// NewSMM fills the window and its sorted view with seed.
func NewSMM(period int, seed float64) (*SMM, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	sorted := make([]float64, period)
	for i := range sorted {
		sorted[i] = seed
	}
	return &SMM{window: core.NewWindow(period, seed), sorted: sorted}, nil
}

func (s *SMM) Next(value float64) float64 {
	old := s.window.Push(value)
	if old != value {
		n := len(s.sorted) - 1

		i := sort.SearchFloat64s(s.sorted, old)
		copy(s.sorted[i:], s.sorted[i+1:])

		j := sort.SearchFloat64s(s.sorted[:n], value)
		copy(s.sorted[j+1:], s.sorted[j:n])
		s.sorted[j] = value
	}
	return s.median()
}

func (s *SMM) median() float64 {
	n := len(s.sorted)
	if n%2 == 1 {
		return s.sorted[n/2]
	}
	return (s.sorted[n/2-1] + s.sorted[n/2]) / 2
}
