package method

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

// StDev is the rolling sample standard deviation (n-1 denominator) computed
// from compensated running sums. A period of 1 always yields 0.
// NaN is outside the domain: it stays in the sums after leaving the window.
type StDev struct {
	n      float64
	window *core.Window[float64]
	sum    core.KahanSum
	sumSq  core.KahanSum
}

// NewStDev starts from a window full of seed, so the first output is 0.
func NewStDev(period int, seed float64) (*StDev, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	s := &StDev{n: float64(period), window: core.NewWindow(period, seed)}
	s.sum.Add(seed * s.n)
	s.sumSq.Add(seed * seed * s.n)
	return s, nil
}

func (s *StDev) Next(value float64) float64 {
	old := s.window.Push(value)
	s.sum.Add(value)
	s.sum.Add(-old)
	s.sumSq.Add(value * value)
	s.sumSq.Add(-old * old)

	if s.n < 2 {
		return 0
	}
	sum := s.sum.Value()
	variance := (s.sumSq.Value() - sum*sum/s.n) / (s.n - 1)
	if variance < 0 {
		variance = 0 // rounding
	}
	return math.Sqrt(variance)
}

// Mean returns the average of the current window.
func (s *StDev) Mean() float64 { return s.sum.Value() / s.n }

// MeanAbsDev is the mean absolute deviation around the window average.
// Each step walks the window once, O(period). NaN is outside the domain, as
// for StDev.
type MeanAbsDev struct {
	n      float64
	window *core.Window[float64]
	sum    core.KahanSum
	mean   float64
}

func NewMeanAbsDev(period int, seed float64) (*MeanAbsDev, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	m := &MeanAbsDev{n: float64(period), window: core.NewWindow(period, seed), mean: seed}
	m.sum.Add(seed * m.n)
	return m, nil
}

func (m *MeanAbsDev) Next(value float64) float64 {
	old := m.window.Push(value)
	m.sum.Add(value)
	m.sum.Add(-old)
	m.mean = m.sum.Value() / m.n

	var dev float64
	for v := range m.window.Iter() {
		dev += math.Abs(v - m.mean)
	}
	return dev / m.n
}

// Mean returns the window average computed by the last Next.
func (m *MeanAbsDev) Mean() float64 { return m.mean }
