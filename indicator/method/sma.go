package method

import (
	"fmt"

	"github.com/evdnx/gota/indicator/core"
)

func checkPeriod(period int) error {
	if period < 1 {
		return fmt.Errorf("%w, got %d", core.ErrInvalidPeriod, period)
	}
	return nil
}

// SMA is the simple moving average over the last period values.
//
// The running sum uses Kahan compensation so long streams do not drift.
// Inputs must be finite: a NaN or Inf stays in the sum forever.
type SMA struct {
	period float64
	window *core.Window[float64]
	sum    core.KahanSum
}

// NewSMA creates an SMA whose window starts filled with seed.
func NewSMA(period int, seed float64) (*SMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	s := &SMA{
		period: float64(period),
		window: core.NewWindow(period, seed),
	}
	s.sum.Add(seed * float64(period))
	return s, nil
}

// Next pushes value and returns the new average.
func (s *SMA) Next(value float64) float64 {
	old := s.window.Push(value)
	s.sum.Add(value)
	s.sum.Add(-old)
	return s.sum.Value() / s.period
}

// Window exposes the values currently averaged (read-only use).
func (s *SMA) Window() *core.Window[float64] { return s.window }
