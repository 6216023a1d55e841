package method

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

// WMA is the linearly weighted moving average: the newest value weighs
// period, the oldest weighs 1.
//
// Both the plain sum and the weighted numerator are updated from the evicted
// value, so each step is O(1).
//
// NaN is outside the domain: the running sums never recover from it.
type WMA struct {
	n         float64
	invDenom  float64
	window    *core.Window[float64]
	numerator float64
	total     float64
}

// NewWMA fills the window with seed, so the first outputs lean towards it.
func NewWMA(period int, seed float64) (*WMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	n := float64(period)
	denom := n * (n + 1) / 2
	return &WMA{
		n:         n,
		invDenom:  1 / denom,
		window:    core.NewWindow(period, seed),
		numerator: seed * denom,
		total:     seed * n,
	}, nil
}

func (w *WMA) Next(value float64) float64 {
	old := w.window.Push(value)
	w.numerator += w.n*value - w.total
	w.total += value - old
	return w.numerator * w.invDenom
}

// HMA is the Hull moving average: WMA over sqrt(period) of
// 2*WMA(period/2) - WMA(period). NaN is outside the domain, as for WMA.
type HMA struct {
	half, full, smooth *WMA
}

// NewHMA clamps the half and square-root periods to at least 1.
func NewHMA(period int, seed float64) (*HMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	halfPeriod := max(period/2, 1)
	sqrtPeriod := max(int(math.Sqrt(float64(period))), 1)

	half, _ := NewWMA(halfPeriod, seed)
	full, _ := NewWMA(period, seed)
	smooth, _ := NewWMA(sqrtPeriod, seed)
	return &HMA{half: half, full: full, smooth: smooth}, nil
}

func (h *HMA) Next(value float64) float64 {
	raw := 2*h.half.Next(value) - h.full.Next(value)
	return h.smooth.Next(raw)
}
