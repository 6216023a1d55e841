package method

import "github.com/evdnx/gota/indicator/core"

// Past returns the value pushed period steps ago (the seed during warm-up).
// Values come back untouched, NaN and -0 included.
type Past struct {
	window *core.Window[float64]
}

func NewPast(period int, seed float64) (*Past, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return &Past{window: core.NewWindow(period, seed)}, nil
}

func (p *Past) Next(value float64) float64 { return p.window.Push(value) }

// Change is the momentum value - value[period]. NaN on either side gives NaN.
type Change struct {
	past *Past
}

func NewChange(period int, seed float64) (*Change, error) {
	past, err := NewPast(period, seed)
	if err != nil {
		return nil, err
	}
	return &Change{past: past}, nil
}

func (c *Change) Next(value float64) float64 { return value - c.past.Next(value) }

// RateOfChange is (value - value[period]) / value[period].
// A zero reference value, +0 or -0, yields 0 instead of an infinity. NaN on
// either side gives NaN.
type RateOfChange struct {
	past *Past
}

func NewRateOfChange(period int, seed float64) (*RateOfChange, error) {
	past, err := NewPast(period, seed)
	if err != nil {
		return nil, err
	}
	return &RateOfChange{past: past}, nil
}

func (r *RateOfChange) Next(value float64) float64 {
	prev := r.past.Next(value)
	if prev == 0 {
		return 0
	}
	return (value - prev) / prev
}
