package method

import "github.com/evdnx/gota/indicator/core"

// Highest tracks the maximum of the last period values.
//
// The current maximum and its age are cached; the window is rescanned only
// when the maximum falls out of it, so most steps are O(1) and the worst case
// is O(period). NaN is outside the domain.
type Highest struct {
	window *core.Window[float64]
	value  float64
	age    int
}

func NewHighest(period int, seed float64) (*Highest, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return &Highest{window: core.NewWindow(period, seed), value: seed}, nil
}

func (h *Highest) Next(value float64) float64 {
	h.window.Push(value)
	h.age++
	switch {
	case value >= h.value:
		h.value, h.age = value, 0
	case h.age >= h.window.Len():
		h.value, h.age = core.MaxIndex(h.window)
	}
	return h.value
}

// Age reports how many steps ago the current maximum was pushed.
func (h *Highest) Age() int { return h.age }

// Lowest tracks the minimum of the last period values.
type Lowest struct {
	window *core.Window[float64]
	value  float64
	age    int
}

func NewLowest(period int, seed float64) (*Lowest, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return &Lowest{window: core.NewWindow(period, seed), value: seed}, nil
}

func (l *Lowest) Next(value float64) float64 {
	l.window.Push(value)
	l.age++
	switch {
	case value <= l.value:
		l.value, l.age = value, 0
	case l.age >= l.window.Len():
		l.value, l.age = core.MinIndex(l.window)
	}
	return l.value
}

// Age reports how many steps ago the current minimum was pushed.
func (l *Lowest) Age() int { return l.age }

// HighestLowestDelta returns highest - lowest over the window.
type HighestLowestDelta struct {
	highest *Highest
	lowest  *Lowest
}

func NewHighestLowestDelta(period int, seed float64) (*HighestLowestDelta, error) {
	hi, err := NewHighest(period, seed)
	if err != nil {
		return nil, err
	}
	lo, _ := NewLowest(period, seed)
	return &HighestLowestDelta{highest: hi, lowest: lo}, nil
}

func (d *HighestLowestDelta) Next(value float64) float64 {
	return d.highest.Next(value) - d.lowest.Next(value)
}
