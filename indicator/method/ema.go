package method

// EMA is an exponential moving average: value += alpha * (input - value).
// The same type serves Wilder's RMA, only alpha differs.
//
// A NaN input poisons the state for good; ±0 are ordinary values.
type EMA struct {
	alpha float64
	value float64
}

// NewEMA uses the classic smoothing factor 2 / (period + 1).
func NewEMA(period int, seed float64) (*EMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return &EMA{alpha: 2 / float64(period+1), value: seed}, nil
}

// NewRMA is Wilder's smoothing (also known as SMMA), alpha = 1 / period.
func NewRMA(period int, seed float64) (*EMA, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	return &EMA{alpha: 1 / float64(period), value: seed}, nil
}

func (e *EMA) Next(value float64) float64 {
	e.value += e.alpha * (value - e.value)
	return e.value
}

// Value returns the last output without advancing.
func (e *EMA) Value() float64 { return e.value }

// DEMA is the double exponential moving average 2*EMA - EMA(EMA).
// Like EMA it stays NaN once fed a NaN.
type DEMA struct {
	ema1, ema2 *EMA
}

// NewDEMA chains two EMAs of the same period, both seeded with seed.
func NewDEMA(period int, seed float64) (*DEMA, error) {
	e1, err := NewEMA(period, seed)
	if err != nil {
		return nil, err
	}
	e2, _ := NewEMA(period, seed)
	return &DEMA{ema1: e1, ema2: e2}, nil
}

func (d *DEMA) Next(value float64) float64 {
	v1 := d.ema1.Next(value)
	v2 := d.ema2.Next(v1)
	return 2*v1 - v2
}

// TEMA is the triple exponential moving average 3*e1 - 3*e2 + e3.
// Like EMA it stays NaN once fed a NaN.
type TEMA struct {
	ema1, ema2, ema3 *EMA
}

// NewTEMA chains three EMAs.
func NewTEMA(period int, seed float64) (*TEMA, error) {
	e1, err := NewEMA(period, seed)
	if err != nil {
		return nil, err
	}
	e2, _ := NewEMA(period, seed)
	e3, _ := NewEMA(period, seed)
	return &TEMA{ema1: e1, ema2: e2, ema3: e3}, nil
}

func (t *TEMA) Next(value float64) float64 {
	v1 := t.ema1.Next(value)
	v2 := t.ema2.Next(v1)
	v3 := t.ema3.Next(v2)
	return 3*(v1-v2) + v3
}
