package trend

import (
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const (
	DefaultAroonPeriod = 14
	DefaultAroonStrong = 70.0
)

// Aroon configures the Aroon oscillator. Aroon Up and Down measure how many
// of the last Period bars have passed since the highest high and the lowest
// low, scaled to 0..100; the oscillator is Up - Down. The lookback spans
// Period+1 bars and ties go to the most recent bar.
// The signal fires when the oscillator enters the strong-trend zone: buy
// above +Strong, sell below -Strong.
type Aroon struct {
	Period int
	Strong float64
}

var _ indicator.Config[Aroon, *AroonInstance] = (*Aroon)(nil)

func DefaultAroon() Aroon { return Aroon{Period: DefaultAroonPeriod, Strong: DefaultAroonStrong} }

func (c Aroon) Name() string { return "aroon" }

func (c Aroon) Size() (values, signals int) { return 3, 1 }

func (c Aroon) Validate() bool {
	return c.Period >= 1 && c.Strong >= 0 && c.Strong < 100
}

func (c *Aroon) Set(name, value string) error {
	switch name {
	case "period":
		return indicator.SetPeriod(&c.Period, c.Name(), name, value)
	case "strong":
		return indicator.SetFloat(&c.Strong, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c Aroon) Init(seed core.OHLCV) (*AroonInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	return &AroonInstance{
		cfg:   c,
		highs: core.NewWindow(c.Period+1, seed.High()),
		lows:  core.NewWindow(c.Period+1, seed.Low()),
		up:    method.NewCrossAbove(method.Pair{A: 0, B: c.Strong}),
		down:  method.NewCrossUnder(method.Pair{A: 0, B: -c.Strong}),
	}, nil
}

// AroonInstance is the running state of one Aroon oscillator.
type AroonInstance struct {
	cfg   Aroon
	highs *core.Window[float64]
	lows  *core.Window[float64]
	up    *method.CrossAbove
	down  *method.CrossUnder
}

func (a *AroonInstance) Config() Aroon { return a.cfg }

func (a *AroonInstance) Name() string { return a.cfg.Name() }

func (a *AroonInstance) Size() (values, signals int) { return a.cfg.Size() }

func (a *AroonInstance) Next(candle core.OHLCV) indicator.Result {
	a.highs.Push(candle.High())
	a.lows.Push(candle.Low())
	_, sinceHigh := core.MaxIndex(a.highs)
	_, sinceLow := core.MinIndex(a.lows)

	period := float64(a.cfg.Period)
	up := (period - float64(sinceHigh)) / period * 100
	down := (period - float64(sinceLow)) / period * 100
	osc := core.Clamp(up-down, -100, 100)

	signal := a.up.Next(method.Pair{A: osc, B: a.cfg.Strong}).
		Sub(a.down.Next(method.Pair{A: osc, B: -a.cfg.Strong}))
	return indicator.NewResult([]float64{up, down, osc}, []core.Action{signal})
}
