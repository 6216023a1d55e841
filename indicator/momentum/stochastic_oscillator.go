package momentum

import (
	"fmt"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const (
	DefaultStochasticKPeriod    = 14
	DefaultStochasticDPeriod    = 3
	DefaultStochasticOverbought = 80.0
	DefaultStochasticOversold   = 20.0
)

// Stochastic configures the %K / %D stochastic oscillator.
//
// %K places the close inside the high-low range of the last K bars, %D is an
// SMA of %K. A flat range puts %K at 50.
// Signals: %K crossing %D, %K leaving the oversold/overbought zones.
type Stochastic struct {
	K          int
	D          int
	Overbought float64
	Oversold   float64
}

var _ indicator.Config[Stochastic, *StochasticInstance] = (*Stochastic)(nil)

func DefaultStochastic() Stochastic {
	return Stochastic{
		K:          DefaultStochasticKPeriod,
		D:          DefaultStochasticDPeriod,
		Overbought: DefaultStochasticOverbought,
		Oversold:   DefaultStochasticOversold,
	}
}

func (c Stochastic) Name() string { return "stochastic" }

func (c Stochastic) Size() (values, signals int) { return 2, 2 }

func (c Stochastic) Validate() bool {
	return c.K >= 1 && c.D >= 1 &&
		c.Oversold >= 0 && c.Overbought <= 100 && c.Oversold < c.Overbought
}

func (c *Stochastic) Set(name, value string) error {
	switch name {
	case "k":
		return indicator.SetPeriod(&c.K, c.Name(), name, value)
	case "d":
		return indicator.SetPeriod(&c.D, c.Name(), name, value)
	case "overbought":
		return indicator.SetFloat(&c.Overbought, c.Name(), name, value)
	case "oversold":
		return indicator.SetFloat(&c.Oversold, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c Stochastic) Init(seed core.OHLCV) (*StochasticInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	highest, err := method.NewHighest(c.K, seed.High())
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("highest: %w", err))
	}
	lowest, err := method.NewLowest(c.K, seed.Low())
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("lowest: %w", err))
	}
	k := percentK(seed.Close(), seed.High(), seed.Low())
	d, err := method.NewSMA(c.D, k)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("%%D average: %w", err))
	}
	return &StochasticInstance{
		cfg:     c,
		highest: highest,
		lowest:  lowest,
		d:       d,
		cross:   method.NewCross(method.Pair{A: k, B: k}),
		zone:    method.NewBandCross(c.Oversold, c.Overbought, k),
	}, nil
}

// StochasticInstance is the running state of one stochastic series.
type StochasticInstance struct {
	cfg     Stochastic
	highest *method.Highest
	lowest  *method.Lowest
	d       *method.SMA
	cross   *method.Cross
	zone    *method.BandCross
}

func (s *StochasticInstance) Config() Stochastic { return s.cfg }

func (s *StochasticInstance) Name() string { return s.cfg.Name() }

func (s *StochasticInstance) Size() (values, signals int) { return s.cfg.Size() }

func (s *StochasticInstance) Next(candle core.OHLCV) indicator.Result {
	k := percentK(candle.Close(), s.highest.Next(candle.High()), s.lowest.Next(candle.Low()))
	d := s.d.Next(k)
	return indicator.NewResult(
		[]float64{k, d},
		[]core.Action{s.cross.Next(method.Pair{A: k, B: d}), s.zone.Next(k)},
	)
}

func percentK(close, highest, lowest float64) float64 {
	rangeHL := highest - lowest
	if rangeHL == 0 {
		return 50
	}
	return core.Clamp((close-lowest)/rangeHL*100, 0, 100)
}
