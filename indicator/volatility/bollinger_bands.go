package volatility

import (
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// Bollinger configures Bollinger bands: an SMA middle band and upper/lower
// bands Multiplier sample standard deviations away.
//
// Values: middle, upper, lower.
// Signal: BuyAll when the price climbs back above the lower band, SellAll
// when it falls back under the upper band.
type Bollinger struct {
	Period     int
	Multiplier float64
	Source     core.Source
}

var _ indicator.Config[Bollinger, *BollingerInstance] = (*Bollinger)(nil)

func DefaultBollinger() Bollinger {
	return Bollinger{Period: DefaultBollingerPeriod, Multiplier: DefaultBollingerMultiplier, Source: core.SourceClose}
}

func (c Bollinger) Name() string { return "bollinger" }

func (c Bollinger) Size() (values, signals int) { return 3, 1 }

func (c Bollinger) Validate() bool {
	_, err := core.ParseSource(string(c.Source))
	return c.Period >= 1 && c.Multiplier > 0 && err == nil
}

func (c *Bollinger) Set(name, value string) error {
	switch name {
	case "period":
		return indicator.SetPeriod(&c.Period, c.Name(), name, value)
	case "multiplier":
		return indicator.SetFloat(&c.Multiplier, c.Name(), name, value)
	case "source":
		return indicator.SetSource(&c.Source, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c Bollinger) Init(seed core.OHLCV) (*BollingerInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	v := c.Source.Value(seed)
	sd, err := method.NewStDev(c.Period, v)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), err)
	}
	return &BollingerInstance{
		cfg:   c,
		sd:    sd,
		above: method.NewCrossAbove(method.Pair{A: v, B: v}),
		under: method.NewCrossUnder(method.Pair{A: v, B: v}),
	}, nil
}

// BollingerInstance is the running state of one set of bands.
type BollingerInstance struct {
	cfg   Bollinger
	sd    *method.StDev
	above *method.CrossAbove
	under *method.CrossUnder
}

func (b *BollingerInstance) Config() Bollinger { return b.cfg }

func (b *BollingerInstance) Name() string { return b.cfg.Name() }

func (b *BollingerInstance) Size() (values, signals int) { return b.cfg.Size() }

func (b *BollingerInstance) Next(candle core.OHLCV) indicator.Result {
	v := b.cfg.Source.Value(candle)
	width := b.cfg.Multiplier * b.sd.Next(v)
	middle := b.sd.Mean()
	upper, lower := middle+width, middle-width
	signal := b.above.Next(method.Pair{A: v, B: lower}).Sub(b.under.Next(method.Pair{A: v, B: upper}))
	return indicator.NewResult([]float64{middle, upper, lower}, []core.Action{signal})
}
