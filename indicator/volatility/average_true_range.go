package volatility

import (
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const DefaultATRPeriod = 14

// ATR configures the Average True Range. MA picks the smoothing; Wilder's
// RMA is the classic choice, SMA gives the plain average of the last Period
// true ranges.
//
// Values: ATR, ATR as a percentage of the close (0 when the close is 0).
// ATR carries no signal.
type ATR struct {
	Period int
	MA     method.MovingAverageType
}

var _ indicator.Config[ATR, *ATRInstance] = (*ATR)(nil)

func DefaultATR() ATR { return ATR{Period: DefaultATRPeriod, MA: method.RMAMovingAverage} }

func (c ATR) Name() string { return "atr" }

func (c ATR) Size() (values, signals int) { return 2, 0 }

func (c ATR) Validate() bool {
	_, err := method.ParseMovingAverageType(string(c.MA))
	return c.Period >= 1 && err == nil
}

func (c *ATR) Set(name, value string) error {
	switch name {
	case "period":
		return indicator.SetPeriod(&c.Period, c.Name(), name, value)
	case "ma":
		return indicator.SetMA(&c.MA, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

// Init seeds the average with the range of the seed bar.
func (c ATR) Init(seed core.OHLCV) (*ATRInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	avg, err := method.NewMovingAverage(c.MA, c.Period, seed.High()-seed.Low())
	if err != nil {
		return nil, indicator.Wrap(c.Name(), err)
	}
	return &ATRInstance{cfg: c, tr: method.NewTrueRange(seed), avg: avg}, nil
}

// ATRInstance is the running state of one ATR series.
type ATRInstance struct {
	cfg ATR
	tr  *method.TrueRange
	avg method.Float
}

func (a *ATRInstance) Config() ATR { return a.cfg }

func (a *ATRInstance) Name() string { return a.cfg.Name() }

func (a *ATRInstance) Size() (values, signals int) { return a.cfg.Size() }

func (a *ATRInstance) Next(candle core.OHLCV) indicator.Result {
	atr := a.avg.Next(a.tr.Next(candle))
	var pct float64
	if c := candle.Close(); c != 0 {
		pct = atr / c * 100
	}
	return indicator.NewResult([]float64{atr, pct}, nil)
}
