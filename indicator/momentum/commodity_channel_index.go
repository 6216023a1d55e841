package momentum

import (
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const (
	DefaultCCIPeriod     = 20
	DefaultCCIOverbought = 100.0
	DefaultCCIOversold   = -100.0
	cciConstant          = 0.015
)

// CCI configures the Commodity Channel Index: the distance of the typical
// price from its SMA in units of 0.015 mean deviations. A zero deviation
// reads 0.
type CCI struct {
	Period     int
	Overbought float64
	Oversold   float64
}

var _ indicator.Config[CCI, *CCIInstance] = (*CCI)(nil)

func DefaultCCI() CCI {
	return CCI{Period: DefaultCCIPeriod, Overbought: DefaultCCIOverbought, Oversold: DefaultCCIOversold}
}

func (c CCI) Name() string { return "cci" }

func (c CCI) Size() (values, signals int) { return 1, 1 }

func (c CCI) Validate() bool { return c.Period >= 1 && c.Oversold < c.Overbought }

func (c *CCI) Set(name, value string) error {
	switch name {
	case "period":
		return indicator.SetPeriod(&c.Period, c.Name(), name, value)
	case "overbought":
		return indicator.SetFloat(&c.Overbought, c.Name(), name, value)
	case "oversold":
		return indicator.SetFloat(&c.Oversold, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c CCI) Init(seed core.OHLCV) (*CCIInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	dev, err := method.NewMeanAbsDev(c.Period, core.TypicalPrice(seed))
	if err != nil {
		return nil, indicator.Wrap(c.Name(), err)
	}
	return &CCIInstance{cfg: c, dev: dev, cross: method.NewBandCross(c.Oversold, c.Overbought, 0)}, nil
}

// CCIInstance is the running state of one CCI series.
type CCIInstance struct {
	cfg   CCI
	dev   *method.MeanAbsDev
	cross *method.BandCross
}

func (c *CCIInstance) Config() CCI { return c.cfg }

func (c *CCIInstance) Name() string { return c.cfg.Name() }

func (c *CCIInstance) Size() (values, signals int) { return c.cfg.Size() }

func (c *CCIInstance) Next(candle core.OHLCV) indicator.Result {
	tp := core.TypicalPrice(candle)
	meanDev := c.dev.Next(tp)
	var cci float64
	if meanDev != 0 {
		cci = (tp - c.dev.Mean()) / (cciConstant * meanDev)
	}
	return indicator.NewResult([]float64{cci}, []core.Action{c.cross.Next(cci)})
}
