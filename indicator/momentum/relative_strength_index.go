package momentum

import (
	"fmt"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const (
	DefaultRSIPeriod     = 14
	DefaultRSIOverbought = 70.0
	DefaultRSIOversold   = 30.0
)

// RSI configures Wilder's Relative Strength Index.
//
// Average gains and losses are smoothed with Wilder's RMA, so each step folds
// in the single most recent change. The signal fires when the RSI climbs
// back above Oversold (buy) or falls back under Overbought (sell).
type RSI struct {
	Period     int
	Overbought float64
	Oversold   float64
	Source     core.Source
}

var _ indicator.Config[RSI, *RSIInstance] = (*RSI)(nil)

func DefaultRSI() RSI {
	return RSI{
		Period:     DefaultRSIPeriod,
		Overbought: DefaultRSIOverbought,
		Oversold:   DefaultRSIOversold,
		Source:     core.SourceClose,
	}
}

func (c RSI) Name() string { return "rsi" }

func (c RSI) Size() (values, signals int) { return 1, 1 }

// Validate requires a positive period and 0 <= Oversold < Overbought <= 100.
// NaN thresholds fail every comparison and are rejected.
func (c RSI) Validate() bool {
	if !(c.Period >= 1 && c.Oversold >= 0 && c.Overbought <= 100 && c.Oversold < c.Overbought) {
		return false
	}
	_, err := core.ParseSource(string(c.Source))
	return err == nil
}

func (c *RSI) Set(name, value string) error {
	switch name {
	case "period":
		return indicator.SetPeriod(&c.Period, c.Name(), name, value)
	case "overbought":
		return indicator.SetFloat(&c.Overbought, c.Name(), name, value)
	case "oversold":
		return indicator.SetFloat(&c.Oversold, c.Name(), name, value)
	case "source":
		return indicator.SetSource(&c.Source, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c RSI) Init(seed core.OHLCV) (*RSIInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	gains, err := method.NewRMA(c.Period, 0)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("gain average: %w", err))
	}
	losses, err := method.NewRMA(c.Period, 0)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("loss average: %w", err))
	}
	v := c.Source.Value(seed)
	change, err := method.NewChange(1, v)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), err)
	}
	return &RSIInstance{
		cfg:    c,
		change: change,
		gains:  gains,
		losses: losses,
		cross:  method.NewBandCross(c.Oversold, c.Overbought, core.StrengthIndex(0, 0)),
	}, nil
}

// RSIInstance is the running state of one RSI series.
type RSIInstance struct {
	cfg    RSI
	change *method.Change
	gains  *method.EMA
	losses *method.EMA
	cross  *method.BandCross
}

func (r *RSIInstance) Config() RSI { return r.cfg }

func (r *RSIInstance) Name() string { return r.cfg.Name() }

func (r *RSIInstance) Size() (values, signals int) { return r.cfg.Size() }

func (r *RSIInstance) Next(candle core.OHLCV) indicator.Result {
	diff := r.change.Next(r.cfg.Source.Value(candle))
	var gain, loss float64
	if diff > 0 {
		gain = diff
	} else if diff < 0 {
		loss = -diff
	}
	rsi := core.StrengthIndex(r.gains.Next(gain), r.losses.Next(loss))
	return indicator.NewResult([]float64{rsi}, []core.Action{r.cross.Next(rsi)})
}
