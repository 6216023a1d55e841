package trend

import (
	"math"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultSARStep    = 0.02
	DefaultSARMaxStep = 0.2
)

// ParabolicSAR configures Wilder's Parabolic SAR (stop and reverse).
//
// The seed bar opens an uptrend with the SAR at its low and the extreme
// point at its high. The signal is BuyAll on the bar that flips the trend up,
// SellAll on the bar that flips it down.
type ParabolicSAR struct {
	Step float64
	Max  float64
}

var _ indicator.Config[ParabolicSAR, *ParabolicSARInstance] = (*ParabolicSAR)(nil)

func DefaultParabolicSAR() ParabolicSAR {
	return ParabolicSAR{Step: DefaultSARStep, Max: DefaultSARMaxStep}
}

func (c ParabolicSAR) Name() string { return "psar" }

func (c ParabolicSAR) Size() (values, signals int) { return 1, 1 }

// Validate requires 0 < Step <= Max.
func (c ParabolicSAR) Validate() bool { return c.Step > 0 && c.Max > 0 && c.Step <= c.Max }

func (c *ParabolicSAR) Set(name, value string) error {
	switch name {
	case "step":
		return indicator.SetFloat(&c.Step, c.Name(), name, value)
	case "max":
		return indicator.SetFloat(&c.Max, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c ParabolicSAR) Init(seed core.OHLCV) (*ParabolicSARInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	p := &ParabolicSARInstance{
		cfg:     c,
		af:      c.Step,
		ep:      seed.High(),
		sar:     seed.Low(),
		uptrend: true,
	}
	p.highs = core.NewWindow(2, seed.High())
	p.lows = core.NewWindow(2, seed.Low())
	return p, nil
}

// ParabolicSARInstance tracks the trend, extreme point (EP), acceleration
// factor (AF) and SAR. highs and lows hold the two bars before the current.
type ParabolicSARInstance struct {
	cfg ParabolicSAR

	af      float64
	ep      float64
	sar     float64
	uptrend bool

	highs *core.Window[float64]
	lows  *core.Window[float64]
}

func (p *ParabolicSARInstance) Config() ParabolicSAR { return p.cfg }

func (p *ParabolicSARInstance) Name() string { return p.cfg.Name() }

func (p *ParabolicSARInstance) Size() (values, signals int) { return p.cfg.Size() }

// IsUptrend reports the trend after the last Next.
func (p *ParabolicSARInstance) IsUptrend() bool { return p.uptrend }

func (p *ParabolicSARInstance) Next(candle core.OHLCV) indicator.Result {
	high, low := candle.High(), candle.Low()
	newSAR := p.sar + p.af*(p.ep-p.sar)
	signal := core.None

	if p.uptrend {
		newSAR = math.Min(newSAR, math.Min(p.lows.At(0), p.lows.At(1)))
		if low < newSAR {
			p.uptrend = false
			newSAR = p.ep
			p.ep = low
			p.af = p.cfg.Step
			signal = core.SellAll
		} else if high > p.ep {
			p.ep = high
			p.af = math.Min(p.af+p.cfg.Step, p.cfg.Max)
		}
	} else {
		newSAR = math.Max(newSAR, math.Max(p.highs.At(0), p.highs.At(1)))
		if high > newSAR {
			p.uptrend = true
			newSAR = p.ep
			p.ep = high
			p.af = p.cfg.Step
			signal = core.BuyAll
		} else if low < p.ep {
			p.ep = low
			p.af = math.Min(p.af+p.cfg.Step, p.cfg.Max)
		}
	}

	p.sar = newSAR
	p.highs.Push(high)
	p.lows.Push(low)
	return indicator.NewResult([]float64{newSAR}, []core.Action{signal})
}
