package trend

import (
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const DefaultHMAPeriod = 9

// HMA configures the Hull Moving Average:
// WMA(2*WMA(n/2) - WMA(n), sqrt(n)).
// The signal fires when the price crosses the average, buy on the way up.
type HMA struct {
	Period int
	Source core.Source
}

var _ indicator.Config[HMA, *HMAInstance] = (*HMA)(nil)

func DefaultHMA() HMA { return HMA{Period: DefaultHMAPeriod, Source: core.SourceClose} }

func (c HMA) Name() string { return "hma" }

func (c HMA) Size() (values, signals int) { return 1, 1 }

func (c HMA) Validate() bool {
	_, err := core.ParseSource(string(c.Source))
	return c.Period >= 1 && err == nil
}

func (c *HMA) Set(name, value string) error {
	switch name {
	case "period":
		return indicator.SetPeriod(&c.Period, c.Name(), name, value)
	case "source":
		return indicator.SetSource(&c.Source, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c HMA) Init(seed core.OHLCV) (*HMAInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	v := c.Source.Value(seed)
	hma, err := method.NewHMA(c.Period, v)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), err)
	}
	return &HMAInstance{cfg: c, hma: hma, cross: method.NewCross(method.Pair{A: v, B: v})}, nil
}

// HMAInstance is the running state of one Hull average.
type HMAInstance struct {
	cfg   HMA
	hma   *method.HMA
	cross *method.Cross
}

func (h *HMAInstance) Config() HMA { return h.cfg }

func (h *HMAInstance) Name() string { return h.cfg.Name() }

func (h *HMAInstance) Size() (values, signals int) { return h.cfg.Size() }

func (h *HMAInstance) Next(candle core.OHLCV) indicator.Result {
	v := h.cfg.Source.Value(candle)
	hma := h.hma.Next(v)
	return indicator.NewResult([]float64{hma}, []core.Action{h.cross.Next(method.Pair{A: v, B: hma})})
}
