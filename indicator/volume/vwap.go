package volume

import (
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

// VWAP configures the Volume Weighted Average Price.
//
// Period 0 accumulates from the first Next on, like a session VWAP; the seed
// bar is not counted. A positive Period averages over the last Period bars,
// seeded with the seed bar like every other window. While no volume has been
// seen the VWAP is the current price. The signal fires when the price
// crosses the VWAP.
type VWAP struct {
	Period int
	Source core.Source
}

var _ indicator.Config[VWAP, *VWAPInstance] = (*VWAP)(nil)

func DefaultVWAP() VWAP { return VWAP{Source: core.SourceTP} }

func (c VWAP) Name() string { return "vwap" }

func (c VWAP) Size() (values, signals int) { return 1, 1 }

func (c VWAP) Validate() bool {
	_, err := core.ParseSource(string(c.Source))
	return c.Period >= 0 && err == nil
}

func (c *VWAP) Set(name, value string) error {
	switch name {
	case "period":
		n, err := indicator.ParseInt(c.Name(), name, value)
		if err != nil {
			return err
		}
		if n < 0 {
			return core.NewConfigError(c.Name(), name, core.ErrInvalidPeriod)
		}
		c.Period = n
		return nil
	case "source":
		return indicator.SetSource(&c.Source, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c VWAP) Init(seed core.OHLCV) (*VWAPInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	v := c.Source.Value(seed)
	inst := &VWAPInstance{cfg: c, cross: method.NewCross(method.Pair{A: v, B: v})}
	if c.Period > 0 {
		var err error
		if inst.pv, err = method.NewSMA(c.Period, v*seed.Volume()); err != nil {
			return nil, indicator.Wrap(c.Name(), err)
		}
		if inst.vol, err = method.NewSMA(c.Period, seed.Volume()); err != nil {
			return nil, indicator.Wrap(c.Name(), err)
		}
	}
	return inst, nil
}

// VWAPInstance is the running state of one VWAP. pv and vol are nil in
// cumulative mode.
type VWAPInstance struct {
	cfg VWAP

	pv, vol       *method.SMA
	cumPV, cumVol core.KahanSum

	cross *method.Cross
}

func (w *VWAPInstance) Config() VWAP { return w.cfg }

func (w *VWAPInstance) Name() string { return w.cfg.Name() }

func (w *VWAPInstance) Size() (values, signals int) { return w.cfg.Size() }

func (w *VWAPInstance) Next(candle core.OHLCV) indicator.Result {
	price, volume := w.cfg.Source.Value(candle), candle.Volume()

	var pv, vol float64
	if w.pv != nil {
		pv, vol = w.pv.Next(price*volume), w.vol.Next(volume)
	} else {
		w.cumPV.Add(price * volume)
		w.cumVol.Add(volume)
		pv, vol = w.cumPV.Value(), w.cumVol.Value()
	}

	vwap := price
	if vol > 0 {
		vwap = pv / vol
	}
	return indicator.NewResult([]float64{vwap}, []core.Action{w.cross.Next(method.Pair{A: price, B: vwap})})
}
