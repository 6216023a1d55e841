package volume

import (
	"fmt"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const (
	DefaultMFIPeriod     = 14
	DefaultMFIOverbought = 80.0
	DefaultMFIOversold   = 20.0
)

// MFI configures the Money Flow Index, a volume-weighted RSI: raw money flow
// is typical price times volume, counted as positive when the typical price
// rose against the previous bar and negative when it fell.
//
// Edge cases follow the RSI: no flow at all reads 50, only positive flow 100,
// only negative flow 0. The signal fires on leaving the oversold (buy) or
// overbought (sell) zone.
type MFI struct {
	Period     int
	Overbought float64
	Oversold   float64
}

var _ indicator.Config[MFI, *MFIInstance] = (*MFI)(nil)

func DefaultMFI() MFI {
	return MFI{Period: DefaultMFIPeriod, Overbought: DefaultMFIOverbought, Oversold: DefaultMFIOversold}
}

func (c MFI) Name() string { return "mfi" }

func (c MFI) Size() (values, signals int) { return 1, 1 }

func (c MFI) Validate() bool {
	return c.Period >= 1 && c.Oversold >= 0 && c.Overbought <= 100 && c.Oversold < c.Overbought
}

func (c *MFI) Set(name, value string) error {
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

func (c MFI) Init(seed core.OHLCV) (*MFIInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	change, err := method.NewChange(1, core.TypicalPrice(seed))
	if err != nil {
		return nil, indicator.Wrap(c.Name(), err)
	}
	positive, err := method.NewSMA(c.Period, 0)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("positive flow: %w", err))
	}
	negative, err := method.NewSMA(c.Period, 0)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("negative flow: %w", err))
	}
	return &MFIInstance{
		cfg:      c,
		change:   change,
		positive: positive,
		negative: negative,
		cross:    method.NewBandCross(c.Oversold, c.Overbought, core.StrengthIndex(0, 0)),
	}, nil
}

// MFIInstance is the running state of one MFI series.
type MFIInstance struct {
	cfg      MFI
	change   *method.Change
	positive *method.SMA
	negative *method.SMA
	cross    *method.BandCross
}

func (m *MFIInstance) Config() MFI { return m.cfg }

func (m *MFIInstance) Name() string { return m.cfg.Name() }

func (m *MFIInstance) Size() (values, signals int) { return m.cfg.Size() }

func (m *MFIInstance) Next(candle core.OHLCV) indicator.Result {
	tp := core.TypicalPrice(candle)
	flow := tp * candle.Volume()
	var pos, neg float64
	switch diff := m.change.Next(tp); {
	case diff > 0:
		pos = flow
	case diff < 0:
		neg = flow
	}
	mfi := core.StrengthIndex(m.positive.Next(pos), m.negative.Next(neg))
	return indicator.NewResult([]float64{mfi}, []core.Action{m.cross.Next(mfi)})
}
