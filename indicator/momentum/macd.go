package momentum

import (
	"fmt"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACD configures the Moving Average Convergence Divergence indicator.
//
// Values: MACD line (fast MA - slow MA), signal line (EMA of the MACD line),
// histogram (MACD - signal).
// Signals: MACD crossing its signal line, MACD crossing zero.
type MACD struct {
	Fast   int
	Slow   int
	Signal int
	MA     method.MovingAverageType
	Source core.Source
}

var _ indicator.Config[MACD, *MACDInstance] = (*MACD)(nil)

// DefaultMACD returns the standard 12/26/9 EMA setup on closes.
func DefaultMACD() MACD {
	return MACD{
		Fast:   DefaultMACDFastPeriod,
		Slow:   DefaultMACDSlowPeriod,
		Signal: DefaultMACDSignalPeriod,
		MA:     method.EMAMovingAverage,
		Source: core.SourceClose,
	}
}

func (c MACD) Name() string { return "macd" }

func (c MACD) Size() (values, signals int) { return 3, 2 }

// Validate requires positive periods with fast strictly below slow.
func (c MACD) Validate() bool {
	if c.Fast < 1 || c.Slow < 1 || c.Signal < 1 || c.Fast >= c.Slow {
		return false
	}
	if _, err := method.ParseMovingAverageType(string(c.MA)); err != nil {
		return false
	}
	_, err := core.ParseSource(string(c.Source))
	return err == nil
}

func (c *MACD) Set(name, value string) error {
	switch name {
	case "fast":
		return indicator.SetPeriod(&c.Fast, c.Name(), name, value)
	case "slow":
		return indicator.SetPeriod(&c.Slow, c.Name(), name, value)
	case "signal":
		return indicator.SetPeriod(&c.Signal, c.Name(), name, value)
	case "ma":
		return indicator.SetMA(&c.MA, c.Name(), name, value)
	case "source":
		return indicator.SetSource(&c.Source, c.Name(), name, value)
	default:
		return indicator.UnknownParameter(c.Name(), name)
	}
}

func (c MACD) Init(seed core.OHLCV) (*MACDInstance, error) {
	if !c.Validate() {
		return nil, indicator.InvalidConfig(c.Name())
	}
	v := c.Source.Value(seed)
	fast, err := method.NewMovingAverage(c.MA, c.Fast, v)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("fast average: %w", err))
	}
	slow, err := method.NewMovingAverage(c.MA, c.Slow, v)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("slow average: %w", err))
	}
	// Fast and slow start equal, so the MACD line starts at zero.
	signal, err := method.NewEMA(c.Signal, 0)
	if err != nil {
		return nil, indicator.Wrap(c.Name(), fmt.Errorf("signal average: %w", err))
	}
	return &MACDInstance{
		cfg:       c,
		fast:      fast,
		slow:      slow,
		signal:    signal,
		crossLine: method.NewCross(method.Pair{}),
		crossZero: method.NewCross(method.Pair{}),
	}, nil
}

// MACDInstance is the running state of one MACD series.
type MACDInstance struct {
	cfg       MACD
	fast      method.Float
	slow      method.Float
	signal    *method.EMA
	crossLine *method.Cross
	crossZero *method.Cross
}

func (m *MACDInstance) Config() MACD { return m.cfg }

func (m *MACDInstance) Name() string { return m.cfg.Name() }

func (m *MACDInstance) Size() (values, signals int) { return m.cfg.Size() }

func (m *MACDInstance) Next(candle core.OHLCV) indicator.Result {
	v := m.cfg.Source.Value(candle)
	macd := m.fast.Next(v) - m.slow.Next(v)
	sig := m.signal.Next(macd)
	return indicator.NewResult(
		[]float64{macd, sig, macd - sig},
		[]core.Action{
			m.crossLine.Next(method.Pair{A: macd, B: sig}),
			m.crossZero.Next(method.Pair{A: macd}),
		},
	)
}
