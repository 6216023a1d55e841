// Package indicator defines how concrete indicators are configured, built and
// driven.
//
// Every indicator is a pair: a Config holding its parameters and an Instance
// holding the per-series state built from that Config and one seed candle.
// Instances consume one candle per Next call and answer with a fixed-size
// Result. Config and Instance are generic so the static path keeps concrete
// types; DynConfig and DynInstance erase them so a heterogeneous set can be
// held in one slice. Bridge connects the two without per-indicator code.
package indicator

import (
	"github.com/evdnx/gota/indicator/core"
)

// Instance is the mutable state of one indicator over one series.
type Instance[C any] interface {
	// Config returns a copy of the parameters the instance was built from.
	Config() C
	Name() string
	Size() (values, signals int)
	Next(candle core.OHLCV) Result
}

// Config is the parameter object of an indicator. Set may be called any
// number of times before Init; Init validates and seeds a fresh Instance.
type Config[C any, I Instance[C]] interface {
	Name() string
	Validate() bool
	Set(name, value string) error
	Size() (values, signals int)
	Init(seed core.OHLCV) (I, error)
}

// DynInstance is an Instance with its config type erased. Every Instance
// satisfies it as is.
type DynInstance interface {
	Name() string
	Size() (values, signals int)
	Next(candle core.OHLCV) Result
}

// DynConfig is a Config that builds DynInstances.
type DynConfig interface {
	Name() string
	Validate() bool
	Set(name, value string) error
	Size() (values, signals int)
	InitDynamic(seed core.OHLCV) (DynInstance, error)
}

// Bridge erases the concrete types of cfg. The type arguments cannot be
// inferred through the interface and must be spelled out:
//
//	dyn := indicator.Bridge[momentum.RSI, *momentum.RSIInstance](&cfg)
//
// The returned value shares cfg, so Set calls on either are visible to both.
func Bridge[C any, I Instance[C]](cfg Config[C, I]) DynConfig {
	return bridge[C, I]{cfg}
}

type bridge[C any, I Instance[C]] struct {
	Config[C, I]
}

func (b bridge[C, I]) InitDynamic(seed core.OHLCV) (DynInstance, error) {
	inst, err := b.Init(seed)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// Run steps inst over candles in order and collects every Result.
func Run(inst DynInstance, candles []core.OHLCV) *Series {
	s := NewSeries(inst.Name(), len(candles))
	for _, c := range candles {
		s.Append(inst.Next(c))
	}
	return s
}

// RunConfig builds an instance from cfg seeded with the first candle and runs
// it over all of them. An empty input yields an empty series and never calls
// Init.
func RunConfig(cfg DynConfig, candles []core.OHLCV) (*Series, error) {
	if len(candles) == 0 {
		return NewSeries(cfg.Name(), 0), nil
	}
	inst, err := cfg.InitDynamic(candles[0])
	if err != nil {
		return nil, err
	}
	return Run(inst, candles), nil
}
