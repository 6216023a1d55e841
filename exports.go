// Package gota is the flat entry point of the library. It re-exports the
// building blocks that live in the indicator, config and suite packages so
// most callers need a single import.
package gota

import (
	"go.uber.org/zap"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
	"github.com/evdnx/gota/indicator/momentum"
	"github.com/evdnx/gota/indicator/trend"
	"github.com/evdnx/gota/indicator/volatility"
	"github.com/evdnx/gota/indicator/volume"
	"github.com/evdnx/gota/suite"
)

// ---- Observations and signals ----
type (
	OHLCV         = core.OHLCV
	Candle        = core.Candle
	DecimalCandle = core.DecimalCandle
	Source        = core.Source
	Action        = core.Action
	ConfigError   = core.ConfigError
)

const (
	SourceClose = core.SourceClose
	SourceTP    = core.SourceTP
	SourceHL2   = core.SourceHL2
	SourceOHLC4 = core.SourceOHLC4
)

var (
	None    = core.None
	BuyAll  = core.BuyAll
	SellAll = core.SellAll

	ErrInvalidPeriod = core.ErrInvalidPeriod
	ErrInvalidSource = core.ErrInvalidSource
)

func Buy(strength uint8) Action  { return core.Buy(strength) }
func Sell(strength uint8) Action { return core.Sell(strength) }
func Price(p float64) Candle     { return core.Price(p) }

// ---- Shared data helpers ----
type PlotData = core.PlotData

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return core.GenerateTimestamps(startTime, count, interval)
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return core.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return core.FormatPlotDataCSV(data)
}

// IsValidCandle rejects candles with negative or non-finite prices, an open
// or close outside [low, high], or a bad volume.
func IsValidCandle(c OHLCV) bool        { return core.IsValidCandle(c) }
func IsNonNegativePrice(p float64) bool { return core.IsNonNegativePrice(p) }
func IsValidVolume(v float64) bool      { return core.IsValidVolume(v) }

// ---- Moving averages ----
type MovingAverageType = method.MovingAverageType

const (
	SMAMovingAverage MovingAverageType = method.SMAMovingAverage
	EMAMovingAverage MovingAverageType = method.EMAMovingAverage
	WMAMovingAverage MovingAverageType = method.WMAMovingAverage
	RMAMovingAverage MovingAverageType = method.RMAMovingAverage
	HMAMovingAverage MovingAverageType = method.HMAMovingAverage
)

func NewMovingAverage(maType MovingAverageType, period int, seed float64) (method.Float, error) {
	return method.NewMovingAverage(maType, period, seed)
}

// ---- Indicator contract ----
type (
	Result      = indicator.Result
	Series      = indicator.Series
	DynConfig   = indicator.DynConfig
	DynInstance = indicator.DynInstance
)

var (
	ErrInvalidConfig    = indicator.ErrInvalidConfig
	ErrUnknownParameter = indicator.ErrUnknownParameter
)

func RunConfig(cfg DynConfig, candles []OHLCV) (*Series, error) {
	return indicator.RunConfig(cfg, candles)
}

// ---- Indicators ----
type (
	MACD         = momentum.MACD
	RSI          = momentum.RSI
	Stochastic   = momentum.Stochastic
	CCI          = momentum.CCI
	HMA          = trend.HMA
	ParabolicSAR = trend.ParabolicSAR
	Aroon        = trend.Aroon
	ATR          = volatility.ATR
	Bollinger    = volatility.Bollinger
	MFI          = volume.MFI
	VWAP         = volume.VWAP
)

func DefaultMACD() MACD                 { return momentum.DefaultMACD() }
func DefaultRSI() RSI                   { return momentum.DefaultRSI() }
func DefaultStochastic() Stochastic     { return momentum.DefaultStochastic() }
func DefaultCCI() CCI                   { return momentum.DefaultCCI() }
func DefaultHMA() HMA                   { return trend.DefaultHMA() }
func DefaultParabolicSAR() ParabolicSAR { return trend.DefaultParabolicSAR() }
func DefaultAroon() Aroon               { return trend.DefaultAroon() }
func DefaultATR() ATR                   { return volatility.DefaultATR() }
func DefaultBollinger() Bollinger       { return volatility.DefaultBollinger() }
func DefaultMFI() MFI                   { return volume.DefaultMFI() }
func DefaultVWAP() VWAP                 { return volume.DefaultVWAP() }

// Indicator returns a default configuration by catalog name ("rsi", "macd", ...).
func Indicator(name string) (DynConfig, error) { return suite.Lookup(name) }

// ---- Configuration ----
type (
	SuiteConfig   = config.SuiteConfig
	IndicatorSpec = config.IndicatorSpec
)

func DefaultConfig() SuiteConfig                  { return config.DefaultConfig() }
func LoadConfig(path string) (SuiteConfig, error) { return config.Load(path) }

// ---- Indicator suite ----
type (
	Suite       = suite.Suite
	Snapshot    = suite.Snapshot
	SuiteOption = suite.Option
)

var ErrUnknownIndicator = suite.ErrUnknownIndicator

func NewSuite(cfg SuiteConfig, seed OHLCV, opts ...SuiteOption) (*Suite, error) {
	return suite.New(cfg, seed, opts...)
}

func WithLogger(l *zap.Logger) SuiteOption { return suite.WithLogger(l) }

func WithHistory(reserve int) SuiteOption { return suite.WithHistory(reserve) }
