package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// OHLCV is the only thing the library needs from an observation.
type OHLCV interface {
	Open() float64
	High() float64
	Low() float64
	Close() float64
	Volume() float64
}

// Candle is a plain float64 bar.
type Candle struct {
	O, H, L, C, V float64
}

func (c Candle) Open() float64   { return c.O }
func (c Candle) High() float64   { return c.H }
func (c Candle) Low() float64    { return c.L }
func (c Candle) Close() float64  { return c.C }
func (c Candle) Volume() float64 { return c.V }

// Price builds a flat candle where every price equals p and volume is zero.
// Handy for driving candle-based indicators from a scalar series.
func Price(p float64) Candle { return Candle{O: p, H: p, L: p, C: p} }

// DecimalCandle adapts exchange data kept as decimals. Conversions are
// inexact by nature; the indicators work on float64.
type DecimalCandle struct {
	O, H, L, C, V decimal.Decimal
}

func (c DecimalCandle) Open() float64   { return c.O.InexactFloat64() }
func (c DecimalCandle) High() float64   { return c.H.InexactFloat64() }
func (c DecimalCandle) Low() float64    { return c.L.InexactFloat64() }
func (c DecimalCandle) Close() float64  { return c.C.InexactFloat64() }
func (c DecimalCandle) Volume() float64 { return c.V.InexactFloat64() }

// TypicalPrice returns (high + low + close) / 3.
func TypicalPrice(c OHLCV) float64 { return (c.High() + c.Low() + c.Close()) / 3 }

// HL2 returns the high-low midpoint.
func HL2(c OHLCV) float64 { return (c.High() + c.Low()) / 2 }

// OHLC4 returns the mean of the four prices.
func OHLC4(c OHLCV) float64 { return (c.Open() + c.High() + c.Low() + c.Close()) / 4 }

// TrueRange is the larger of the bar range and the gaps to prevClose.
func TrueRange(c OHLCV, prevClose float64) float64 {
	return math.Max(c.High(), prevClose) - math.Min(c.Low(), prevClose)
}

// IsValidCandle checks that every price is finite and non-negative, the open
// and close sit inside [low, high] and volume is valid.
func IsValidCandle(c OHLCV) bool {
	o, h, l, cl := c.Open(), c.High(), c.Low(), c.Close()
	if !IsNonNegativePrice(o) || !IsNonNegativePrice(h) || !IsNonNegativePrice(l) || !IsNonNegativePrice(cl) {
		return false
	}
	if h < l || o < l || o > h || cl < l || cl > h {
		return false
	}
	return IsValidVolume(c.Volume())
}

// Source selects the scalar an indicator reads from each candle.
type Source string

const (
	SourceClose  Source = "close"
	SourceOpen   Source = "open"
	SourceHigh   Source = "high"
	SourceLow    Source = "low"
	SourceVolume Source = "volume"
	SourceTP     Source = "tp"
	SourceHL2    Source = "hl2"
	SourceOHLC4  Source = "ohlc4"
)

// ParseSource accepts a source name case-insensitively.
func ParseSource(s string) (Source, error) {
	src := Source(strings.ToLower(strings.TrimSpace(s)))
	switch src {
	case SourceClose, SourceOpen, SourceHigh, SourceLow, SourceVolume, SourceTP, SourceHL2, SourceOHLC4:
		return src, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSource, s)
}

// Value extracts the selected scalar. Unknown sources read the close.
func (s Source) Value(c OHLCV) float64 {
	switch s {
	case SourceOpen:
		return c.Open()
	case SourceHigh:
		return c.High()
	case SourceLow:
		return c.Low()
	case SourceVolume:
		return c.Volume()
	case SourceTP:
		return TypicalPrice(c)
	case SourceHL2:
		return HL2(c)
	case SourceOHLC4:
		return OHLC4(c)
	default:
		return c.Close()
	}
}
