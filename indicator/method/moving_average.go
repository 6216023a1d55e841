package method

import (
	"errors"
	"fmt"
	"strings"
)

// MovingAverageType selects a moving average implementation at runtime.
type MovingAverageType string

// Moving average types understood by NewMovingAverage. The string values are
// the upper-case names accepted by ParseMovingAverageType.
const (
	SMAMovingAverage  MovingAverageType = "SMA"
	EMAMovingAverage  MovingAverageType = "EMA"
	WMAMovingAverage  MovingAverageType = "WMA"
	RMAMovingAverage  MovingAverageType = "RMA"
	DEMAMovingAverage MovingAverageType = "DEMA"
	TEMAMovingAverage MovingAverageType = "TEMA"
	HMAMovingAverage  MovingAverageType = "HMA"
	SMMMovingAverage  MovingAverageType = "SMM"
)

// ErrUnknownMovingAverage is wrapped by every error about an unsupported type.
var ErrUnknownMovingAverage = errors.New("unknown moving average type")

// ParseMovingAverageType accepts a type name case-insensitively ("ema", "Sma").
func ParseMovingAverageType(s string) (MovingAverageType, error) {
	t := MovingAverageType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case SMAMovingAverage, EMAMovingAverage, WMAMovingAverage, RMAMovingAverage,
		DEMAMovingAverage, TEMAMovingAverage, HMAMovingAverage, SMMMovingAverage:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMovingAverage, s)
}

// NewMovingAverage builds the selected average behind the Float interface so
// callers can hold any of them in one field.
func NewMovingAverage(maType MovingAverageType, period int, seed float64) (Float, error) {
	switch maType {
	case SMAMovingAverage:
		return erase(NewSMA(period, seed))
	case EMAMovingAverage:
		return erase(NewEMA(period, seed))
	case WMAMovingAverage:
		return erase(NewWMA(period, seed))
	case RMAMovingAverage:
		return erase(NewRMA(period, seed))
	case DEMAMovingAverage:
		return erase(NewDEMA(period, seed))
	case TEMAMovingAverage:
		return erase(NewTEMA(period, seed))
	case HMAMovingAverage:
		return erase(NewHMA(period, seed))
	case SMMMovingAverage:
		return erase(NewSMM(period, seed))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMovingAverage, string(maType))
	}
}

// erase keeps a constructor failure from turning into a non-nil interface
// holding a nil pointer.
func erase[M Float](m M, err error) (Float, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
