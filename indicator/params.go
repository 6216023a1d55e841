package indicator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/method"
)

var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// The helpers below turn the string form accepted by Config.Set into typed
// values. All failures come back as *core.ConfigError naming the indicator
// and the parameter.

// ParseInt parses a base-10 integer, ignoring surrounding blanks.
func ParseInt(indicator, param, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, core.NewConfigError(indicator, param, err)
	}
	return n, nil
}

// ParsePeriod is ParseInt restricted to values of at least 1.
func ParsePeriod(indicator, param, value string) (int, error) {
	n, err := ParseInt(indicator, param, value)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, core.NewConfigError(indicator, param, core.ErrInvalidPeriod)
	}
	return n, nil
}

// ParseFloat accepts anything strconv.ParseFloat does, NaN and Inf included;
// rejecting those is left to Validate.
func ParseFloat(indicator, param, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, core.NewConfigError(indicator, param, err)
	}
	return f, nil
}

func ParseMA(indicator, param, value string) (method.MovingAverageType, error) {
	t, err := method.ParseMovingAverageType(value)
	if err != nil {
		return "", core.NewConfigError(indicator, param, err)
	}
	return t, nil
}

func ParseSource(indicator, param, value string) (core.Source, error) {
	src, err := core.ParseSource(value)
	if err != nil {
		return "", core.NewConfigError(indicator, param, err)
	}
	return src, nil
}

// UnknownParameter is what Set returns for a name it does not recognise.
func UnknownParameter(indicator, param string) error {
	return core.NewConfigError(indicator, param, ErrUnknownParameter)
}

// InvalidConfig is what Init returns when Validate fails.
func InvalidConfig(indicator string) error {
	return core.NewConfigError(indicator, "", ErrInvalidConfig)
}

// Wrap attaches the indicator name to a method construction error.
func Wrap(indicator string, err error) error {
	if err == nil {
		return nil
	}
	return core.NewConfigError(indicator, "", err)
}

// The Set* helpers parse value into *dst and leave *dst untouched on error,
// which is what every Config.Set wants.

// SetPeriod stores a period of at least 1.
func SetPeriod(dst *int, indicator, param, value string) error {
	n, err := ParsePeriod(indicator, param, value)
	if err == nil {
		*dst = n
	}
	return err
}

// SetFloat stores any float, see ParseFloat.
func SetFloat(dst *float64, indicator, param, value string) error {
	f, err := ParseFloat(indicator, param, value)
	if err == nil {
		*dst = f
	}
	return err
}

// SetMA stores a moving average type.
func SetMA(dst *method.MovingAverageType, indicator, param, value string) error {
	t, err := ParseMA(indicator, param, value)
	if err == nil {
		*dst = t
	}
	return err
}

// SetSource stores a candle price source such as "close" or "hl2".
func SetSource(dst *core.Source, indicator, param, value string) error {
	src, err := ParseSource(indicator, param, value)
	if err == nil {
		*dst = src
	}
	return err
}
