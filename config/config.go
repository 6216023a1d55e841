// Package config describes an indicator suite in YAML: which indicators to
// run, their parameters, their weights in the combined signal and the
// thresholds used to label it.
//
//	strong: 0.5
//	weak: 0.1
//	indicators:
//	  - name: rsi
//	    weight: 2
//	    params: {period: 5, overbought: 70, oversold: 30}
//	  - name: macd
//	    params: {fast: 12, slow: 26, signal: 9, ma: ema}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStrongThreshold = 0.5
	DefaultWeakThreshold   = 0.1
)

var ErrInvalidConfig = errors.New("invalid suite configuration")

// IndicatorSpec selects one indicator by catalog name. Params are applied
// through the indicator's Set in name order; scalar YAML values of any type
// are accepted and passed on in their string form.
type IndicatorSpec struct {
	Name   string         `yaml:"name"`
	Weight float64        `yaml:"weight,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Param is one name/value pair ready for Config.Set.
type Param struct {
	Name  string
	Value string
}

// ParamList returns Params sorted by name with their values formatted.
func (s IndicatorSpec) ParamList() []Param {
	out := make([]Param, 0, len(s.Params))
	for name, v := range s.Params {
		out = append(out, Param{Name: name, Value: fmt.Sprint(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// EffectiveWeight is Weight, or 1 when it was left out.
func (s IndicatorSpec) EffectiveWeight() float64 {
	if s.Weight == 0 {
		return 1
	}
	return s.Weight
}

// SuiteConfig is the whole suite. The combined signal is labelled strong
// beyond ±Strong and plain bullish/bearish beyond ±Weak.
type SuiteConfig struct {
	Strong     float64         `yaml:"strong"`
	Weak       float64         `yaml:"weak"`
	Indicators []IndicatorSpec `yaml:"indicators"`
}

// DefaultConfig returns a balanced momentum/trend/volume mix.
func DefaultConfig() SuiteConfig {
	return SuiteConfig{
		Strong: DefaultStrongThreshold,
		Weak:   DefaultWeakThreshold,
		Indicators: []IndicatorSpec{
			{Name: "rsi", Params: map[string]any{"period": 5}},
			{Name: "mfi", Params: map[string]any{"period": 5}},
			{Name: "hma", Params: map[string]any{"period": 9}},
			{Name: "macd"},
			{Name: "stochastic"},
			{Name: "bollinger"},
		},
	}
}

// Validate checks the thresholds and the indicator list. It does not know
// the catalog; unknown names surface when the suite is built.
func (c SuiteConfig) Validate() error {
	if c.Weak <= 0 || c.Strong > 1 || c.Weak >= c.Strong {
		return fmt.Errorf("%w: thresholds must satisfy 0 < weak < strong <= 1, got weak=%g strong=%g",
			ErrInvalidConfig, c.Weak, c.Strong)
	}
	if len(c.Indicators) == 0 {
		return fmt.Errorf("%w: no indicators", ErrInvalidConfig)
	}
	for i, spec := range c.Indicators {
		if strings.TrimSpace(spec.Name) == "" {
			return fmt.Errorf("%w: indicator #%d has no name", ErrInvalidConfig, i)
		}
		if spec.Weight < 0 {
			return fmt.Errorf("%w: indicator %q has negative weight %g", ErrInvalidConfig, spec.Name, spec.Weight)
		}
	}
	return nil
}

// Parse decodes YAML, filling omitted thresholds with the defaults, and
// validates the result. Unknown keys are rejected.
func Parse(data []byte) (SuiteConfig, error) {
	cfg := SuiteConfig{Strong: DefaultStrongThreshold, Weak: DefaultWeakThreshold}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return SuiteConfig{}, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return SuiteConfig{}, fmt.Errorf("decode suite config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SuiteConfig{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (SuiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SuiteConfig{}, fmt.Errorf("read suite config: %w", err)
	}
	return Parse(data)
}

// Marshal encodes c as YAML.
func Marshal(c SuiteConfig) ([]byte, error) {
	return yaml.Marshal(c)
}
