package core

import (
	"errors"
	"fmt"
)

// Sentinel errors – exported so callers can compare with errors.Is().
var (
	ErrInvalidPeriod = errors.New("period must be at least 1")
	ErrInvalidParams = errors.New("invalid parameters")
	ErrInvalidSource = errors.New("unknown price source")
)

// ConfigError reports which parameter of which indicator failed validation.
type ConfigError struct {
	Indicator string
	Param     string
	Err       error
}

// NewConfigError wraps err with the indicator and parameter names.
func NewConfigError(indicator, param string, err error) *ConfigError {
	return &ConfigError{Indicator: indicator, Param: param, Err: err}
}

func (e *ConfigError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %v", e.Indicator, e.Err)
	}
	return fmt.Sprintf("%s: parameter %q: %v", e.Indicator, e.Param, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
