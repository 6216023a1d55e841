package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Strong != DefaultStrongThreshold || cfg.Weak != DefaultWeakThreshold {
		t.Fatalf("unexpected default thresholds: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(*SuiteConfig)
		wantErr bool
	}{
		{
			name:    "weak above strong",
			modify:  func(c *SuiteConfig) { c.Weak, c.Strong = 0.6, 0.5 },
			wantErr: true,
		},
		{
			name:    "zero weak threshold",
			modify:  func(c *SuiteConfig) { c.Weak = 0 },
			wantErr: true,
		},
		{
			name:    "strong above one",
			modify:  func(c *SuiteConfig) { c.Strong = 1.5 },
			wantErr: true,
		},
		{
			name:    "no indicators",
			modify:  func(c *SuiteConfig) { c.Indicators = nil },
			wantErr: true,
		},
		{
			name:    "blank name",
			modify:  func(c *SuiteConfig) { c.Indicators[0].Name = " " },
			wantErr: true,
		},
		{
			name:    "negative weight",
			modify:  func(c *SuiteConfig) { c.Indicators[0].Weight = -1 },
			wantErr: true,
		},
		{
			name:    "valid custom thresholds",
			modify:  func(c *SuiteConfig) { c.Weak, c.Strong = 0.2, 1 },
			wantErr: false,
		},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.modify(&cfg)
		err := cfg.Validate()
		if tc.wantErr && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
strong: 0.6
indicators:
  - name: rsi
    weight: 2
    params:
      period: 7
      overbought: 75.5
      source: hl2
  - name: vwap
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.Strong)
	assert.Equal(t, DefaultWeakThreshold, cfg.Weak, "omitted thresholds keep their default")
	require.Len(t, cfg.Indicators, 2)

	rsi := cfg.Indicators[0]
	assert.Equal(t, 2.0, rsi.EffectiveWeight())
	assert.Equal(t, []Param{
		{Name: "overbought", Value: "75.5"},
		{Name: "period", Value: "7"},
		{Name: "source", Value: "hl2"},
	}, rsi.ParamList())

	vwap := cfg.Indicators[1]
	assert.Equal(t, 1.0, vwap.EffectiveWeight())
	assert.Empty(t, vwap.ParamList())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Parse([]byte("indicators: [{name: rsi, colour: red}]"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Parse([]byte("indicators: []"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Parse([]byte("strong: [1, 2]"))
	assert.Error(t, err)
}

func TestLoad_RoundTrip(t *testing.T) {
	want := DefaultConfig()
	data, err := Marshal(want)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got.Indicators, len(want.Indicators))
	for i := range want.Indicators {
		assert.Equal(t, want.Indicators[i].Name, got.Indicators[i].Name)
		assert.Equal(t, want.Indicators[i].ParamList(), got.Indicators[i].ParamList())
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
