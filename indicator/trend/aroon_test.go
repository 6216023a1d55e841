package trend

import (
	"errors"
	"testing"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
)

func TestAroon_StrongTrendZones(t *testing.T) {
	cfg := DefaultAroon()
	cfg.Period = 2
	inst, err := cfg.Init(hl(10, 9))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	steps := []struct {
		bar       core.Candle
		up, down  float64
		oscillate float64
		signal    core.Action
	}{
		{hl(11, 10), 100, 50, 50, core.None},
		{hl(12, 11), 100, 0, 100, core.BuyAll},  // new high, low two bars back
		{hl(11.5, 8), 50, 100, -50, core.None},  // not yet below -70
		{hl(11, 7), 0, 100, -100, core.SellAll}, // high is two bars old
	}
	for i, s := range steps {
		r := inst.Next(s.bar)
		if !approxEqual(r.Value(0), s.up) || !approxEqual(r.Value(1), s.down) || !approxEqual(r.Value(2), s.oscillate) {
			t.Fatalf("step %d: got up=%.2f down=%.2f osc=%.2f, want %.2f %.2f %.2f",
				i, r.Value(0), r.Value(1), r.Value(2), s.up, s.down, s.oscillate)
		}
		if r.Signal(0) != s.signal {
			t.Fatalf("step %d: got signal %v, want %v", i, r.Signal(0), s.signal)
		}
	}
}

func TestAroon_FlatMarket(t *testing.T) {
	inst, err := DefaultAroon().Init(hl(10, 9))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < 30; i++ {
		r := inst.Next(hl(10, 9))
		if r.Value(0) != 100 || r.Value(1) != 100 || r.Value(2) != 0 {
			t.Fatalf("step %d: equal extremes must read 100/100/0, got %v", i, r)
		}
		if r.Signal(0) != core.None {
			t.Fatalf("step %d: unexpected signal %v", i, r.Signal(0))
		}
	}
}

func TestAroon_Config(t *testing.T) {
	cfg := DefaultAroon()
	if err := cfg.Set("strong", "100"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := cfg.Init(hl(1, 1)); !errors.Is(err, indicator.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if err := cfg.Set("lookback", "3"); !errors.Is(err, indicator.ErrUnknownParameter) {
		t.Fatalf("expected ErrUnknownParameter, got %v", err)
	}
}
