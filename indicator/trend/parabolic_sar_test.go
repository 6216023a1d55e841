package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func hl(h, l float64) core.Candle { return core.Candle{O: l, H: h, L: l, C: h} }

func TestParabolicSAR_UptrendCalculation(t *testing.T) {
	data := []core.Candle{hl(11, 10), hl(12, 11), hl(13, 12)}
	sar, err := DefaultParabolicSAR().Init(hl(10, 9))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	// SAR stays pinned to the lows of the previous two bars until
	// 9 + 0.06*(12-9) = 9.18 clears them; AF grows 0.02 per new high.
	want := []float64{9, 9, 9.18}
	for i, d := range data {
		r := sar.Next(d)
		if !approxEqual(r.Value(0), want[i]) {
			t.Fatalf("step %d: unexpected SAR %.4f, want %.4f", i, r.Value(0), want[i])
		}
		if r.Signal(0) != core.None {
			t.Fatalf("step %d: unexpected signal %v", i, r.Signal(0))
		}
	}
	if !sar.IsUptrend() {
		t.Fatal("expected ongoing uptrend")
	}
}

func TestParabolicSAR_ReversalToDowntrend(t *testing.T) {
	sar, _ := DefaultParabolicSAR().Init(hl(10, 9))
	for _, d := range []core.Candle{hl(11, 10), hl(12, 11), hl(13, 12)} {
		sar.Next(d)
	}

	r := sar.Next(hl(12, 8)) // drop -> reversal
	if !approxEqual(r.Value(0), 13) {
		t.Fatalf("unexpected SAR after reversal: got %.4f, want 13", r.Value(0))
	}
	if sar.IsUptrend() {
		t.Fatal("expected downtrend after reversal")
	}
	if r.Signal(0) != core.SellAll {
		t.Fatalf("expected a sell on the reversal, got %v", r.Signal(0))
	}

	// Back above the SAR flips the trend up again.
	r = sar.Next(hl(20, 15))
	if !sar.IsUptrend() || r.Signal(0) != core.BuyAll {
		t.Fatalf("expected a buy on the second reversal, got %v", r)
	}
	if !approxEqual(r.Value(0), 8) {
		t.Fatalf("SAR restarts at the previous extreme, got %.4f want 8", r.Value(0))
	}
}

func TestParabolicSAR_Validate(t *testing.T) {
	cfg := DefaultParabolicSAR()
	if err := cfg.Set("step", "0.5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.Validate() {
		t.Fatal("step above max must be invalid")
	}
	if _, err := cfg.Init(hl(1, 1)); !errors.Is(err, indicator.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if err := cfg.Set("limit", "1"); !errors.Is(err, indicator.ErrUnknownParameter) {
		t.Fatalf("expected ErrUnknownParameter, got %v", err)
	}
}
