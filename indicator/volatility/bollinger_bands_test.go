package volatility

import (
	"testing"

	"github.com/evdnx/gota/indicator/core"
)

func TestBollinger_Calculation(t *testing.T) {
	cfg := DefaultBollinger()
	cfg.Period, cfg.Multiplier = 3, 2
	bb, err := cfg.Init(core.Price(10))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	var r = bb.Next(core.Price(10))
	for _, c := range []float64{12, 14} {
		r = bb.Next(core.Price(c))
	}

	mid, upper, lower := r.Value(0), r.Value(1), r.Value(2)
	if upper != 16 || mid != 12 || lower != 8 {
		t.Fatalf("unexpected bands: upper %.2f, mid %.2f, lower %.2f (want 16,12,8)", upper, mid, lower)
	}
}

func TestBollinger_FlatSeriesCollapses(t *testing.T) {
	bb, _ := DefaultBollinger().Init(core.Price(5))
	r := bb.Next(core.Price(5))
	if r.Value(0) != 5 || r.Value(1) != 5 || r.Value(2) != 5 {
		t.Fatalf("flat input must collapse the bands, got %v", r)
	}
	if r.Signal(0) != core.None {
		t.Fatalf("unexpected signal %v", r.Signal(0))
	}
}

func TestBollinger_BandCrossings(t *testing.T) {
	cfg := DefaultBollinger()
	cfg.Period, cfg.Multiplier = 4, 1
	bb, _ := cfg.Init(core.Price(10))

	steps := []struct {
		close float64
		want  core.Action
	}{
		// [10,10,10,12]: bands 9.5..11.5, price leaves the collapsed lower band upwards
		{12, core.BuyAll},
		// [10,10,12,4]: bands ~5.54..12.46, price falls back under the upper band
		{4, core.SellAll},
		// [10,12,4,9]: bands ~5.35..12.15, price climbs back above the lower band
		{9, core.BuyAll},
	}
	for i, s := range steps {
		if got := bb.Next(core.Price(s.close)).Signal(0); got != s.want {
			t.Fatalf("step %d: got %v, want %v", i, got, s.want)
		}
	}
}

func TestBollinger_InvalidMultiplier(t *testing.T) {
	cfg := DefaultBollinger()
	if err := cfg.Set("multiplier", "-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := cfg.Init(core.Price(1)); err == nil {
		t.Fatal("expected error for a negative multiplier")
	}
}
