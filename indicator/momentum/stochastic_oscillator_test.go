package momentum

import (
	"testing"

	"github.com/evdnx/gota/indicator/core"
)

func TestStochastic_Calculation(t *testing.T) {
	cfg := DefaultStochastic()
	cfg.K, cfg.D = 3, 2

	data := []bar{
		{10, 5, 7},
		{12, 6, 11},
		{14, 5, 13},
		{15, 9, 10},
	}
	inst, err := cfg.Init(data[0].candle())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	// %K: 40, 85.7143, 88.8889, 50 (range of the last three bars).
	// %D: SMA(2) of %K seeded with the first %K.
	wantK := []float64{40, 600.0 / 7, 800.0 / 9, 50}
	wantD := []float64{40, (40 + 600.0/7) / 2, (600.0/7 + 800.0/9) / 2, (800.0/9 + 50) / 2}
	for i, b := range data {
		r := inst.Next(b.candle())
		if !approxEqual(r.Value(0), wantK[i]) {
			t.Fatalf("step %d: unexpected %%K %.6f, want %.6f", i, r.Value(0), wantK[i])
		}
		if !approxEqual(r.Value(1), wantD[i]) {
			t.Fatalf("step %d: unexpected %%D %.6f, want %.6f", i, r.Value(1), wantD[i])
		}
		if i == 1 && r.Signal(0) != core.BuyAll {
			t.Fatalf("expected %%K to cross above %%D at step 1, got %v", r.Signal(0))
		}
	}
}

func TestStochastic_FlatRangeIsNeutral(t *testing.T) {
	inst, _ := DefaultStochastic().Init(core.Price(3))
	r := feed(t, inst, 3, 3, 3)
	if r.Value(0) != 50 || r.Value(1) != 50 {
		t.Fatalf("flat range must read 50/50, got %v", r)
	}
	if r.Signal(0) != core.None || r.Signal(1) != core.None {
		t.Fatalf("flat range must not signal, got %v", r)
	}
}

func TestStochastic_ZoneExit(t *testing.T) {
	cfg := DefaultStochastic()
	cfg.K, cfg.D = 3, 3
	inst, _ := cfg.Init(bar{10, 9, 9.5}.candle())
	inst.Next(bar{10, 5, 5}.candle()) // close at the low: %K 0
	r := inst.Next(bar{8, 6, 7}.candle())
	// range 10..5, close 7: %K 40, back above 20
	if r.Signal(1) != core.BuyAll {
		t.Fatalf("expected an oversold exit, got %v (%%K %.2f)", r.Signal(1), r.Value(0))
	}
}

func TestStochastic_Set(t *testing.T) {
	cfg := DefaultStochastic()
	if err := cfg.Set("k", "5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cfg.Set("d", "-1"); err == nil {
		t.Fatal("expected an error for d=-1")
	}
	if err := cfg.Set("smooth", "3"); err == nil {
		t.Fatal("expected an error for an unknown parameter")
	}
	if cfg.K != 5 || cfg.D != DefaultStochasticDPeriod {
		t.Fatalf("unexpected config after Set: %+v", cfg)
	}
}
