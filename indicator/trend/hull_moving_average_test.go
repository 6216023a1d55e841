package trend

import (
	"errors"
	"testing"

	"github.com/evdnx/gota/indicator/core"
)

func TestHMA_ConstantSeries(t *testing.T) {
	inst, err := DefaultHMA().Init(core.Price(3))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i := 0; i < 20; i++ {
		r := inst.Next(core.Price(3))
		if !approxEqual(r.Value(0), 3) {
			t.Fatalf("step %d: constant input must give a constant HMA, got %.6f", i, r.Value(0))
		}
		if r.Signal(0) != core.None {
			t.Fatalf("step %d: unexpected signal %v", i, r.Signal(0))
		}
	}
}

func TestHMA_TracksRampWithoutLag(t *testing.T) {
	inst, _ := DefaultHMA().Init(core.Price(1))
	var last float64
	for i := 1; i <= 100; i++ {
		last = inst.Next(core.Price(float64(i))).Value(0)
	}
	// The Hull average removes the lag of a linear trend.
	if !approxEqual(last, 100) {
		t.Fatalf("unexpected HMA on a ramp: got %.6f, want 100", last)
	}
}

func TestHMA_PriceCross(t *testing.T) {
	cfg := DefaultHMA()
	cfg.Period = 4
	inst, _ := cfg.Init(core.Price(10))
	inst.Next(core.Price(10))
	if s := inst.Next(core.Price(5)).Signal(0); s != core.SellAll {
		t.Fatalf("expected a sell when price drops through the HMA, got %v", s)
	}
}

func TestHMA_InvalidPeriod(t *testing.T) {
	cfg := DefaultHMA()
	if err := cfg.Set("period", "0"); !errors.Is(err, core.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
	cfg.Period = 0
	if _, err := cfg.Init(core.Price(1)); err == nil {
		t.Fatal("expected error for period < 1")
	}
}
