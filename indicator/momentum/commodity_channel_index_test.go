package momentum

import (
	"testing"

	"github.com/evdnx/gota/indicator/core"
)

func TestCCI_Calculation(t *testing.T) {
	cfg := DefaultCCI()
	cfg.Period = 3

	bars := []bar{
		{10, 8, 9},
		{11, 9, 10},
		{12, 10, 11},
	}
	inst, err := cfg.Init(bars[0].candle())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	var val float64
	for _, b := range bars {
		val = inst.Next(b.candle()).Value(0)
	}

	// TP window [9,10,11]: SMA = 10, mean deviation = 2/3,
	// CCI = (11-10)/(0.015*(2/3)) = 100.
	if !approxEqual(val, 100) {
		t.Fatalf("unexpected CCI: got %.6f, want 100", val)
	}

	val = inst.Next(bar{10, 8, 9}.candle()).Value(0)
	if !approxEqual(val, -100) {
		t.Fatalf("unexpected CCI after drop: got %.6f, want -100", val)
	}
}

func TestCCI_ZeroDeviation(t *testing.T) {
	inst, _ := DefaultCCI().Init(core.Price(7))
	if r := feed(t, inst, 7, 7); r.Value(0) != 0 || r.Signal(0) != core.None {
		t.Fatalf("flat input must read 0 without a signal, got %v", r)
	}
}

func TestCCI_OverboughtExit(t *testing.T) {
	cfg := DefaultCCI()
	cfg.Period = 5
	inst, _ := cfg.Init(core.Price(9))

	// window [9,9,9,9,20]: mean 11.2, mean deviation 3.52, CCI ~166.7
	r := feed(t, inst, 9, 20)
	if r.Value(0) <= 100 || r.Signal(0) != core.None {
		t.Fatalf("expected CCI above +100 without a signal yet, got %v", r)
	}
	// window [9,9,9,20,9]: CCI ~-41.7, back under +100
	r = inst.Next(core.Price(9))
	if r.Signal(0) != core.SellAll {
		t.Fatalf("expected a sell on the overbought exit, got %v", r)
	}
}

func TestCCI_InvalidPeriod(t *testing.T) {
	cfg := DefaultCCI()
	cfg.Period = 0
	if _, err := cfg.Init(core.Price(1)); err == nil {
		t.Fatal("expected error for period < 1")
	}
}
