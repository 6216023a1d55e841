package suite

import (
	"testing"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

func benchCandle(i int) core.Candle {
	// Vary the input slightly to prevent compiler optimizations
	high, low, close, volume := 100.0, 95.0, 98.0, 1000.0
	return core.Candle{
		O: close + float64(i%10)*0.1,
		H: high + float64(i%10)*0.1,
		L: low + float64(i%10)*0.1,
		C: close + float64(i%10)*0.1,
		V: volume + float64(i%10)*10,
	}
}

// BenchmarkSuite_Next measures one step of the default suite.
func BenchmarkSuite_Next(b *testing.B) {
	s, err := New(config.DefaultConfig(), benchCandle(0))
	if err != nil {
		b.Fatalf("Failed to create suite: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = s.Next(benchCandle(i))
	}
}

// BenchmarkSuite_PlotData measures plot export after a pre-filled run.
func BenchmarkSuite_PlotData(b *testing.B) {
	s, err := New(config.DefaultConfig(), benchCandle(0), WithHistory(200))
	if err != nil {
		b.Fatalf("Failed to create suite: %v", err)
	}
	for i := 0; i < 200; i++ {
		s.Next(benchCandle(i))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = s.PlotData(1625097600000, 60_000)
	}
}
