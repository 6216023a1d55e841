package momentum

import (
	"math"
	"testing"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

type bar struct {
	h, l, c float64
}

func (b bar) candle() core.Candle { return core.Candle{O: b.c, H: b.h, L: b.l, C: b.c} }

// feed runs inst over closes and returns the last result.
func feed(t *testing.T, inst indicator.DynInstance, closes ...float64) indicator.Result {
	t.Helper()
	var r indicator.Result
	for _, c := range closes {
		r = inst.Next(core.Price(c))
	}
	return r
}
