package indicator

import (
	"fmt"

	"github.com/evdnx/gota/indicator/core"
)

// MaxOutputs bounds both the value and the signal count of a Result.
const MaxOutputs = 4

// Result is what an Instance reports for one candle: up to four raw values
// and up to four signals. It is a plain value; copying it is cheap.
type Result struct {
	values   [MaxOutputs]float64
	signals  [MaxOutputs]core.Action
	nValues  uint8
	nSignals uint8
}

// NewResult copies values and signals into a Result. More than MaxOutputs of
// either is a programming error and panics.
func NewResult(values []float64, signals []core.Action) Result {
	if len(values) > MaxOutputs || len(signals) > MaxOutputs {
		panic(fmt.Sprintf("indicator: result holds at most %d values and %d signals, got %d and %d",
			MaxOutputs, MaxOutputs, len(values), len(signals)))
	}
	var r Result
	r.nValues = uint8(copy(r.values[:], values))
	r.nSignals = uint8(copy(r.signals[:], signals))
	return r
}

// Size returns how many values and signals the result carries.
func (r Result) Size() (values, signals int) { return int(r.nValues), int(r.nSignals) }

// Value returns the i-th value. i must be below the value count.
func (r Result) Value(i int) float64 {
	if i < 0 || i >= int(r.nValues) {
		panic(fmt.Sprintf("indicator: value index %d out of range [0,%d)", i, r.nValues))
	}
	return r.values[i]
}

// Signal returns the i-th signal. i must be below the signal count.
func (r Result) Signal(i int) core.Action {
	if i < 0 || i >= int(r.nSignals) {
		panic(fmt.Sprintf("indicator: signal index %d out of range [0,%d)", i, r.nSignals))
	}
	return r.signals[i]
}

// Values returns a copy of the values.
func (r Result) Values() []float64 {
	out := make([]float64, r.nValues)
	copy(out, r.values[:r.nValues])
	return out
}

// Signals returns a copy of the signals.
func (r Result) Signals() []core.Action {
	out := make([]core.Action, r.nSignals)
	copy(out, r.signals[:r.nSignals])
	return out
}

// FirstSignal returns the first signal, or None when the result has none.
func (r Result) FirstSignal() core.Action {
	if r.nSignals == 0 {
		return core.None
	}
	return r.signals[0]
}

func (r Result) String() string {
	return fmt.Sprintf("Result{values: %v, signals: %v}", r.values[:r.nValues], r.signals[:r.nSignals])
}
