package indicator

import (
	"fmt"

	"github.com/evdnx/gota/indicator/core"
)

// Series accumulates the Results of one instance so they can be exported for
// plotting once a run is over. It is not used on the streaming path.
type Series struct {
	name    string
	results []Result
}

// NewSeries returns an empty series with room for capacity results.
func NewSeries(name string, capacity int) *Series {
	if capacity < 0 {
		capacity = 0
	}
	return &Series{name: name, results: make([]Result, 0, capacity)}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Len() int { return len(s.results) }

func (s *Series) Append(r Result) { s.results = append(s.results, r) }

// At returns the i-th result in arrival order.
func (s *Series) At(i int) Result { return s.results[i] }

// Column returns value column col of every result. Results too short to have
// that column contribute 0.
func (s *Series) Column(col int) []float64 {
	out := make([]float64, len(s.results))
	for i, r := range s.results {
		if col < int(r.nValues) {
			out[i] = r.values[col]
		}
	}
	return out
}

// SignalColumn returns signal column col as ratios in [-1, 1]; None maps to 0.
func (s *Series) SignalColumn(col int) []float64 {
	out := make([]float64, len(s.results))
	for i, r := range s.results {
		if col < int(r.nSignals) {
			out[i], _ = r.signals[col].Ratio()
		}
	}
	return out
}

// PlotData exports one line per value column and one scatter per signal
// column. names label the value columns; missing names fall back to
// "<series> #<n>".
func (s *Series) PlotData(startTime, interval int64, names ...string) []core.PlotData {
	if len(s.results) == 0 {
		return nil
	}
	nValues, nSignals := s.results[0].Size()
	x := make([]float64, len(s.results))
	for i := range x {
		x[i] = float64(i)
	}
	ts := core.GenerateTimestamps(startTime, len(s.results), interval)

	plots := make([]core.PlotData, 0, nValues+nSignals)
	for col := 0; col < nValues; col++ {
		name := fmt.Sprintf("%s #%d", s.name, col)
		if col < len(names) && names[col] != "" {
			name = names[col]
		}
		plots = append(plots, core.PlotData{
			Name:      name,
			X:         x,
			Y:         s.Column(col),
			Type:      "line",
			Timestamp: ts,
		})
	}
	for col := 0; col < nSignals; col++ {
		plots = append(plots, core.PlotData{
			Name:      fmt.Sprintf("%s signal #%d", s.name, col),
			X:         x,
			Y:         s.SignalColumn(col),
			Type:      "scatter",
			Signal:    "ratio",
			Timestamp: ts,
		})
	}
	return plots
}
