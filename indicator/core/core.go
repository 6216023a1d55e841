package core

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

/* -------------------------------------------------------------------------
   Numeric helpers
--------------------------------------------------------------------------*/

// Clamp restricts value to [min, max]. A degenerate range returns min.
func Clamp(value, min, max float64) float64 {
	if min == max {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// StandardDeviation computes the sample standard deviation of data around
// mean. Fewer than two points give 0.
func StandardDeviation(data []float64, mean float64) float64 {
	if len(data) < 2 {
		return 0
	}
	var sumSq float64
	for _, v := range data {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(data)-1))
}

// StrengthIndex maps an up/down pair (average gains and losses, positive and
// negative money flow) onto 0..100 as 100 - 100/(1+up/down). No movement at
// all reads 50, only upward movement 100 and only downward movement 0.
func StrengthIndex(up, down float64) float64 {
	if down == 0 {
		if up == 0 {
			return 50
		}
		return 100
	}
	if up == 0 {
		return 0
	}
	return Clamp(100-100/(1+up/down), 0, 100)
}

// KahanSum is a compensated running sum. The zero value is ready to use.
type KahanSum struct {
	sum  float64
	comp float64
}

// Add folds v into the sum.
func (k *KahanSum) Add(v float64) {
	y := v - k.comp
	t := k.sum + y
	k.comp = (t - k.sum) - y
	k.sum = t
}

// Value returns the current total.
func (k *KahanSum) Value() float64 { return k.sum }

/* -------------------------------------------------------------------------
   Validation helpers
--------------------------------------------------------------------------*/

// IsNonNegativePrice reports whether price is finite and >= 0.
func IsNonNegativePrice(price float64) bool {
	return price >= 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}

// IsValidVolume reports whether volume is finite and >= 0.
func IsValidVolume(volume float64) bool {
	return volume >= 0 && !math.IsNaN(volume) && !math.IsInf(volume, 0)
}

/* -------------------------------------------------------------------------
   Plotting utilities
--------------------------------------------------------------------------*/

type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Type      string    `json:"type,omitempty"`
	Signal    string    `json:"signal,omitempty"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	if count <= 0 {
		return nil
	}
	ts := make([]int64, count)
	for i := 0; i < count; i++ {
		ts[i] = startTime + int64(i)*interval
	}
	return ts
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

// FormatPlotDataCSV writes one row per point. Fields containing commas or
// quotes are quoted.
func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write([]string{"Name", "X", "Y", "Type", "Signal", "Timestamp"}); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
		for i := 0; i < len(d.X); i++ {
			ts := ""
			if i < len(d.Timestamp) {
				ts = strconv.FormatInt(d.Timestamp[i], 10)
			}
			row := []string{
				d.Name,
				strconv.FormatFloat(d.X[i], 'f', 6, 64),
				strconv.FormatFloat(d.Y[i], 'f', 6, 64),
				d.Type,
				d.Signal,
				ts,
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("failed to write csv row for %s: %w", d.Name, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return sb.String(), nil
}
