package method

import "github.com/evdnx/gota/indicator/core"

// TrueRange turns a candle stream into Wilder's true range.
type TrueRange struct {
	prevClose float64
}

// NewTrueRange remembers the seed close as the first previous close.
func NewTrueRange(seed core.OHLCV) *TrueRange {
	return &TrueRange{prevClose: seed.Close()}
}

func (t *TrueRange) Next(c core.OHLCV) float64 {
	tr := core.TrueRange(c, t.prevClose)
	t.prevClose = c.Close()
	return tr
}
