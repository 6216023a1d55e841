package method

import "github.com/evdnx/gota/indicator/core"

// Pair is the input of the crossing detectors: does A cross B?
//
// Every comparison with NaN is false, so a pair containing NaN never
// completes a cross. +0 and -0 compare equal.
type Pair struct {
	A, B float64
}

// CrossAbove emits BuyAll on the step where A moves from at-or-below B to
// strictly above it, None otherwise.
type CrossAbove struct {
	lastDelta float64
}

func NewCrossAbove(seed Pair) *CrossAbove {
	return &CrossAbove{lastDelta: seed.A - seed.B}
}

func (c *CrossAbove) Next(p Pair) core.Action {
	delta := p.A - p.B
	crossed := c.lastDelta <= 0 && delta > 0
	c.lastDelta = delta
	return core.FromBool(crossed)
}

// CrossUnder emits BuyAll on the step where A moves from at-or-above B to
// strictly below it, None otherwise.
type CrossUnder struct {
	lastDelta float64
}

func NewCrossUnder(seed Pair) *CrossUnder {
	return &CrossUnder{lastDelta: seed.A - seed.B}
}

func (c *CrossUnder) Next(p Pair) core.Action {
	delta := p.A - p.B
	crossed := c.lastDelta >= 0 && delta < 0
	c.lastDelta = delta
	return core.FromBool(crossed)
}

// Cross folds both detectors into one signal: BuyAll when A crosses above B,
// SellAll when it crosses under, None otherwise.
type Cross struct {
	up   *CrossAbove
	down *CrossUnder
}

func NewCross(seed Pair) *Cross {
	return &Cross{up: NewCrossAbove(seed), down: NewCrossUnder(seed)}
}

func (c *Cross) Next(p Pair) core.Action {
	return c.up.Next(p).Sub(c.down.Next(p))
}

// BandCross watches a value against a fixed lower and upper level. It emits
// BuyAll when the value climbs back above lower, SellAll when it drops back
// under upper and None otherwise. The levels must satisfy lower < upper.
type BandCross struct {
	lower, upper float64
	up           *CrossAbove
	down         *CrossUnder
}

func NewBandCross(lower, upper, seed float64) *BandCross {
	return &BandCross{
		lower: lower,
		upper: upper,
		up:    NewCrossAbove(Pair{seed, lower}),
		down:  NewCrossUnder(Pair{seed, upper}),
	}
}

func (b *BandCross) Next(value float64) core.Action {
	return b.up.Next(Pair{value, b.lower}).Sub(b.down.Next(Pair{value, b.upper}))
}
