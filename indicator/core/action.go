package core

import (
	"fmt"
	"math"
)

// Bound is the maximum signal strength an Action can carry.
const Bound uint8 = math.MaxUint8

// Action is a quantized trade signal: Buy(strength), None or Sell(strength)
// with strength in [0, Bound].
//
// Compare actions with Equal rather than ==. Equal treats Buy(0) and Sell(0)
// as the same signal while None stays distinct from both; == compares the raw
// representation and would tell Buy(0) and Sell(0) apart.
type Action struct {
	dir      int8 // -1 sell, 0 none, 1 buy
	strength uint8
}

var (
	// None is the absence of a signal.
	None = Action{}
	// BuyAll is a buy at full strength.
	BuyAll = Action{dir: 1, strength: Bound}
	// SellAll is a sell at full strength.
	SellAll = Action{dir: -1, strength: Bound}
)

// Buy returns a buy signal of the given strength.
func Buy(strength uint8) Action { return Action{dir: 1, strength: strength} }

// Sell returns a sell signal of the given strength.
func Sell(strength uint8) Action { return Action{dir: -1, strength: strength} }

// FromBool maps true to BuyAll and false to None.
func FromBool(v bool) Action {
	if v {
		return BuyAll
	}
	return None
}

// FromAnalog maps a sign to a full-strength signal: positive buys, negative
// sells and zero is None.
func FromAnalog(v int8) Action {
	switch {
	case v > 0:
		return BuyAll
	case v < 0:
		return SellAll
	default:
		return None
	}
}

// FromRatio quantizes a ratio in [-1, 1] into an Action. Values outside the
// range are clamped first and NaN yields None. The sign bit selects the
// direction, so -0.0 becomes Sell(0).
func FromRatio(v float64) Action {
	if math.IsNaN(v) {
		return None
	}
	v = math.Max(-1, math.Min(1, v))
	strength := uint8(math.Round(math.Abs(v) * float64(Bound)))
	if math.Signbit(v) {
		return Sell(strength)
	}
	return Buy(strength)
}

// FromOptionalRatio is FromRatio for a value that may be absent.
func FromOptionalRatio(v float64, ok bool) Action {
	if !ok {
		return None
	}
	return FromRatio(v)
}

// IsNone reports whether a carries no signal.
func (a Action) IsNone() bool { return a.dir == 0 }

// IsSome reports whether a is a buy or a sell.
func (a Action) IsSome() bool { return a.dir != 0 }

// IsBuy reports whether a is a buy of any strength.
func (a Action) IsBuy() bool { return a.dir > 0 }

// IsSell reports whether a is a sell of any strength.
func (a Action) IsSell() bool { return a.dir < 0 }

// Strength returns the signal strength; ok is false for None.
func (a Action) Strength() (strength uint8, ok bool) {
	if a.dir == 0 {
		return 0, false
	}
	return a.strength, true
}

// Analog returns 1 for buys, -1 for sells and 0 for None.
func (a Action) Analog() int8 { return a.dir }

// Sign is Analog without the zero: ok is false for None.
func (a Action) Sign() (sign int8, ok bool) {
	if a.dir == 0 {
		return 0, false
	}
	return a.dir, true
}

// Ratio converts the signal back into [-1, 1]; ok is false for None.
func (a Action) Ratio() (ratio float64, ok bool) {
	switch {
	case a.dir > 0:
		return float64(a.strength) / float64(Bound), true
	case a.dir < 0:
		return -float64(a.strength) / float64(Bound), true
	default:
		return 0, false
	}
}

// Neg swaps Buy and Sell keeping the strength. None stays None.
func (a Action) Neg() Action {
	return Action{dir: -a.dir, strength: a.strength}
}

// Sub combines two signals as signed strengths: a - b.
//
// Same-direction signals subtract and the larger term decides the direction,
// opposite directions add up (saturating at Bound) in a's direction, and a
// None operand leaves the other one (negated when it is b).
func (a Action) Sub(b Action) Action {
	switch {
	case b.dir == 0:
		return a
	case a.dir == 0:
		return b.Neg()
	case a.dir == b.dir:
		if a.strength >= b.strength {
			return Action{dir: a.dir, strength: a.strength - b.strength}
		}
		return Action{dir: -a.dir, strength: b.strength - a.strength}
	default:
		sum := int(a.strength) + int(b.strength)
		if sum > int(Bound) {
			sum = int(Bound)
		}
		return Action{dir: a.dir, strength: uint8(sum)}
	}
}

// Equal reports whether a and b carry the same signal. Zero-strength buys and
// sells are equal to each other but never to None.
func (a Action) Equal(b Action) bool {
	if a.dir == 0 || b.dir == 0 {
		return a.dir == b.dir
	}
	if a.strength == 0 && b.strength == 0 {
		return true
	}
	return a.dir == b.dir && a.strength == b.strength
}

// String renders the action as Buy(n), Sell(n) or None.
func (a Action) String() string {
	switch {
	case a.dir > 0:
		return fmt.Sprintf("Buy(%d)", a.strength)
	case a.dir < 0:
		return fmt.Sprintf("Sell(%d)", a.strength)
	default:
		return "None"
	}
}
