// Package method holds the incremental transforms every indicator is built
// from.
//
// A method is constructed once from its parameters and a seed observation
// (New<Name>(params..., seed)), which is the only place parameter errors are
// reported. After that Next consumes one input and returns one output and
// never fails. Seeding fills every internal window with the seed so the very
// first Next already produces a meaningful value; there is no warm-up state.
package method

// Method is a stateful single-step transform from I to O.
type Method[I, O any] interface {
	Next(value I) O
}

// Float is the common float64 -> float64 shape used by moving averages.
type Float = Method[float64, float64]

// Over feeds inputs to m in order and collects one output per input.
// The result always has len(inputs) elements.
func Over[O, I any, M Method[I, O]](m M, inputs []I) []O {
	out := make([]O, len(inputs))
	for i, v := range inputs {
		out[i] = m.Next(v)
	}
	return out
}

// Apply replaces each element of seq with m's output for it, left to right.
func Apply[T any, M Method[T, T]](m M, seq []T) {
	for i := range seq {
		seq[i] = m.Next(seq[i])
	}
}

// NewOver builds a method seeded with the first input and runs it over the
// whole slice. An empty slice yields an empty result without calling ctor.
func NewOver[O, P, I any, M Method[I, O]](ctor func(P, I) (M, error), params P, inputs []I) ([]O, error) {
	if len(inputs) == 0 {
		return []O{}, nil
	}
	m, err := ctor(params, inputs[0])
	if err != nil {
		return nil, err
	}
	return Over[O](m, inputs), nil
}

// NewApply is the in-place counterpart of NewOver.
func NewApply[T, P any, M Method[T, T]](ctor func(P, T) (M, error), params P, seq []T) error {
	if len(seq) == 0 {
		return nil
	}
	m, err := ctor(params, seq[0])
	if err != nil {
		return err
	}
	Apply(m, seq)
	return nil
}
