// Package suite runs a configured mix of indicators side by side and folds
// their signals into one weighted verdict.
package suite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/core"
)

const (
	LabelStrongBullish = "Strong Bullish"
	LabelBullish       = "Bullish"
	LabelNeutral       = "Neutral"
	LabelBearish       = "Bearish"
	LabelStrongBearish = "Strong Bearish"
)

// Option customises New.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	history bool
	reserve int
}

// WithLogger sets the logger used while building and resetting the suite.
// Stepping never logs.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHistory keeps every Result so PlotData can export the run. reserve is
// the expected number of steps.
func WithHistory(reserve int) Option {
	return func(o *options) {
		o.history = true
		o.reserve = reserve
	}
}

type entry struct {
	spec    config.IndicatorSpec
	weight  float64
	cfg     indicator.DynConfig
	inst    indicator.DynInstance
	history *indicator.Series
}

// Suite owns one instance per configured indicator.
type Suite struct {
	cfg     config.SuiteConfig
	opts    options
	log     *zap.Logger
	entries []entry
}

// Snapshot is the outcome of one step: every instance's Result in
// configuration order plus the combined signal and its label.
type Snapshot struct {
	Results  []indicator.Result
	Combined core.Action
	Label    string
}

// New validates cfg, looks every indicator up in the catalog, applies its
// params and initialises it from seed.
func New(cfg config.SuiteConfig, seed core.OHLCV, opts ...Option) (*Suite, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if err := cfg.Validate(); err != nil {
		log.Error("invalid suite configuration", zap.Error(err))
		return nil, err
	}

	s := &Suite{cfg: cfg, opts: o, log: log, entries: make([]entry, 0, len(cfg.Indicators))}
	for _, spec := range cfg.Indicators {
		dyn, err := Lookup(spec.Name)
		if err != nil {
			log.Error("unknown indicator", zap.String("indicator", spec.Name), zap.Strings("known", Names()))
			return nil, err
		}
		for _, p := range spec.ParamList() {
			if err := dyn.Set(p.Name, p.Value); err != nil {
				log.Error("indicator parameter rejected",
					zap.String("indicator", spec.Name), zap.String("param", p.Name), zap.Error(err))
				return nil, fmt.Errorf("suite: %w", err)
			}
		}
		e := entry{spec: spec, weight: spec.EffectiveWeight(), cfg: dyn}
		if err := s.init(&e, seed); err != nil {
			return nil, err
		}
		s.entries = append(s.entries, e)
	}
	log.Info("suite built", zap.Int("indicators", len(s.entries)))
	return s, nil
}

func (s *Suite) init(e *entry, seed core.OHLCV) error {
	inst, err := e.cfg.InitDynamic(seed)
	if err != nil {
		s.log.Error("indicator construction failed", zap.String("indicator", e.spec.Name), zap.Error(err))
		return fmt.Errorf("suite: %w", err)
	}
	values, signals := inst.Size()
	s.log.Debug("indicator constructed",
		zap.String("indicator", inst.Name()),
		zap.Int("values", values),
		zap.Int("signals", signals),
		zap.Float64("weight", e.weight))
	e.inst = inst
	if s.opts.history {
		e.history = indicator.NewSeries(inst.Name(), s.opts.reserve)
	}
	return nil
}

// Len is the number of indicators in the suite.
func (s *Suite) Len() int { return len(s.entries) }

// Instance returns the i-th indicator in configuration order.
func (s *Suite) Instance(i int) indicator.DynInstance { return s.entries[i].inst }

// Next steps every indicator with candle. Only indicators that emit signals
// take part in the combined verdict: it is the weighted mean of their first
// signal's ratio, where None counts as 0. Combined is None when nothing fired.
func (s *Suite) Next(candle core.OHLCV) Snapshot {
	snap := Snapshot{Results: make([]indicator.Result, len(s.entries))}
	var sum, weight float64
	fired := false
	for i := range s.entries {
		e := &s.entries[i]
		r := e.inst.Next(candle)
		snap.Results[i] = r
		if e.history != nil {
			e.history.Append(r)
		}
		if _, n := r.Size(); n == 0 {
			continue
		}
		weight += e.weight
		if ratio, ok := r.FirstSignal().Ratio(); ok {
			sum += ratio * e.weight
			fired = true
		}
	}
	snap.Combined = core.None
	if fired && weight > 0 {
		snap.Combined = core.FromRatio(sum / weight)
	}
	snap.Label = s.Label(snap.Combined)
	return snap
}

// Label grades a against the configured thresholds.
func (s *Suite) Label(a core.Action) string {
	return Label(a, s.cfg.Strong, s.cfg.Weak)
}

// Label maps a combined signal to one of five labels: beyond ±strong is a
// strong verdict, beyond ±weak a plain one, anything else (None included)
// is neutral.
func Label(a core.Action, strong, weak float64) string {
	r, ok := a.Ratio()
	switch {
	case !ok:
		return LabelNeutral
	case r >= strong:
		return LabelStrongBullish
	case r >= weak:
		return LabelBullish
	case r <= -strong:
		return LabelStrongBearish
	case r <= -weak:
		return LabelBearish
	default:
		return LabelNeutral
	}
}

// Run steps the suite over candles and returns every snapshot.
func (s *Suite) Run(candles []core.OHLCV) []Snapshot {
	out := make([]Snapshot, len(candles))
	for i, c := range candles {
		out[i] = s.Next(c)
	}
	return out
}

// Reset rebuilds every indicator from seed with its current configuration
// and clears the history.
func (s *Suite) Reset(seed core.OHLCV) error {
	for i := range s.entries {
		if err := s.init(&s.entries[i], seed); err != nil {
			return err
		}
	}
	s.log.Info("suite reset", zap.Int("indicators", len(s.entries)))
	return nil
}

// PlotData concatenates the plot series of every indicator. It is nil unless
// the suite was built WithHistory.
func (s *Suite) PlotData(startTime, interval int64) []core.PlotData {
	var out []core.PlotData
	for _, e := range s.entries {
		if e.history == nil {
			continue
		}
		out = append(out, e.history.PlotData(startTime, interval)...)
	}
	return out
}
