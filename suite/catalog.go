package suite

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/evdnx/gota/indicator"
	"github.com/evdnx/gota/indicator/momentum"
	"github.com/evdnx/gota/indicator/trend"
	"github.com/evdnx/gota/indicator/volatility"
	"github.com/evdnx/gota/indicator/volume"
)

var ErrUnknownIndicator = errors.New("unknown indicator")

// Factory returns a fresh default configuration behind the dynamic bridge.
type Factory func() indicator.DynConfig

var catalog = map[string]Factory{
	"macd": func() indicator.DynConfig {
		c := momentum.DefaultMACD()
		return indicator.Bridge[momentum.MACD, *momentum.MACDInstance](&c)
	},
	"rsi": func() indicator.DynConfig {
		c := momentum.DefaultRSI()
		return indicator.Bridge[momentum.RSI, *momentum.RSIInstance](&c)
	},
	"stochastic": func() indicator.DynConfig {
		c := momentum.DefaultStochastic()
		return indicator.Bridge[momentum.Stochastic, *momentum.StochasticInstance](&c)
	},
	"cci": func() indicator.DynConfig {
		c := momentum.DefaultCCI()
		return indicator.Bridge[momentum.CCI, *momentum.CCIInstance](&c)
	},
	"hma": func() indicator.DynConfig {
		c := trend.DefaultHMA()
		return indicator.Bridge[trend.HMA, *trend.HMAInstance](&c)
	},
	"aroon": func() indicator.DynConfig {
		c := trend.DefaultAroon()
		return indicator.Bridge[trend.Aroon, *trend.AroonInstance](&c)
	},
	"psar": func() indicator.DynConfig {
		c := trend.DefaultParabolicSAR()
		return indicator.Bridge[trend.ParabolicSAR, *trend.ParabolicSARInstance](&c)
	},
	"atr": func() indicator.DynConfig {
		c := volatility.DefaultATR()
		return indicator.Bridge[volatility.ATR, *volatility.ATRInstance](&c)
	},
	"bollinger": func() indicator.DynConfig {
		c := volatility.DefaultBollinger()
		return indicator.Bridge[volatility.Bollinger, *volatility.BollingerInstance](&c)
	},
	"mfi": func() indicator.DynConfig {
		c := volume.DefaultMFI()
		return indicator.Bridge[volume.MFI, *volume.MFIInstance](&c)
	},
	"vwap": func() indicator.DynConfig {
		c := volume.DefaultVWAP()
		return indicator.Bridge[volume.VWAP, *volume.VWAPInstance](&c)
	},
}

// Names lists the catalog in alphabetical order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a new default configuration for name. Matching ignores case
// and surrounding blanks.
func Lookup(name string) (indicator.DynConfig, error) {
	f, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}
	return f(), nil
}
