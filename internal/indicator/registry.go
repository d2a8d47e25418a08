package indicator

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Indicator is the interface for all technical indicators.
type Indicator interface {
	Name() string
	Calculate(in Input) ([]Line, error)
}

// Input is a set of parallel price series. Only Close is required by most
// indicators; High and Low are needed by the stochastic oscillator.
type Input struct {
	High  []float64
	Low   []float64
	Close []float64
}

// Line is one named output series of an indicator.
type Line struct {
	Name   string
	Values []float64
}

// DefaultWindow is the lookback used by the plain moving averages when run by name.
const DefaultWindow = 20

// Params carries the periods of every indicator.
type Params struct {
	Window          int     `yaml:"window"`
	BollingerWindow int     `yaml:"bollinger_window"`
	BollingerK      float64 `yaml:"bollinger_k"`
	RSIWindow       int     `yaml:"rsi_window"`
	MACDFast        int     `yaml:"macd_fast"`
	MACDSlow        int     `yaml:"macd_slow"`
	MACDSignal      int     `yaml:"macd_signal"`
	KPeriods        int     `yaml:"k_periods"`
	KSlowPeriods    int     `yaml:"k_slow_periods"`
	DPeriods        int     `yaml:"d_periods"`
	RSILength       int     `yaml:"rsi_length"`
	MomentumPeriod  int     `yaml:"momentum_period"`
}

// DefaultParams returns the conventional period for every indicator.
func DefaultParams() Params {
	return Params{
		Window:          DefaultWindow,
		BollingerWindow: DefaultBollingerWindow,
		BollingerK:      2,
		RSIWindow:       DefaultRSIWindow,
		MACDFast:        DefaultMACDFast,
		MACDSlow:        DefaultMACDSlow,
		MACDSignal:      DefaultMACDSignal,
		KPeriods:        DefaultKPeriods,
		KSlowPeriods:    DefaultKSlowPeriods,
		DPeriods:        DefaultDPeriods,
		RSILength:       DefaultRSIWindow,
		MomentumPeriod:  DefaultMomentumPeriod,
	}
}

type calculator struct {
	name string
	calc func(in Input) ([]Line, error)
}

func (c calculator) Name() string { return c.name }

func (c calculator) Calculate(in Input) ([]Line, error) {
	return c.calc(in)
}

var registry = map[string]func(p Params) calculator{
	"sma": func(p Params) calculator {
		return single(fmt.Sprintf("sma(%d)", p.Window), func(in Input) ([]float64, error) {
			return SMA(in.Close, p.Window)
		})
	},
	"ema": func(p Params) calculator {
		return single(fmt.Sprintf("ema(%d)", p.Window), func(in Input) ([]float64, error) {
			return EMA(in.Close, p.Window)
		})
	},
	"wilder": func(p Params) calculator {
		return single(fmt.Sprintf("wilder(%d)", p.Window), func(in Input) ([]float64, error) {
			return WilderSmooth(in.Close, p.Window)
		})
	},
	"rsi": func(p Params) calculator {
		return single(fmt.Sprintf("rsi(%d)", p.RSIWindow), func(in Input) ([]float64, error) {
			return RSI(in.Close, p.RSIWindow)
		})
	},
	"momentum": func(p Params) calculator {
		return single(fmt.Sprintf("mom(%d)", p.MomentumPeriod), func(in Input) ([]float64, error) {
			return Momentum(in.Close, p.MomentumPeriod)
		})
	},
	"bollinger": func(p Params) calculator {
		name := fmt.Sprintf("bb(%d)", p.BollingerWindow)
		return calculator{name: name, calc: func(in Input) ([]Line, error) {
			bb, err := BollingerBandsK(in.Close, p.BollingerWindow, p.BollingerK)
			if err != nil {
				return nil, err
			}
			return []Line{
				{Name: name + ".lower", Values: bb.Lower},
				{Name: name + ".middle", Values: bb.Middle},
				{Name: name + ".upper", Values: bb.Upper},
			}, nil
		}}
	},
	"macd": func(p Params) calculator {
		name := fmt.Sprintf("macd(%d,%d,%d)", p.MACDFast, p.MACDSlow, p.MACDSignal)
		return calculator{name: name, calc: func(in Input) ([]Line, error) {
			m, err := MACD(in.Close, p.MACDFast, p.MACDSlow, p.MACDSignal)
			if err != nil {
				return nil, err
			}
			return []Line{
				{Name: name, Values: m.MACD},
				{Name: name + ".signal", Values: m.Signal},
				{Name: name + ".hist", Values: m.Histogram},
			}, nil
		}}
	},
	"stochastic": func(p Params) calculator {
		name := fmt.Sprintf("stoch(%d,%d,%d)", p.KPeriods, p.KSlowPeriods, p.DPeriods)
		return calculator{name: name, calc: func(in Input) ([]Line, error) {
			if !hasValues(in.High) || !hasValues(in.Low) {
				return nil, fmt.Errorf("stochastic needs high and low columns: %w", ErrInsufficientData)
			}
			s, err := Stochastic(in.High, in.Low, in.Close, p.KPeriods, p.KSlowPeriods, p.DPeriods)
			if err != nil {
				return nil, err
			}
			return []Line{
				{Name: name + ".k", Values: s.K},
				{Name: name + ".d", Values: s.D},
			}, nil
		}}
	},
	"stochrsi": func(p Params) calculator {
		name := fmt.Sprintf("stochrsi(%d,%d,%d,%d)", p.RSILength, p.KPeriods, p.KSlowPeriods, p.DPeriods)
		return calculator{name: name, calc: func(in Input) ([]Line, error) {
			s, err := StochasticRSI(in.Close, p.RSILength, p.KPeriods, p.KSlowPeriods, p.DPeriods)
			if err != nil {
				return nil, err
			}
			return []Line{
				{Name: name + ".k", Values: s.K},
				{Name: name + ".d", Values: s.D},
			}, nil
		}}
	},
}

// highLow lists the indicators that read High and Low as well as Close.
var highLow = []string{"stochastic"}

// UsesHighLow reports whether the named indicator needs High and Low input.
func UsesHighLow(name string) bool {
	return lo.Contains(highLow, name)
}

func hasValues(series []float64) bool {
	return leadingNaN(series) < len(series)
}

func single(name string, fn func(in Input) ([]float64, error)) calculator {
	return calculator{name: name, calc: func(in Input) ([]Line, error) {
		values, err := fn(in)
		if err != nil {
			return nil, err
		}
		return []Line{{Name: name, Values: values}}, nil
	}}
}

// New returns the indicator registered under name, configured with p.
func New(name string, p Params) (Indicator, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown indicator %q (available: %v)", name, Names())
	}
	return build(p), nil
}

// Names lists the registered indicator names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}
