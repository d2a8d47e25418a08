// Package config
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/amirphl/simple-ta/internal/indicator"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

/*
YAML config example:
input: "prices.csv"
indicators: ["sma", "rsi", "macd", "stochastic"]
heikin_ashi: false
precision: 4
log_level: "info"
params:
  window: 20
  bollinger_window: 20
  bollinger_k: 2
  rsi_window: 14
  macd_fast: 12
  macd_slow: 26
  macd_signal: 9
  k_periods: 14
  k_slow_periods: 3
  d_periods: 3
  rsi_length: 14
  momentum_period: 10
*/

type Config struct {
	Input      string           `yaml:"input"`
	Indicators []string         `yaml:"indicators"`
	HeikinAshi bool             `yaml:"heikin_ashi"`
	Precision  int              `yaml:"precision"`
	LogLevel   string           `yaml:"log_level"`
	Params     indicator.Params `yaml:"params"`

	// AllIndicators is set while Indicators still holds the default list,
	// i.e. neither the file nor a flag named indicators.
	AllIndicators bool `yaml:"-"`
}

// Default returns a config running every indicator with conventional periods.
func Default() Config {
	return Config{
		Input:      "-",
		Indicators: indicator.Names(),
		Precision:  4,
		LogLevel:   "info",
		Params:     indicator.DefaultParams(),

		AllIndicators: true,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// Default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg.Indicators = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Indicators == nil {
		cfg.Indicators = indicator.Names()
	} else {
		cfg.AllIndicators = false
	}

	return cfg, nil
}

// Validate checks indicator names and periods.
func (c Config) Validate() error {
	if len(c.Indicators) == 0 {
		return fmt.Errorf("no indicators configured")
	}

	known := indicator.Names()
	unknown := lo.Filter(c.Indicators, func(name string, _ int) bool {
		return !lo.Contains(known, name)
	})
	if len(unknown) > 0 {
		return fmt.Errorf("unknown indicators %s (available: %s)", strings.Join(unknown, ", "), strings.Join(known, ", "))
	}

	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}

	p := c.Params
	periods := []struct {
		name  string
		value int
	}{
		{"window", p.Window},
		{"bollinger_window", p.BollingerWindow},
		{"rsi_window", p.RSIWindow},
		{"macd_fast", p.MACDFast},
		{"macd_slow", p.MACDSlow},
		{"macd_signal", p.MACDSignal},
		{"k_periods", p.KPeriods},
		{"k_slow_periods", p.KSlowPeriods},
		{"d_periods", p.DPeriods},
		{"rsi_length", p.RSILength},
		{"momentum_period", p.MomentumPeriod},
	}
	for _, period := range periods {
		if period.value < 1 {
			return fmt.Errorf("%s must be positive, got %d: %w", period.name, period.value, indicator.ErrInvalidPeriod)
		}
	}
	if p.BollingerK < 0 {
		return fmt.Errorf("bollinger_k must not be negative, got %v: %w", p.BollingerK, indicator.ErrInvalidPeriod)
	}

	return nil
}

// Dedup drops repeated indicator names, keeping the first occurrence.
func (c *Config) Dedup() {
	c.Indicators = lo.Uniq(c.Indicators)
}
