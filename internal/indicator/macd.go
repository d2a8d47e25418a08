package indicator

import "fmt"

// Conventional MACD periods.
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// Smoothing ratios used by MACD. They roughly correspond to 12, 26 and 9
// period EMAs but are fixed: the period arguments of MACD do not change them.
const (
	MACDFastRatio   = 0.150
	MACDSlowRatio   = 0.075
	MACDSignalRatio = 0.200
)

// MACDResult holds the MACD line, its signal line and their difference.
type MACDResult struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// MACD calculates Moving Average Convergence/Divergence.
//
// Only slowPeriod affects the output: it sets how many leading positions of
// the MACD and signal lines are forced to NaN. The fast, slow and signal EMAs
// always use MACDFastRatio, MACDSlowRatio and MACDSignalRatio; fastPeriod and
// signalPeriod are validated but otherwise ignored. Use MACDWithRatios to
// choose the smoothing ratios explicitly.
func MACD(data []float64, fastPeriod, slowPeriod, signalPeriod int) (*MACDResult, error) {
	if fastPeriod < 1 || slowPeriod < 1 || signalPeriod < 1 {
		return nil, fmt.Errorf("macd: periods %d/%d/%d: %w", fastPeriod, slowPeriod, signalPeriod, ErrInvalidPeriod)
	}
	return MACDWithRatios(data, slowPeriod, MACDFastRatio, MACDSlowRatio, MACDSignalRatio)
}

// MACDWithRatios calculates MACD with explicit EMA smoothing ratios. The MACD
// line is defined from index slowPeriod-1 on; the signal line is the EMA of
// the defined part of the MACD line.
func MACDWithRatios(data []float64, slowPeriod int, fastRatio, slowRatio, signalRatio float64) (*MACDResult, error) {
	if slowPeriod < 1 {
		return nil, fmt.Errorf("macd: slow period %d: %w", slowPeriod, ErrInvalidPeriod)
	}

	prefix, clean := split(data)
	if len(clean) < slowPeriod {
		return nil, fmt.Errorf("macd: need %d values, have %d: %w", slowPeriod, len(clean), ErrInsufficientData)
	}

	fast, err := EMARatio(clean, fastRatio)
	if err != nil {
		return nil, fmt.Errorf("macd fast: %w", err)
	}
	slow, err := EMARatio(clean, slowRatio)
	if err != nil {
		return nil, fmt.Errorf("macd slow: %w", err)
	}

	line := nans(len(clean))
	for i := slowPeriod - 1; i < len(clean); i++ {
		line[i] = fast[i] - slow[i]
	}

	signal, err := EMARatio(line, signalRatio)
	if err != nil {
		return nil, fmt.Errorf("macd signal: %w", err)
	}

	histogram := make([]float64, len(clean))
	for i := range histogram {
		histogram[i] = line[i] - signal[i]
	}

	return &MACDResult{
		MACD:      pad(line, prefix),
		Signal:    pad(signal, prefix),
		Histogram: pad(histogram, prefix),
	}, nil
}
