package indicator

import "fmt"

// StochasticRSIResult holds the RSI line and the stochastic oscillator built on it.
type StochasticRSIResult struct {
	RSI []float64
	StochasticResult
}

// StochasticRSI applies the stochastic oscillator to RSI(close, rsiLength)
// instead of price: the RSI series acts as high, low and close at once.
//
// With no missing input, RSI has rsiLength leading NaN, Highs/Lows/X/Y have
// kPeriods-1+rsiLength and SumX/SumY/K have kPeriods-1+kSlowPeriods-1+rsiLength.
func StochasticRSI(close []float64, rsiLength, kPeriods, kSlowPeriods, dPeriods int) (*StochasticRSIResult, error) {
	if err := validateStochastic(kPeriods, kSlowPeriods, dPeriods); err != nil {
		return nil, fmt.Errorf("stochrsi: %w", err)
	}

	rsi, err := RSI(close, rsiLength)
	if err != nil {
		return nil, fmt.Errorf("stochrsi: %w", err)
	}

	prefix, clean := split(rsi)
	result, err := stochastic(clean, clean, clean, kPeriods, kSlowPeriods, dPeriods)
	if err != nil {
		return nil, fmt.Errorf("stochrsi: %w", err)
	}

	return &StochasticRSIResult{
		RSI:              rsi,
		StochasticResult: *result.pad(prefix),
	}, nil
}
