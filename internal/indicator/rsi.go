package indicator

import (
	"fmt"
	"math"
)

// DefaultRSIWindow is the conventional RSI lookback.
const DefaultRSIWindow = 14

// RSI calculates the Relative Strength Index:
//
//	RSI = 100 - 100/(1 + U/D)
//
// where U and D are the Wilder-smoothed upward and downward price changes.
// The first window outputs are NaN. Division follows IEEE-754: D == 0 with
// U > 0 gives exactly 100, and U == D == 0 (a flat run) gives NaN.
func RSI(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("rsi: window %d: %w", window, ErrInvalidPeriod)
	}

	prefix, clean := split(data)
	if len(clean) < window+1 {
		return nil, fmt.Errorf("rsi: need %d values, have %d: %w", window+1, len(clean), ErrInsufficientData)
	}

	// Changes are indexed from the second price, so up[i] belongs to clean[i+1]
	up := make([]float64, len(clean)-1)
	down := make([]float64, len(clean)-1)
	for i := 1; i < len(clean); i++ {
		change := clean[i] - clean[i-1]
		switch {
		case math.IsNaN(change):
			up[i-1], down[i-1] = change, change
		case change > 0:
			up[i-1] = change
		case change < 0:
			down[i-1] = -change
		}
	}

	upSmooth, err := WilderSmooth(up, window)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	downSmooth, err := WilderSmooth(down, window)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}

	out := make([]float64, len(clean))
	out[0] = math.NaN()
	for i := 1; i < len(clean); i++ {
		out[i] = 100 - 100/(1+upSmooth[i-1]/downSmooth[i-1])
	}

	return pad(out, prefix), nil
}
