package indicator

import "fmt"

// DefaultMomentumPeriod is the conventional momentum lookback.
const DefaultMomentumPeriod = 10

// Momentum calculates the price difference over n steps:
// momentum[i] = close[i] - close[i-n]. The first n outputs are NaN.
func Momentum(close []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("momentum: period %d: %w", n, ErrInvalidPeriod)
	}

	prefix, clean := split(close)
	if len(clean) <= n {
		return nil, fmt.Errorf("momentum: need %d values, have %d: %w", n+1, len(clean), ErrInsufficientData)
	}

	out := nans(len(clean))
	for i := n; i < len(clean); i++ {
		out[i] = clean[i] - clean[i-n]
	}

	return pad(out, prefix), nil
}
