package indicator

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// SMA calculates the simple moving average of data over window values.
// The first window-1 outputs (after any leading NaN run) are NaN.
func SMA(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("sma: window %d: %w", window, ErrInvalidPeriod)
	}

	prefix, clean := split(data)
	if len(clean) < window {
		return nil, fmt.Errorf("sma: need %d values, have %d: %w", window, len(clean), ErrInsufficientData)
	}

	return pad(sma(clean, window), prefix), nil
}

// sma assumes clean holds at least window values.
func sma(clean []float64, window int) []float64 {
	out := nans(len(clean))
	for i := window - 1; i < len(clean); i++ {
		out[i] = stat.Mean(clean[i-window+1:i+1], nil)
	}
	return out
}
