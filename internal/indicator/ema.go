package indicator

import (
	"fmt"
	"math"
)

// EMA calculates the exponential moving average with multiplier 2/(window+1).
func EMA(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("ema: window %d: %w", window, ErrInvalidPeriod)
	}
	return ema(data, 2/(float64(window)+1))
}

// EMARatio calculates the exponential moving average with a caller supplied
// multiplier m in (0, 1]:
//
//	ema[0] = data[0]
//	ema[i] = data[i]*m + ema[i-1]*(1-m)
//
// The recurrence is seeded with the first value, so no warm-up NaN is produced.
func EMARatio(data []float64, m float64) ([]float64, error) {
	if math.IsNaN(m) || m <= 0 || m > 1 {
		return nil, fmt.Errorf("ema: ratio %v: %w", m, ErrInvalidPeriod)
	}
	return ema(data, m)
}

func ema(data []float64, m float64) ([]float64, error) {
	prefix, clean := split(data)
	if len(clean) == 0 {
		return nil, fmt.Errorf("ema: no values: %w", ErrInsufficientData)
	}

	out := make([]float64, len(clean))
	out[0] = clean[0]
	for i := 1; i < len(clean); i++ {
		out[i] = clean[i]*m + out[i-1]*(1-m)
	}

	return pad(out, prefix), nil
}
