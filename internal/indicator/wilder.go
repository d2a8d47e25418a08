package indicator

import "fmt"

// WilderSmooth applies Wilder's smoothing: the first full window is seeded
// with its plain mean, then each step moves 1/window of the way toward the
// new value.
//
//	out[i] = out[i-1] + (1/window)*(data[i] - out[i-1])
func WilderSmooth(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("wilder: window %d: %w", window, ErrInvalidPeriod)
	}

	prefix, clean := split(data)
	if len(clean) < window {
		return nil, fmt.Errorf("wilder: need %d values, have %d: %w", window, len(clean), ErrInsufficientData)
	}

	out := sma(clean, window)
	alpha := 1 / float64(window)
	for i := window; i < len(clean); i++ {
		out[i] = out[i-1] + alpha*(clean[i]-out[i-1])
	}

	return pad(out, prefix), nil
}
