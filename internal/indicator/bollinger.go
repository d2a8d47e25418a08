package indicator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultBollingerWindow is the conventional Bollinger Bands lookback.
const DefaultBollingerWindow = 20

// BollingerResult holds the three Bollinger bands.
type BollingerResult struct {
	Lower  []float64
	Middle []float64 // identical to SMA(data, window)
	Upper  []float64
}

// BollingerBands calculates bands two population standard deviations away
// from the simple moving average.
func BollingerBands(data []float64, window int) (*BollingerResult, error) {
	return BollingerBandsK(data, window, 2)
}

// BollingerBandsK is BollingerBands with a custom standard deviation multiplier.
func BollingerBandsK(data []float64, window int, k float64) (*BollingerResult, error) {
	if math.IsNaN(k) || k < 0 {
		return nil, fmt.Errorf("bollinger: multiplier %v: %w", k, ErrInvalidPeriod)
	}

	prefix, clean := split(data)
	middle, err := SMA(clean, window)
	if err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}

	result := &BollingerResult{
		Lower:  nans(len(clean)),
		Middle: middle,
		Upper:  nans(len(clean)),
	}
	for i := window - 1; i < len(clean); i++ {
		width := k * stat.PopStdDev(clean[i-window+1:i+1], nil)
		result.Lower[i] = middle[i] - width
		result.Upper[i] = middle[i] + width
	}

	result.Lower = pad(result.Lower, prefix)
	result.Middle = pad(result.Middle, prefix)
	result.Upper = pad(result.Upper, prefix)
	return result, nil
}
