// Package indicator provides technical analysis indicators for financial markets.
//
// Every function takes one or more price series and returns freshly allocated
// series of the same length, index-aligned with the input. Positions without
// enough history hold NaN. A leading run of NaN in the input is stripped before
// the computation and restored on every output, so callers can chain
// indicators without re-aligning anything.
package indicator

import (
	"errors"
	"math"

	"github.com/samber/lo"
)

var (
	// ErrInvalidPeriod is returned when a window, period or smoothing ratio is out of range.
	ErrInvalidPeriod = errors.New("invalid period")
	// ErrInsufficientData is returned when the series holds fewer non-missing
	// values than the requested window needs.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrLengthMismatch is returned when parallel series differ in length.
	ErrLengthMismatch = errors.New("series length mismatch")
)

// leadingNaN counts the run of NaN values at the front of series.
func leadingNaN(series []float64) int {
	n := 0
	for n < len(series) && math.IsNaN(series[n]) {
		n++
	}
	return n
}

// split strips the leading NaN run. The returned slice aliases series and
// must be treated as read-only.
func split(series []float64) (int, []float64) {
	prefix := leadingNaN(series)
	return prefix, series[prefix:]
}

// pad restores a NaN prefix of the given length in front of series.
func pad(series []float64, prefix int) []float64 {
	if prefix == 0 {
		return series
	}
	return append(nans(prefix), series...)
}

func nans(n int) []float64 {
	return lo.Times(n, func(int) float64 { return math.NaN() })
}
