package indicator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Conventional stochastic oscillator periods.
const (
	DefaultKPeriods     = 14
	DefaultKSlowPeriods = 3
	DefaultDPeriods     = 3
)

// StochasticResult holds the %K and %D lines together with the intermediate
// series they are built from.
//
// Highs, Lows, X and Y have kPeriods-1 leading NaN; SumX, SumY and K have
// kPeriods-1 + kSlowPeriods-1. D is the SMA of K and carries dPeriods-1 more.
type StochasticResult struct {
	Highs []float64 // highest high over the last kPeriods
	Lows  []float64 // lowest low over the last kPeriods
	X     []float64 // close - lowest low
	Y     []float64 // highest high - lowest low
	SumX  []float64 // X summed over the last kSlowPeriods
	SumY  []float64 // Y summed over the last kSlowPeriods
	K     []float64 // 100 * SumX / SumY
	D     []float64 // SMA(K, dPeriods)
}

// Stochastic calculates the slow Stochastic Oscillator.
//
// %K smooths the numerator and denominator separately before dividing:
//
//	%K = 100 * sum(close - lowest, kSlowPeriods) / sum(highest - lowest, kSlowPeriods)
//	%D = SMA(%K, dPeriods)
//
// kSlowPeriods of 1 gives the fast stochastic. A leading NaN run shared by the
// inputs (the longest of the three) is stripped and restored. A missing value
// inside a window makes that window's highest/lowest NaN, and a range of zero
// over the slow window makes %K NaN rather than an error.
func Stochastic(high, low, close []float64, kPeriods, kSlowPeriods, dPeriods int) (*StochasticResult, error) {
	// Validate inputs
	if len(high) != len(close) || len(low) != len(close) {
		return nil, fmt.Errorf("stochastic: high=%d low=%d close=%d: %w", len(high), len(low), len(close), ErrLengthMismatch)
	}
	if err := validateStochastic(kPeriods, kSlowPeriods, dPeriods); err != nil {
		return nil, fmt.Errorf("stochastic: %w", err)
	}

	prefix := max(leadingNaN(high), leadingNaN(low), leadingNaN(close))
	result, err := stochastic(high[prefix:], low[prefix:], close[prefix:], kPeriods, kSlowPeriods, dPeriods)
	if err != nil {
		return nil, fmt.Errorf("stochastic: %w", err)
	}

	return result.pad(prefix), nil
}

func validateStochastic(kPeriods, kSlowPeriods, dPeriods int) error {
	if kPeriods < 1 || kSlowPeriods < 1 || dPeriods < 1 {
		return fmt.Errorf("periods %d/%d/%d: %w", kPeriods, kSlowPeriods, dPeriods, ErrInvalidPeriod)
	}
	return nil
}

// stochastic runs on series that are already aligned and stripped.
func stochastic(high, low, close []float64, kPeriods, kSlowPeriods, dPeriods int) (*StochasticResult, error) {
	n := len(close)
	need := kPeriods + kSlowPeriods + dPeriods - 2
	if n < need {
		return nil, fmt.Errorf("need %d values, have %d: %w", need, n, ErrInsufficientData)
	}

	result := &StochasticResult{
		Highs: nans(n),
		Lows:  nans(n),
		X:     nans(n),
		Y:     nans(n),
		SumX:  nans(n),
		SumY:  nans(n),
		K:     nans(n),
	}

	// Step 1: highest high and lowest low over kPeriods
	for i := kPeriods - 1; i < n; i++ {
		from := i - kPeriods + 1
		result.Highs[i] = windowMax(high[from : i+1])
		result.Lows[i] = windowMin(low[from : i+1])
		result.X[i] = close[i] - result.Lows[i]
		result.Y[i] = result.Highs[i] - result.Lows[i]
	}

	// Step 2: smooth numerator and denominator over kSlowPeriods
	for i := kPeriods + kSlowPeriods - 2; i < n; i++ {
		from := i - kSlowPeriods + 1
		result.SumX[i] = floats.Sum(result.X[from : i+1])
		result.SumY[i] = floats.Sum(result.Y[from : i+1])
		result.K[i] = 100 * (result.SumX[i] / result.SumY[i])
	}

	// Step 3: %D as SMA of %K
	kPrefix, kClean := split(result.K)
	if len(kClean) >= dPeriods {
		result.D = pad(sma(kClean, dPeriods), kPrefix)
	} else {
		result.D = nans(n)
	}

	return result, nil
}

// windowMax is floats.Max except that a missing value anywhere in the window
// makes the result missing.
func windowMax(window []float64) float64 {
	if floats.HasNaN(window) {
		return math.NaN()
	}
	return floats.Max(window)
}

func windowMin(window []float64) float64 {
	if floats.HasNaN(window) {
		return math.NaN()
	}
	return floats.Min(window)
}

func (r *StochasticResult) pad(prefix int) *StochasticResult {
	return &StochasticResult{
		Highs: pad(r.Highs, prefix),
		Lows:  pad(r.Lows, prefix),
		X:     pad(r.X, prefix),
		Y:     pad(r.Y, prefix),
		SumX:  pad(r.SumX, prefix),
		SumY:  pad(r.SumY, prefix),
		K:     pad(r.K, prefix),
		D:     pad(r.D, prefix),
	}
}
