package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACDWithRatios(t *testing.T) {
	// fast: 1, 2*0.15 + 0.85 = 1.15
	// slow: 1, 2*0.075 + 0.925 = 1.075
	// macd: 0, 0.075; signal: 0, 0.075*0.2 = 0.015
	result, err := MACDWithRatios([]float64{1, 2}, 1, MACDFastRatio, MACDSlowRatio, MACDSignalRatio)
	require.NoError(t, err)

	assertSeries(t, []float64{0, 0.075}, result.MACD, 1e-12)
	assertSeries(t, []float64{0, 0.015}, result.Signal, 1e-12)
	assertSeries(t, []float64{0, 0.06}, result.Histogram, 1e-12)
}

func TestMACDWarmup(t *testing.T) {
	data := wave(60)

	result, err := MACD(data, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	require.NoError(t, err)

	assert.Len(t, result.MACD, len(data))
	assert.Len(t, result.Signal, len(data))
	assert.Len(t, result.Histogram, len(data))
	assert.Equal(t, DefaultMACDSlow-1, leadingNaN(result.MACD))
	assert.Equal(t, DefaultMACDSlow-1, leadingNaN(result.Signal))
	assert.Equal(t, DefaultMACDSlow-1, leadingNaN(result.Histogram))

	// The signal EMA is seeded with the first defined MACD value
	first := DefaultMACDSlow - 1
	assert.Equal(t, result.MACD[first], result.Signal[first])
	assert.Equal(t, 0.0, result.Histogram[first])
}

func TestMACDLineIsFastMinusSlow(t *testing.T) {
	data := wave(40)
	slowPeriod := 10

	result, err := MACD(data, 5, slowPeriod, 4)
	require.NoError(t, err)
	fast, err := EMARatio(data, MACDFastRatio)
	require.NoError(t, err)
	slow, err := EMARatio(data, MACDSlowRatio)
	require.NoError(t, err)

	for i := slowPeriod - 1; i < len(data); i++ {
		assert.InDelta(t, fast[i]-slow[i], result.MACD[i], 1e-12, "index %d", i)
	}
}

func TestMACDPeriodsOnlyAffectAlignment(t *testing.T) {
	data := wave(60)

	a, err := MACD(data, 12, 26, 9)
	require.NoError(t, err)
	b, err := MACD(data, 3, 26, 20)
	require.NoError(t, err)

	assertSeries(t, a.MACD, b.MACD, 0)
	assertSeries(t, a.Signal, b.Signal, 0)
}

func TestMACDConstantSeries(t *testing.T) {
	data := []float64{nan, 7, 7, 7, 7, 7, 7}

	result, err := MACD(data, 2, 3, 2)
	require.NoError(t, err)

	assertSeries(t, []float64{nan, nan, nan, 0, 0, 0, 0}, result.MACD, 1e-12)
	assertSeries(t, []float64{nan, nan, nan, 0, 0, 0, 0}, result.Signal, 1e-12)
}

func TestMACDErrors(t *testing.T) {
	_, err := MACD([]float64{1, 2, 3}, 12, 26, 9)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = MACD([]float64{1, 2, 3}, 0, 2, 9)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = MACDWithRatios([]float64{1, 2, 3}, 2, 0, 0.5, 0.5)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
