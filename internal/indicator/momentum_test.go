package indicator

import (
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentum(t *testing.T) {
	tests := []struct {
		name     string
		close    []float64
		n        int
		expected []float64
		err      error
	}{
		{
			name:     "Basic momentum",
			close:    []float64{10, 11, 12, 13, 14, 15},
			n:        2,
			expected: []float64{nan, nan, 2, 2, 2, 2},
		},
		{
			name:     "Leading missing values are stripped and restored",
			close:    []float64{nan, nan, nan, 10, 11, 12, 13, 14, 15},
			n:        2,
			expected: []float64{nan, nan, nan, nan, nan, 2, 2, 2, 2},
		},
		{
			name:     "Negative momentum",
			close:    []float64{5, 3, 4, 1},
			n:        1,
			expected: []float64{nan, -2, 1, -3},
		},
		{
			name:  "Insufficient data",
			close: []float64{10, 11},
			n:     2,
			err:   ErrInsufficientData,
		},
		{
			name:  "Invalid period",
			close: []float64{10, 11, 12},
			n:     0,
			err:   ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Momentum(tt.close, tt.n)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assertSeries(t, tt.expected, result, 0)
		})
	}
}

func TestMomentumMatchesTalib(t *testing.T) {
	data := wave(60)

	result, err := Momentum(data, DefaultMomentumPeriod)
	require.NoError(t, err)

	reference := talib.Mom(data, DefaultMomentumPeriod)
	assert.Equal(t, DefaultMomentumPeriod, leadingNaN(result))
	for i := DefaultMomentumPeriod; i < len(data); i++ {
		assert.Equal(t, reference[i], result[i], "index %d", i)
	}
}
