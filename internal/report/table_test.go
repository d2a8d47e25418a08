package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/amirphl/simple-ta/internal/indicator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, "date", []string{"2024-01-01", "2024-01-02"}, []indicator.Line{
		{Name: "close", Values: []float64{10, 11.5}},
		{Name: "sma(2)", Values: []float64{math.NaN(), 10.75}},
	}, 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "date")
	assert.Contains(t, out, "sma(2)")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "11.50")
	assert.Contains(t, out, "10.75")
	assert.Contains(t, out, "NaN")
}

func TestRenderLengthMismatch(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, "#", []string{"0", "1"}, []indicator.Line{
		{Name: "close", Values: []float64{1}},
	}, 2)
	assert.ErrorIs(t, err, indicator.ErrLengthMismatch)
	assert.Empty(t, buf.String())
}
