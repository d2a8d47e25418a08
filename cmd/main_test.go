package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	return out.String(), err
}

func pricesCSV(n int) string {
	var b strings.Builder
	b.WriteString("timestamp,open,high,low,close,volume\n")
	b.WriteString("2024-01-01,,,,,\n")
	for i := 1; i < n; i++ {
		c := 100 + float64(i%7) - float64(i%3)
		fmt.Fprintf(&b, "2024-01-%02d,%g,%g,%g,%g,1000\n", i+1, c, c+1, c-1, c)
	}
	return b.String()
}

func TestRunFromStdin(t *testing.T) {
	out, err := run(t, pricesCSV(25), "run", "--indicators", "sma,momentum", "--log-level", "error", "--precision", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "sma(20)")
	assert.Contains(t, out, "mom(10)")
	assert.Contains(t, out, "2024-01-25")
	assert.Contains(t, out, "NaN")
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prices.csv")
	require.NoError(t, os.WriteFile(input, []byte(pricesCSV(40)), 0o644))

	cfgPath := filepath.Join(dir, "ta.yaml")
	cfg := fmt.Sprintf("input: %q\nindicators: [rsi, stochastic]\nlog_level: error\nparams:\n  rsi_window: 5\n  k_periods: 5\n", input)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "", "run", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "rsi(5)")
	assert.Contains(t, out, "stoch(5,3,3).k")
	assert.Contains(t, out, "stoch(5,3,3).d")
}

func closeOnlyCSV(n int) string {
	var b strings.Builder
	b.WriteString("close\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%g\n", 100+float64(i%7)-float64(i%3))
	}
	return b.String()
}

func TestRunCloseOnlyInput(t *testing.T) {
	t.Run("Default indicators skip the stochastic", func(t *testing.T) {
		out, err := run(t, closeOnlyCSV(80), "run", "--log-level", "error")
		require.NoError(t, err)

		assert.Contains(t, out, "rsi(14)")
		assert.Contains(t, out, "stochrsi(14,14,3,3).k")
		assert.NotContains(t, out, "stoch(14,3,3)")
	})

	t.Run("Requested stochastic explains what is missing", func(t *testing.T) {
		_, err := run(t, closeOnlyCSV(80), "run", "--indicators", "rsi,stochastic", "--log-level", "error")
		assert.ErrorContains(t, err, "stochastic needs high and low columns")
	})
}

func TestRunInsufficientData(t *testing.T) {
	_, err := run(t, pricesCSV(5), "run", "--indicators", "macd", "--log-level", "error")
	assert.ErrorContains(t, err, "insufficient data")
}

func TestRunUnknownIndicator(t *testing.T) {
	_, err := run(t, pricesCSV(5), "run", "--indicators", "vwap", "--log-level", "error")
	assert.ErrorContains(t, err, "unknown indicators vwap")
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "stochrsi\n")
}
