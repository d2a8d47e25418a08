// Package candle
package candle

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Candle is one OHLCV row. Missing prices are NaN.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Validate checks if a candle has consistent data. NaN fields are allowed so
// that rows without history can still be carried through.
func (c *Candle) Validate() error {
	if !math.IsNaN(c.High) && !math.IsNaN(c.Low) && c.High < c.Low {
		return errors.New("candle high cannot be less than low")
	}
	if !math.IsNaN(c.Close) && !math.IsNaN(c.High) && c.Close > c.High {
		return errors.New("candle close price cannot be above high")
	}
	if !math.IsNaN(c.Close) && !math.IsNaN(c.Low) && c.Close < c.Low {
		return errors.New("candle close price cannot be below low")
	}
	if c.Volume < 0 {
		return errors.New("candle volume cannot be negative")
	}
	return nil
}

// Highs returns the high column.
func Highs(candles []Candle) []float64 {
	return lo.Map(candles, func(c Candle, _ int) float64 { return c.High })
}

// Lows returns the low column.
func Lows(candles []Candle) []float64 {
	return lo.Map(candles, func(c Candle, _ int) float64 { return c.Low })
}

// Closes returns the close column.
func Closes(candles []Candle) []float64 {
	return lo.Map(candles, func(c Candle, _ int) float64 { return c.Close })
}

var timestampLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"}

// ReadCSV decodes candles from CSV with a header row. Columns are matched by
// name (timestamp, open, high, low, close, volume), case-insensitively; only
// close is required. Empty cells and "NaN" decode as NaN.
func ReadCSV(r io.Reader) ([]Candle, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["close"]; !ok {
		return nil, fmt.Errorf("csv header %v has no close column", header)
	}

	var candles []Candle
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		c, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid candle at line %d: %w", line, err)
		}
		candles = append(candles, c)
	}

	return candles, nil
}

func parseRecord(record []string, columns map[string]int) (Candle, error) {
	c := Candle{Open: math.NaN(), High: math.NaN(), Low: math.NaN(), Close: math.NaN()}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"open", &c.Open},
		{"high", &c.High},
		{"low", &c.Low},
		{"close", &c.Close},
		{"volume", &c.Volume},
	}
	for _, f := range fields {
		idx, ok := columns[f.name]
		if !ok || idx >= len(record) {
			continue
		}
		v, err := parseFloat(record[idx])
		if err != nil {
			return Candle{}, fmt.Errorf("column %s: %w", f.name, err)
		}
		*f.dst = v
	}

	if idx, ok := columns["timestamp"]; ok && idx < len(record) {
		ts, err := parseTimestamp(strings.TrimSpace(record[idx]))
		if err != nil {
			return Candle{}, err
		}
		c.Timestamp = ts
	}

	return c, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
