package candle

import "math"

// HeikinAshi converts raw candles into Heikin-Ashi candles. Input candles
// must be sorted by timestamp ascending.
//
// A candle with any missing price is passed through unchanged and the
// Heikin-Ashi open is re-seeded from the next complete candle, so a leading
// gap in the input stays a leading gap in the output.
func HeikinAshi(raw []Candle) []Candle {
	if len(raw) == 0 {
		return nil
	}

	ha := make([]Candle, len(raw))
	var prev *Candle
	for i, c := range raw {
		if !complete(c) {
			ha[i] = c
			prev = nil
			continue
		}
		ha[i] = nextHeikinAshi(prev, c)
		prev = &ha[i]
	}
	return ha
}

// nextHeikinAshi builds one Heikin-Ashi candle from the previous one (nil for
// the first) and a new raw candle.
func nextHeikinAshi(prev *Candle, raw Candle) Candle {
	ha := raw
	ha.Close = (raw.Open + raw.High + raw.Low + raw.Close) / 4
	if prev == nil {
		ha.Open = (raw.Open + raw.Close) / 2
	} else {
		ha.Open = (prev.Open + prev.Close) / 2
	}
	ha.High = max(raw.High, ha.Open, ha.Close)
	ha.Low = min(raw.Low, ha.Open, ha.Close)
	return ha
}

func complete(c Candle) bool {
	return !math.IsNaN(c.Open) && !math.IsNaN(c.High) && !math.IsNaN(c.Low) && !math.IsNaN(c.Close)
}
