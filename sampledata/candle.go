package sampledata

import (
	"math"
	"sort"
	"time"
)

// Candle is a single OHLCV bar. A missing numeric value is represented as
// NaN; Complete reports whether the bar has no missing values.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Complete reports whether every numeric field of the candle is present.
func (c Candle) Complete() bool {
	return !math.IsNaN(c.Open) && !math.IsNaN(c.High) &&
		!math.IsNaN(c.Low) && !math.IsNaN(c.Close) && !math.IsNaN(c.Volume)
}

// Meta describes an embedded dataset.
type Meta struct {
	Name        string // Registry name (e.g., "btc-daily")
	Symbol      string // Instrument symbol (e.g., "BTC-USD")
	Timeframe   string // Canonical timeframe (e.g., "1d", "1h")
	Rows        int    // Number of candles
	License     string // SPDX identifier of the source data license
	Description string // One-line description
}

// Dataset is an embedded sample dataset: metadata plus its candles.
type Dataset struct {
	Meta    Meta
	Candles []Candle
}

// Len returns the number of candles in the dataset.
func (d *Dataset) Len() int { return len(d.Candles) }

func (d *Dataset) column(f func(Candle) float64) []float64 {
	out := make([]float64, len(d.Candles))
	for i, c := range d.Candles {
		out[i] = f(c)
	}
	return out
}

// Opens returns the open prices as a float64 slice.
func (d *Dataset) Opens() []float64 { return d.column(func(c Candle) float64 { return c.Open }) }

// Highs returns the high prices as a float64 slice.
func (d *Dataset) Highs() []float64 { return d.column(func(c Candle) float64 { return c.High }) }

// Lows returns the low prices as a float64 slice.
func (d *Dataset) Lows() []float64 { return d.column(func(c Candle) float64 { return c.Low }) }

// Closes returns the close prices as a float64 slice.
func (d *Dataset) Closes() []float64 { return d.column(func(c Candle) float64 { return c.Close }) }

// Volumes returns the volumes as a float64 slice. Missing volumes are NaN.
func (d *Dataset) Volumes() []float64 { return d.column(func(c Candle) float64 { return c.Volume }) }

// ByName returns the embedded dataset with the given registry name,
// or nil if no such dataset is embedded.
func ByName(name string) *Dataset {
	return datasets[name]
}

// Names returns the names of all embedded datasets, sorted.
func Names() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
