package model

import (
	"sort"
	"time"
)

// Instrument is a configured ticker with its display name and category.
type Instrument struct {
	Symbol   string
	Name     string
	Category string
}

// Category is an ordered group of instruments as configured.
type Category struct {
	Name        string
	Instruments []Instrument
}

// PricePoint is a single daily close.
type PricePoint struct {
	Date  time.Time // midnight UTC, provider timezone stripped
	Close float64
}

// PriceSeries holds the daily closes of one instrument ordered by date.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// NewPriceSeries sorts points by date, drops non-positive closes and keeps the
// last observation when a date repeats. Dates are normalized with DateOf.
func NewPriceSeries(symbol string, points []PricePoint) PriceSeries {
	clean := make([]PricePoint, 0, len(points))
	for _, p := range points {
		if p.Close <= 0 {
			continue
		}
		clean = append(clean, PricePoint{Date: DateOf(p.Date), Close: p.Close})
	}
	sort.SliceStable(clean, func(i, j int) bool { return clean[i].Date.Before(clean[j].Date) })

	out := clean[:0]
	for _, p := range clean {
		if n := len(out); n > 0 && out[n-1].Date.Equal(p.Date) {
			out[n-1] = p
			continue
		}
		out = append(out, p)
	}
	return PriceSeries{Symbol: symbol, Points: out}
}

// Len returns the number of price points.
func (s PriceSeries) Len() int { return len(s.Points) }

// Closes returns the closing prices in date order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// DateOf keeps the wall-clock calendar date of t and drops time and zone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
