package calculator

import (
	"time"

	"MarketMonitor/internal/model"
)

var day0 = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// dailyPoints builds one point per calendar day starting at day0.
func dailyPoints(closes ...float64) []model.PricePoint {
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Date: day0.AddDate(0, 0, i), Close: c}
	}
	return points
}

func constant(n int, price float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = price
	}
	return out
}

func dailySeries(closes ...float64) model.PriceSeries {
	return model.PriceSeries{Symbol: "TEST", Points: dailyPoints(closes...)}
}
