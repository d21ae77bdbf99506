package calculator

import (
	"fmt"
	"sort"

	"MarketMonitor/internal/model"
)

// CalculateReturn returns the percentage change between the latest close and the
// last close dated on or before latest-days. Rounded to 2 decimals.
func CalculateReturn(points []model.PricePoint, days int) (float64, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("return over %d points: %w", len(points), ErrInsufficientData)
	}
	latest := points[len(points)-1]
	target := latest.Date.AddDate(0, 0, -days)

	// first index dated after target; the one before it is the comparison point
	idx := sort.Search(len(points), func(i int) bool { return points[i].Date.After(target) })
	if idx == 0 {
		return 0, fmt.Errorf("no close on or before %s: %w", target.Format("2006-01-02"), ErrInsufficientData)
	}
	past := points[idx-1].Close
	return round2((latest.Close - past) / past * 100)
}

// CalculateReturns computes the return for every window, in window order.
func CalculateReturns(series model.PriceSeries, windows []model.LookbackWindow) []model.WindowReturn {
	out := make([]model.WindowReturn, len(windows))
	for i, w := range windows {
		out[i] = model.WindowReturn{Window: w}
		if pct, err := CalculateReturn(series.Points, w.Days); err == nil {
			out[i].Pct = pct
			out[i].Available = true
		}
	}
	return out
}
