package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"MarketMonitor/internal/model"
)

const (
	// VolatilityWindow is the number of most recent daily changes used.
	VolatilityWindow = 30
	tradingDays      = 252
)

// CalculateVolatility returns the annualized standard deviation, in percent, of the
// last 30 daily changes. Requires at least 30 points.
func CalculateVolatility(points []model.PricePoint) (float64, error) {
	if len(points) < VolatilityWindow {
		return 0, fmt.Errorf("volatility over %d points: %w", len(points), ErrInsufficientData)
	}
	changes := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Close
		changes = append(changes, (points[i].Close-prev)/prev)
	}
	if len(changes) > VolatilityWindow {
		changes = changes[len(changes)-VolatilityWindow:]
	}
	// sample deviation needs two observations
	if len(changes) < 2 {
		return 0, fmt.Errorf("volatility over %d changes: %w", len(changes), ErrInsufficientData)
	}
	sd, err := stats.StandardDeviationSample(changes)
	if err != nil {
		return 0, fmt.Errorf("standard deviation: %w", err)
	}
	return round2(sd * math.Sqrt(tradingDays) * 100)
}
