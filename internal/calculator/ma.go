package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInsufficientData is returned when a series is too short for a calculation.
var ErrInsufficientData = errors.New("insufficient data")

// ErrNotFinite is returned when an input or result is NaN or infinite.
var ErrNotFinite = errors.New("value is not finite")

// CalculateSMA computes the simple moving average of the given prices over the specified period,
// ending at the latest price. The sum is exact in decimal so a constant window averages to
// the price itself.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, fmt.Errorf("SMA%d over %d prices: %w", period, len(prices), ErrInsufficientData)
	}
	window := prices[len(prices)-period:]
	values := make([]decimal.Decimal, len(window))
	for i, p := range window {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return 0, fmt.Errorf("SMA%d price %v: %w", period, p, ErrNotFinite)
		}
		values[i] = decimal.NewFromFloat(p)
	}
	sum := decimal.Sum(values[0], values[1:]...)
	return sum.Div(decimal.NewFromInt(int64(period))).InexactFloat64(), nil
}
