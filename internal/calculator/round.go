package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// round2 rounds half away from zero to two decimal places.
func round2(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("round %v: %w", v, ErrNotFinite)
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64(), nil
}
