package collector

import (
	"context"
	"fmt"
	"time"

	"MarketMonitor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.PricePoint
	Errors map[string]error

	// Requests records every call in order.
	Requests []MockRequest
}

// MockRequest is one recorded FetchHistory call.
type MockRequest struct {
	Symbol     string
	Start, End time.Time
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, symbol string, start, end time.Time) (model.PriceSeries, error) {
	m.Requests = append(m.Requests, MockRequest{Symbol: symbol, Start: start, End: end})
	if err, ok := m.Errors[symbol]; ok {
		return model.PriceSeries{}, err
	}
	points, ok := m.Series[symbol]
	if !ok {
		return model.PriceSeries{}, fmt.Errorf("mock: unknown symbol %q", symbol)
	}
	return model.NewPriceSeries(symbol, points), nil
}

// GenerateDailyPoints builds count consecutive daily closes ending at end,
// growing by rate per day from base.
func GenerateDailyPoints(end time.Time, count int, base, rate float64) []model.PricePoint {
	points := make([]model.PricePoint, count)
	p := base
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Date:  model.DateOf(end).AddDate(0, 0, -(count - 1 - i)),
			Close: p,
		}
		p *= 1 + rate
	}
	return points
}
