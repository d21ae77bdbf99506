package calculator

import "MarketMonitor/internal/model"

const (
	shortMAPeriod = 50
	longMAPeriod  = 200
)

// ClassifyTrend places the latest close relative to its 50 and 200 day averages.
func ClassifyTrend(series model.PriceSeries) model.TrendLabel {
	if series.Len() < longMAPeriod {
		return model.TrendInsufficientData
	}
	closes := series.Closes()
	ma50, err := CalculateSMA(closes, shortMAPeriod)
	if err != nil {
		return model.TrendUndetermined
	}
	ma200, err := CalculateSMA(closes, longMAPeriod)
	if err != nil {
		return model.TrendUndetermined
	}
	return classify(closes[len(closes)-1], ma50, ma200)
}

func classify(price, ma50, ma200 float64) model.TrendLabel {
	switch {
	case price > ma50 && price > ma200:
		return model.TrendBullish
	case price > ma50 && price < ma200:
		return model.TrendMixedBullish
	case price < ma50 && price > ma200:
		return model.TrendMixedBearish
	case price < ma50 && price < ma200:
		return model.TrendBearish
	default:
		return model.TrendNeutral
	}
}
