package model

// Direction is the sign marker attached to a window return.
type Direction string

const (
	DirectionUp         Direction = "UP"
	DirectionDown       Direction = "DOWN"
	DirectionFlat       Direction = "FLAT"
	DirectionNoData     Direction = "NO_DATA"
	DirectionFetchError Direction = "FETCH_ERROR"
)

// TrendLabel classifies the latest close against the 50 and 200 day averages.
type TrendLabel string

const (
	TrendBullish          TrendLabel = "BULLISH"       // above both
	TrendMixedBullish     TrendLabel = "MIXED_BULLISH" // above MA50, below MA200
	TrendMixedBearish     TrendLabel = "MIXED_BEARISH" // below MA50, above MA200
	TrendBearish          TrendLabel = "BEARISH"       // below both
	TrendNeutral          TrendLabel = "NEUTRAL"
	TrendInsufficientData TrendLabel = "INSUFFICIENT_DATA"
	TrendUndetermined     TrendLabel = "UNDETERMINED"
	TrendNotAvailable     TrendLabel = "NOT_AVAILABLE"
)

// WindowReturn is the percentage return over one lookback window.
type WindowReturn struct {
	Window      LookbackWindow
	Pct         float64
	Available   bool
	FetchFailed bool
}

// Direction derives the marker for the return. A failed fetch wins over a
// missing value so the two stay distinguishable.
func (r WindowReturn) Direction() Direction {
	switch {
	case r.FetchFailed:
		return DirectionFetchError
	case !r.Available:
		return DirectionNoData
	case r.Pct > 0:
		return DirectionUp
	case r.Pct < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}

// FetchResult is the outcome of fetching one instrument's history.
type FetchResult struct {
	Instrument Instrument
	Series     PriceSeries
	Err        error
}

// OK reports whether the fetch produced usable data.
func (r FetchResult) OK() bool {
	return r.Err == nil && r.Series.Len() > 0
}

// InstrumentReport holds all computed figures for one instrument.
type InstrumentReport struct {
	Instrument Instrument
	Returns    []WindowReturn
	Volatility *float64 // annualized, percent; nil when absent
	Trend      TrendLabel
	Points     int
	Err        error
}

// Return looks up the return for w.
func (r *InstrumentReport) Return(w LookbackWindow) (WindowReturn, bool) {
	for _, wr := range r.Returns {
		if wr.Window == w {
			return wr, true
		}
	}
	return WindowReturn{}, false
}

// CategoryReport groups instrument reports in configuration order.
type CategoryReport struct {
	Name    string
	Reports []InstrumentReport
}

// RankedReturn is one entry of a top-performer list.
type RankedReturn struct {
	Instrument Instrument
	Return     WindowReturn
}

// Ranking lists the best performers for a single window.
type Ranking struct {
	Window  LookbackWindow
	Entries []RankedReturn
}
