package collector

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"MarketMonitor/internal/calculator"
	"MarketMonitor/internal/model"
)

// HistoryDays is how far back each fetch reaches: five years plus a margin so the
// five year window still finds a close on or before its target date.
const HistoryDays = 5*365 + 100

// ErrNoData is recorded when the provider returns an empty series.
var ErrNoData = errors.New("no price data")

// Collector fetches price history and builds per-category reports.
type Collector struct {
	Fetcher    Fetcher
	Categories []model.Category
	Logger     *zap.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, categories []model.Category, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{Fetcher: fetcher, Categories: categories, Logger: logger}
}

// Collect fetches every instrument one at a time in configuration order and
// computes its report. A failing instrument never aborts the run.
func (c *Collector) Collect(ctx context.Context, now time.Time) []model.CategoryReport {
	start := now.AddDate(0, 0, -HistoryDays)
	reports := make([]model.CategoryReport, 0, len(c.Categories))

	for _, cat := range c.Categories {
		cr := model.CategoryReport{Name: cat.Name, Reports: make([]model.InstrumentReport, 0, len(cat.Instruments))}
		for _, inst := range cat.Instruments {
			res := c.fetch(ctx, inst, start, now)
			if !res.OK() {
				c.Logger.Warn("instrument fetch failed",
					zap.String("symbol", inst.Symbol),
					zap.String("category", cat.Name),
					zap.Error(res.Err))
			}
			cr.Reports = append(cr.Reports, BuildReport(res))
		}
		reports = append(reports, cr)
	}
	return reports
}

func (c *Collector) fetch(ctx context.Context, inst model.Instrument, start, end time.Time) model.FetchResult {
	series, err := c.Fetcher.FetchHistory(ctx, inst.Symbol, start, end)
	if err == nil && series.Len() == 0 {
		err = ErrNoData
	}
	c.Logger.Debug("fetched history",
		zap.String("symbol", inst.Symbol),
		zap.String("source", c.Fetcher.Name()),
		zap.Int("points", series.Len()))
	return model.FetchResult{Instrument: inst, Series: series, Err: err}
}

// BuildReport turns a fetch result into an instrument report.
func BuildReport(res model.FetchResult) model.InstrumentReport {
	if !res.OK() {
		return failedReport(res)
	}
	points := res.Series.Points
	rep := model.InstrumentReport{
		Instrument: res.Instrument,
		Returns:    calculator.CalculateReturns(res.Series, model.Windows),
		Trend:      calculator.ClassifyTrend(res.Series),
		Points:     len(points),
	}
	if vol, err := calculator.CalculateVolatility(points); err == nil {
		rep.Volatility = &vol
	}
	return rep
}

// failedReport marks only the primary windows as fetch errors; the multi-year
// windows stay plainly absent.
func failedReport(res model.FetchResult) model.InstrumentReport {
	err := res.Err
	if err == nil {
		err = ErrNoData
	}
	returns := make([]model.WindowReturn, len(model.Windows))
	for i, w := range model.Windows {
		returns[i] = model.WindowReturn{Window: w, FetchFailed: w.IsPrimary()}
	}
	return model.InstrumentReport{
		Instrument: res.Instrument,
		Returns:    returns,
		Trend:      model.TrendNotAvailable,
		Err:        err,
	}
}
