package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketMonitor/internal/model"
)

func reportWith(symbol string, weekly float64, available bool) model.InstrumentReport {
	return model.InstrumentReport{
		Instrument: model.Instrument{Symbol: symbol, Name: symbol},
		Returns: []model.WindowReturn{
			{Window: model.Window1W, Pct: weekly, Available: available},
		},
	}
}

func symbols(r model.Ranking) []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Instrument.Symbol
	}
	return out
}

func TestTopPerformers_DescendingAcrossCategories(t *testing.T) {
	reports := []model.CategoryReport{
		{Name: "A", Reports: []model.InstrumentReport{reportWith("a1", 1.5, true), reportWith("a2", -3, true)}},
		{Name: "B", Reports: []model.InstrumentReport{reportWith("b1", 7.2, true), reportWith("b2", 0, true), reportWith("b3", 99, false)}},
	}

	got := TopPerformers(reports, []model.LookbackWindow{model.Window1W}, TopN)
	require.Len(t, got, 1)
	assert.Equal(t, model.Window1W, got[0].Window)
	assert.Equal(t, []string{"b1", "a1", "b2"}, symbols(got[0]))
}

func TestTopPerformers_StableTies(t *testing.T) {
	reports := []model.CategoryReport{
		{Name: "A", Reports: []model.InstrumentReport{reportWith("first", 2, true), reportWith("low", 1, true)}},
		{Name: "B", Reports: []model.InstrumentReport{reportWith("second", 2, true), reportWith("third", 2, true), reportWith("fourth", 2, true)}},
	}

	got := TopPerformers(reports, []model.LookbackWindow{model.Window1W}, TopN)
	assert.Equal(t, []string{"first", "second", "third"}, symbols(got[0]))
}

func TestTopPerformers_FewerThanN(t *testing.T) {
	reports := []model.CategoryReport{
		{Name: "A", Reports: []model.InstrumentReport{reportWith("only", -4, true), reportWith("none", 0, false)}},
	}

	got := TopPerformers(reports, model.PrimaryWindows, TopN)
	require.Len(t, got, len(model.PrimaryWindows))
	assert.Equal(t, []string{"only"}, symbols(got[0]))
	// windows missing from the report are skipped
	assert.Empty(t, got[1].Entries)
}

func TestCountInstruments(t *testing.T) {
	reports := []model.CategoryReport{
		{Reports: make([]model.InstrumentReport, 2)},
		{},
		{Reports: make([]model.InstrumentReport, 3)},
	}
	assert.Equal(t, 5, CountInstruments(reports))
	assert.Zero(t, CountInstruments(nil))
}
