package notifier

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"MarketMonitor/internal/model"
)

func okReport(name string, vol float64, pcts ...float64) model.InstrumentReport {
	returns := make([]model.WindowReturn, len(model.Windows))
	for i, w := range model.Windows {
		returns[i] = model.WindowReturn{Window: w}
		if i < len(pcts) {
			returns[i].Pct = pcts[i]
			returns[i].Available = true
		}
	}
	return model.InstrumentReport{
		Instrument: model.Instrument{Symbol: name, Name: name},
		Returns:    returns,
		Volatility: &vol,
		Trend:      model.TrendBullish,
	}
}

func failedReport(name string) model.InstrumentReport {
	returns := make([]model.WindowReturn, len(model.Windows))
	for i, w := range model.Windows {
		returns[i] = model.WindowReturn{Window: w, FetchFailed: w.IsPrimary()}
	}
	return model.InstrumentReport{
		Instrument: model.Instrument{Symbol: name, Name: name},
		Returns:    returns,
		Trend:      model.TrendNotAvailable,
		Err:        errors.New("boom"),
	}
}

func TestFormatCategory_RendersEveryInstrument(t *testing.T) {
	cr := model.CategoryReport{
		Name: "Indici",
		Reports: []model.InstrumentReport{
			okReport("S&P 500", 15.5, 1.23, -0.5, 0, 4, 10),
			okReport("Nasdaq", 20, 2),
			failedReport("FTSE MIB"),
			okReport("DAX", 12, 1),
			okReport("Nikkei", 18, -1),
		},
	}

	out := FormatCategory(cr)
	assert.True(t, strings.HasPrefix(out, "📂 <b>Indici</b>\n"))
	for _, name := range []string{"S&amp;P 500", "Nasdaq", "FTSE MIB", "DAX", "Nikkei"} {
		assert.Contains(t, out, "<b>"+name+"</b>")
	}
	assert.Contains(t, out, "Vol: 15.50%")
	assert.Contains(t, out, "1S 🟢 +1.23% | 1M 🔴 -0.50% | 3M ⚪ +0.00% | 6M 🟢 +4.00% | 1A 🟢 +10.00%")
	assert.Contains(t, out, "1M ➖ N/D")
	assert.Contains(t, out, "<b>FTSE MIB</b> | N/D | Vol: N/D")
	assert.Contains(t, out, "1S ⚠️ errore | 1M ⚠️ errore | 3M ⚠️ errore | 6M ⚠️ errore | 1A ⚠️ errore")
	assert.Contains(t, out, "📈 Rialzista")
	// multi-year windows are not part of the per-instrument line
	assert.NotContains(t, out, "3A ")
}

func TestFormatTopPerformers(t *testing.T) {
	rankings := []model.Ranking{
		{
			Window: model.Window1W,
			Entries: []model.RankedReturn{
				{Instrument: model.Instrument{Name: "Bitcoin"}, Return: model.WindowReturn{Pct: 8.1, Available: true}},
				{Instrument: model.Instrument{Name: "Oro"}, Return: model.WindowReturn{Pct: -0.25, Available: true}},
			},
		},
		{Window: model.Window1M},
	}

	out := FormatTopPerformers(rankings)
	assert.Contains(t, out, "<b>1 Settimana</b>\n  1. Bitcoin 🟢 +8.10%\n  2. Oro 🔴 -0.25%\n")
	assert.Contains(t, out, "<b>1 Mese</b>\n  N/D\n")
}

func TestFormatHeader(t *testing.T) {
	out := FormatHeader(time.Date(2025, 3, 7, 8, 5, 0, 0, time.UTC), 4, 17)
	assert.Contains(t, out, "07/03/2025 08:05")
	assert.Contains(t, out, "Strumenti: 17 in 4 categorie")
}

func TestTrendText_AllLabels(t *testing.T) {
	labels := []model.TrendLabel{
		model.TrendBullish, model.TrendMixedBullish, model.TrendMixedBearish, model.TrendBearish,
		model.TrendNeutral, model.TrendInsufficientData, model.TrendUndetermined, model.TrendNotAvailable,
	}
	seen := map[string]bool{}
	for _, l := range labels {
		text := TrendText(l)
		assert.NotEmpty(t, text)
		assert.False(t, seen[text], "duplicate text for %s", l)
		seen[text] = true
	}
	assert.Equal(t, "SOMETHING", TrendText("SOMETHING"))
}
