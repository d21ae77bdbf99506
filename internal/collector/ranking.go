package collector

import (
	"sort"

	"MarketMonitor/internal/model"
)

// TopN is the number of performers listed per window.
const TopN = 3

// TopPerformers ranks, for every window, the instruments with the highest
// available return across all categories. Ties keep configuration order.
func TopPerformers(reports []model.CategoryReport, windows []model.LookbackWindow, n int) []model.Ranking {
	rankings := make([]model.Ranking, 0, len(windows))
	for _, w := range windows {
		var entries []model.RankedReturn
		for _, cr := range reports {
			for i := range cr.Reports {
				r, ok := cr.Reports[i].Return(w)
				if !ok || !r.Available {
					continue
				}
				entries = append(entries, model.RankedReturn{Instrument: cr.Reports[i].Instrument, Return: r})
			}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Return.Pct > entries[j].Return.Pct
		})
		if len(entries) > n {
			entries = entries[:n]
		}
		rankings = append(rankings, model.Ranking{Window: w, Entries: entries})
	}
	return rankings
}

// CountInstruments returns the number of instrument reports across categories.
func CountInstruments(reports []model.CategoryReport) int {
	n := 0
	for _, cr := range reports {
		n += len(cr.Reports)
	}
	return n
}
