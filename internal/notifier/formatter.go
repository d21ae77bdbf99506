package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"MarketMonitor/internal/model"
)

const notAvailable = "N/D"

var directionSymbols = map[model.Direction]string{
	model.DirectionUp:         "🟢",
	model.DirectionDown:       "🔴",
	model.DirectionFlat:       "⚪",
	model.DirectionNoData:     "➖",
	model.DirectionFetchError: "⚠️",
}

var trendLabels = map[model.TrendLabel]string{
	model.TrendBullish:          "📈 Rialzista",
	model.TrendMixedBullish:     "↗️ Misto rialzista",
	model.TrendMixedBearish:     "↘️ Misto ribassista",
	model.TrendBearish:          "📉 Ribassista",
	model.TrendNeutral:          "↔️ Neutrale",
	model.TrendInsufficientData: "Dati insufficienti",
	model.TrendUndetermined:     "Indeterminato",
	model.TrendNotAvailable:     notAvailable,
}

// DirectionSymbol returns the emoji used for d.
func DirectionSymbol(d model.Direction) string {
	return directionSymbols[d]
}

// TrendText returns the display text for a trend label.
func TrendText(l model.TrendLabel) string {
	if s, ok := trendLabels[l]; ok {
		return s
	}
	return string(l)
}

// FormatHeader formats the opening message of a run.
func FormatHeader(now time.Time, categories, instruments int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Monitoraggio Mercati</b> | %s\n\n", now.Format("02/01/2006 15:04")))
	b.WriteString(fmt.Sprintf("Strumenti: %d in %d categorie\n", instruments, categories))
	b.WriteString("Legenda: 🟢 rialzo | 🔴 ribasso | ⚪ invariato | ➖ dati assenti | ⚠️ errore\n")
	b.WriteString("Trend: prezzo rispetto a MA50 e MA200 | Vol: volatilità annualizzata 30g")
	return b.String()
}

// FormatCategory formats one category block, one entry per instrument.
func FormatCategory(cr model.CategoryReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📂 <b>%s</b>\n", html.EscapeString(cr.Name)))
	for i := range cr.Reports {
		b.WriteString("\n")
		writeInstrument(&b, &cr.Reports[i])
	}
	return b.String()
}

func writeInstrument(b *strings.Builder, rep *model.InstrumentReport) {
	vol := notAvailable
	if rep.Volatility != nil {
		vol = fmt.Sprintf("%.2f%%", *rep.Volatility)
	}
	b.WriteString(fmt.Sprintf("<b>%s</b> | %s | Vol: %s\n",
		html.EscapeString(rep.Instrument.Name), TrendText(rep.Trend), vol))

	segments := make([]string, 0, len(model.PrimaryWindows))
	for _, w := range model.PrimaryWindows {
		r, ok := rep.Return(w)
		if !ok {
			r = model.WindowReturn{Window: w}
		}
		segments = append(segments, w.Short+" "+formatReturn(r))
	}
	b.WriteString(strings.Join(segments, " | "))
	b.WriteString("\n")
}

func formatReturn(r model.WindowReturn) string {
	d := r.Direction()
	switch d {
	case model.DirectionFetchError:
		return DirectionSymbol(d) + " errore"
	case model.DirectionNoData:
		return DirectionSymbol(d) + " " + notAvailable
	default:
		return fmt.Sprintf("%s %+.2f%%", DirectionSymbol(d), r.Pct)
	}
}

// FormatTopPerformers formats the per-window ranking block.
func FormatTopPerformers(rankings []model.Ranking) string {
	var b strings.Builder
	b.WriteString("🏆 <b>Migliori performance</b>\n")
	for _, rk := range rankings {
		b.WriteString(fmt.Sprintf("\n<b>%s</b>\n", rk.Window.Name))
		if len(rk.Entries) == 0 {
			b.WriteString("  " + notAvailable + "\n")
			continue
		}
		for i, e := range rk.Entries {
			b.WriteString(fmt.Sprintf("  %d. %s %s %+.2f%%\n",
				i+1, html.EscapeString(e.Instrument.Name), DirectionSymbol(e.Return.Direction()), e.Return.Pct))
		}
	}
	return b.String()
}
