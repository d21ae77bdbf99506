package model

// LookbackWindow is a named historical horizon used to locate a comparison price.
type LookbackWindow struct {
	Name  string
	Short string
	Days  int
}

var (
	Window1W = LookbackWindow{Name: "1 Settimana", Short: "1S", Days: 7}
	Window1M = LookbackWindow{Name: "1 Mese", Short: "1M", Days: 30}
	Window3M = LookbackWindow{Name: "3 Mesi", Short: "3M", Days: 90}
	Window6M = LookbackWindow{Name: "6 Mesi", Short: "6M", Days: 180}
	Window1Y = LookbackWindow{Name: "1 Anno", Short: "1A", Days: 365}
	Window3Y = LookbackWindow{Name: "3 Anni", Short: "3A", Days: 1095}
	Window5Y = LookbackWindow{Name: "5 Anni", Short: "5A", Days: 1825}
)

// Windows is the full ordered set of lookback windows.
var Windows = []LookbackWindow{Window1W, Window1M, Window3M, Window6M, Window1Y, Window3Y, Window5Y}

// PrimaryWindows are the short horizons shown per instrument and ranked.
var PrimaryWindows = []LookbackWindow{Window1W, Window1M, Window3M, Window6M, Window1Y}

// IsPrimary reports whether w is one of the primary windows.
func (w LookbackWindow) IsPrimary() bool {
	for _, p := range PrimaryWindows {
		if p == w {
			return true
		}
	}
	return false
}
