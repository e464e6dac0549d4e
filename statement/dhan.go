package statement

import (
	"strings"

	"github.com/wealthpulse/wealthpulse"
)

// Dhan parses the Dhan holdings export (CSV or XLSX): Trading Symbol,
// ISIN, Exchange, Segment, Qty, Avg. Cost Price, Close Price, Cur. Value,
// Day P&L, Overall P&L. Symbols sometimes come as "NSE-RELIANCE".
type Dhan struct{}

func (Dhan) Name() string { return "Dhan" }

func (Dhan) Patterns() []string {
	return []string{
		"Dhan_*.csv", "dhan_*.csv", "dhan-holdings*.csv",
		"Dhan_*.xlsx", "dhan_*.xlsx", "dhan-holdings*.xlsx",
	}
}

func (d Dhan) Parse(path string) *wealthpulse.ParseOutcome {
	return parseEquityFile(path, equitySpec{
		broker: d.Name(),
		symbol: []string{"trading symbol", "symbol", "scrip", "stock", "instrument"},
		qty:    []string{"qty", "quantity", "net qty", "total qty"},
		avg:    []string{"avg. cost price", "avg cost", "avg price", "buy price", "cost price"},
		ltp:    []string{"close price", "ltp", "last price", "current price"},
		value:  []string{"cur. value", "current value", "mkt value", "market value"},
		isin:   []string{"isin", "isin code"},
		fixSymbol: func(s string) string {
			if rest, ok := strings.CutPrefix(s, "NSE-"); ok {
				return rest
			}
			if rest, ok := strings.CutPrefix(s, "BSE-"); ok {
				return rest
			}
			return s
		},
	})
}
