package statement

import "github.com/wealthpulse/wealthpulse"

// ICICIDirect parses the ICICI Direct equity portfolio export (CSV or
// XLSX): Stock Symbol, Company Name, ISIN, Qty, Buy Avg Price, LTP,
// Buy Value, Current Value, Profit/Loss, % Change.
type ICICIDirect struct{}

func (ICICIDirect) Name() string { return "ICICI Direct" }

func (ICICIDirect) Patterns() []string {
	return []string{
		"ICICI_*.xlsx", "icici_*.xlsx", "ICICIDirect_*.xlsx",
		"ICICI_*.csv", "icici_*.csv", "ICICIDirect_*.csv",
		"icicidirect_*.xlsx", "icicidirect_*.csv",
	}
}

func (i ICICIDirect) Parse(path string) *wealthpulse.ParseOutcome {
	return parseEquityFile(path, equitySpec{
		broker: i.Name(),
		symbol: []string{"stock symbol", "symbol", "scrip", "stock code", "nse symbol"},
		qty:    []string{"qty", "quantity", "net qty", "total qty", "holding qty"},
		avg:    []string{"buy avg price", "avg price", "avg cost", "average price", "buy price"},
		ltp:    []string{"ltp", "last price", "current price", "close price", "mkt price"},
		value:  []string{"current value", "mkt value", "market value"},
		isin:   []string{"isin", "isin code", "isin no"},
		sector: []string{"sector", "industry"},
	})
}
