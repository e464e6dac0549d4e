package statement

import "github.com/wealthpulse/wealthpulse"

// AngelOne parses the Angel One holdings export (CSV or XLSX):
// Script/Stock | ISIN | Sector | Qty | Avg Cost | LTP | Current Value |
// P&L | % P&L, with "Scrip Name" variants in the web CSV.
type AngelOne struct{}

func (AngelOne) Name() string { return "Angel One" }

func (AngelOne) Patterns() []string {
	return []string{
		"Angel_*.xlsx", "angel_*.xlsx", "AngelOne_*.xlsx",
		"AngelBroking_*.xlsx", "angelone_*.xlsx",
		"Angel_*.csv", "angel_*.csv", "AngelOne_*.csv",
	}
}

func (a AngelOne) Parse(path string) *wealthpulse.ParseOutcome {
	return parseEquityFile(path, equitySpec{
		broker: a.Name(),
		symbol: []string{"script", "stock", "scrip", "scrip name", "symbol", "stock name"},
		qty:    []string{"qty", "quantity", "net qty"},
		avg:    []string{"avg cost", "avg price", "average price", "buy avg"},
		ltp:    []string{"ltp", "last price", "close price", "current price", "closing price"},
		value:  []string{"current value", "cur. value", "cur value", "mkt value", "market value"},
		isin:   []string{"isin"},
		sector: []string{"sector", "industry"},
	})
}
