package statement

import "github.com/wealthpulse/wealthpulse"

// FivePaisa parses the 5paisa holdings export (CSV or XLSX):
// Scrip Name, Scrip Code, ISIN, Qty, Avg Rate, LTP, Current Value,
// Gain/Loss.
type FivePaisa struct{}

func (FivePaisa) Name() string { return "5paisa" }

func (FivePaisa) Patterns() []string {
	return []string{
		"5paisa_*.xlsx", "5paisa_*.csv",
		"5Paisa_*.xlsx", "5Paisa_*.csv",
		"fivepaisa_*.xlsx", "fivepaisa_*.csv",
		"FivePaisa_*.xlsx", "FivePaisa_*.csv",
	}
}

func (f FivePaisa) Parse(path string) *wealthpulse.ParseOutcome {
	return parseEquityFile(path, equitySpec{
		broker: f.Name(),
		symbol: []string{"scrip name", "symbol", "stock name", "scrip", "trading symbol", "script name", "company name"},
		qty:    []string{"qty", "quantity", "net qty", "holding qty"},
		avg:    []string{"avg rate", "avg price", "avg cost", "buy avg", "average rate"},
		ltp:    []string{"ltp", "last price", "current price", "close price", "mkt price"},
		value:  []string{"current value", "cur value", "mkt value", "market value"},
		isin:   []string{"isin", "isin code"},
	})
}
