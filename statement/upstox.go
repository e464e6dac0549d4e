package statement

import "github.com/wealthpulse/wealthpulse"

// Upstox parses the Upstox Pro holdings export (CSV or XLSX):
// Instrument, Exchange, Qty., Avg. cost, LTP, Cur. val, P&L, Net chg.
// Instruments may carry an "NSE_EQ:" style prefix.
type Upstox struct{}

func (Upstox) Name() string { return "Upstox" }

func (Upstox) Patterns() []string {
	return []string{
		"Upstox_*.csv", "upstox_*.csv", "Upstox_*.xlsx", "upstox_*.xlsx",
		"upstox-holdings*.csv", "upstox-holdings*.xlsx",
	}
}

func (u Upstox) Parse(path string) *wealthpulse.ParseOutcome {
	return parseEquityFile(path, equitySpec{
		broker: u.Name(),
		symbol: []string{"instrument", "symbol", "scrip", "stock", "company"},
		qty:    []string{"qty.", "qty", "quantity", "net qty"},
		avg:    []string{"avg. cost", "avg cost", "avg price", "average price", "buy price"},
		ltp:    []string{"ltp", "last price", "close price", "closing price"},
		value:  []string{"cur. val", "cur val", "current value"},
		isin:   []string{"isin"},
	})
}
