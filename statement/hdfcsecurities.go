package statement

import "github.com/wealthpulse/wealthpulse"

// HDFCSecurities parses the HDFC Securities portfolio export (CSV or
// XLSX): Stock Symbol / Scrip Code, Company Name, ISIN, Qty, Buy Avg,
// LTP, Current Value, P&L.
type HDFCSecurities struct{}

func (HDFCSecurities) Name() string { return "HDFC Securities" }

func (HDFCSecurities) Patterns() []string {
	return []string{
		"HDFC_*.xlsx", "hdfc_*.xlsx", "HDFCSec_*.xlsx",
		"HDFC_*.csv", "hdfc_*.csv", "HDFCSec_*.csv",
		"hdfcsec_*.xlsx", "hdfcsec_*.csv",
		"HDFCSecurities_*.xlsx", "HDFCSecurities_*.csv",
	}
}

func (h HDFCSecurities) Parse(path string) *wealthpulse.ParseOutcome {
	return parseEquityFile(path, equitySpec{
		broker: h.Name(),
		symbol: []string{"stock symbol", "symbol", "scrip code", "scrip", "stock code", "nse symbol", "trading symbol", "security name"},
		qty:    []string{"qty", "quantity", "net qty", "total qty", "free qty"},
		avg:    []string{"buy avg", "avg price", "avg cost", "average price", "buy avg price"},
		ltp:    []string{"ltp", "last price", "current price", "close price"},
		value:  []string{"current value", "mkt value", "market value"},
		isin:   []string{"isin", "isin code"},
	})
}
