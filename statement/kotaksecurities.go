package statement

import "github.com/wealthpulse/wealthpulse"

// KotakSecurities parses the Kotak Neo holdings export (CSV or XLSX):
// Symbol, ISIN, Quantity, Avg Price, LTP, Current Value, P&L, Change %.
type KotakSecurities struct{}

func (KotakSecurities) Name() string { return "Kotak Securities" }

func (KotakSecurities) Patterns() []string {
	return []string{
		"Kotak_*.xlsx", "kotak_*.xlsx", "KotakSec_*.xlsx", "KotakNeo_*.xlsx",
		"Kotak_*.csv", "kotak_*.csv", "KotakSec_*.csv", "KotakNeo_*.csv",
		"kotaksecurities_*.xlsx", "kotaksecurities_*.csv",
	}
}

func (k KotakSecurities) Parse(path string) *wealthpulse.ParseOutcome {
	return parseEquityFile(path, equitySpec{
		broker: k.Name(),
		symbol: []string{"symbol", "stock symbol", "scrip", "script", "instrument", "stock", "trading symbol", "security"},
		qty:    []string{"quantity", "qty", "net qty", "total qty", "available qty"},
		avg:    []string{"avg price", "avg cost", "average price", "buy avg", "buy price", "cost price"},
		ltp:    []string{"ltp", "last price", "current price", "close price", "market price"},
		value:  []string{"current value", "mkt value", "market value"},
		isin:   []string{"isin", "isin code", "isin no"},
	})
}
