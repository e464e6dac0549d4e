package statement

import "github.com/wealthpulse/wealthpulse"

// Zerodha parses the Console equity holdings XLSX export. Console leaves
// column A blank; data starts at column B:
// Symbol | ISIN | Sector | Qty Available | ... | Average Price (col J) |
// Previous Closing Price (col K).
type Zerodha struct{}

func (Zerodha) Name() string { return "Zerodha" }

func (Zerodha) Patterns() []string {
	return []string{"Zerodha_*.xlsx", "zerodha_*.xlsx", "kite_*.xlsx"}
}

func (z Zerodha) Parse(path string) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(z.Name())

	rows, err := readWorkbook(path, "Equity")
	if err != nil {
		out.Errorf("cannot open %s: %v", path, err)
		return out
	}

	header := findHeaderContains(rows, 1, "symbol")
	if header < 0 {
		out.Errorf("could not find header row with 'Symbol' in column B")
		return out
	}

	for _, row := range rows[header+1:] {
		symbol := cell(row, 1)
		if symbol == "" {
			continue
		}
		qty := wealthpulse.ParseAmount(cell(row, 4))
		if qty <= 0 {
			continue
		}
		avgPrice := wealthpulse.ParseAmount(cell(row, 9))
		closingPrice := wealthpulse.ParseAmount(cell(row, 10))
		out.Stocks = append(out.Stocks, wealthpulse.StockLot{
			Symbol:       wealthpulse.NormalizeSymbol(symbol),
			ISIN:         cell(row, 2),
			Quantity:     qty,
			AvgPrice:     wealthpulse.Round2(avgPrice),
			Invested:     wealthpulse.Round2(qty * avgPrice),
			ClosingPrice: wealthpulse.Round2(closingPrice),
			ClosingValue: wealthpulse.Round2(qty * closingPrice),
			Broker:       z.Name(),
			Sector:       cell(row, 3),
		})
	}
	return out
}
