package statement

import (
	"sort"
	"strings"

	"github.com/wealthpulse/wealthpulse"
)

// An equitySpec describes how one broker's tabular export maps to stock
// lots: the synonym list per semantic column, in priority order. The
// symbol synonyms double as the header-row detection set.
type equitySpec struct {
	broker string
	symbol []string
	qty    []string
	avg    []string
	ltp    []string
	value  []string
	isin   []string
	sector []string
	// fixSymbol applies a broker-specific correction after the shared
	// normalization (e.g. Dhan's "NSE-RELIANCE" exchange prefix).
	fixSymbol func(string) string
}

// parseEquityFile dispatches on file extension and parses a tabular
// equity holdings export using the two-phase header/column discovery.
func parseEquityFile(path string, spec equitySpec) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(spec.broker)

	var rows [][]string
	var err error
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		rows, err = readCSV(path)
	} else {
		rows, err = readWorkbook(path)
	}
	if err != nil {
		out.Errorf("cannot open %s: %v", path, err)
		return out
	}

	parseEquityGrid(rows, spec, out)
	return out
}

func parseEquityGrid(rows [][]string, spec equitySpec, out *wealthpulse.ParseOutcome) {
	header := findHeader(rows, spec.symbol...)
	if header < 0 {
		out.Errorf("could not find header row (tried %s)", strings.Join(spec.symbol, ", "))
		return
	}
	cols := columnMap(rows[header])

	symCol, ok := pickColumn(cols, spec.symbol...)
	if !ok {
		out.Errorf("cannot map symbol column, headers: %s", headerNames(cols))
		return
	}
	qtyCol, ok := pickColumn(cols, spec.qty...)
	if !ok {
		out.Errorf("cannot map quantity column (tried %s), headers: %s",
			strings.Join(spec.qty, ", "), headerNames(cols))
		return
	}
	avgCol, _ := pickColumn(cols, spec.avg...)
	ltpCol, _ := pickColumn(cols, spec.ltp...)
	valCol, _ := pickColumn(cols, spec.value...)
	isinCol, _ := pickColumn(cols, spec.isin...)
	sectorCol, _ := pickColumn(cols, spec.sector...)

	for _, row := range rows[header+1:] {
		raw := cell(row, symCol)
		if raw == "" {
			continue
		}
		symbol := wealthpulse.NormalizeSymbol(raw)
		if spec.fixSymbol != nil {
			symbol = spec.fixSymbol(symbol)
		}

		qty := wealthpulse.ParseAmount(cell(row, qtyCol))
		if qty <= 0 {
			continue
		}
		avgPrice := wealthpulse.ParseAmount(cell(row, avgCol))
		ltp := wealthpulse.ParseAmount(cell(row, ltpCol))
		curValue := wealthpulse.ParseAmount(cell(row, valCol))

		closingValue := curValue
		if closingValue <= 0 {
			closingValue = qty * ltp
		}
		out.Stocks = append(out.Stocks, wealthpulse.StockLot{
			Symbol:       symbol,
			ISIN:         cell(row, isinCol),
			Quantity:     qty,
			AvgPrice:     wealthpulse.Round2(avgPrice),
			Invested:     wealthpulse.Round2(qty * avgPrice),
			ClosingPrice: wealthpulse.Round2(ltp),
			ClosingValue: wealthpulse.Round2(closingValue),
			Broker:       spec.broker,
			Sector:       cell(row, sectorCol),
		})
	}
}

// headerNames renders the discovered headers for a column-mapping error.
func headerNames(cols map[string]int) string {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
