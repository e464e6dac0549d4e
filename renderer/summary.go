package renderer

import (
	"github.com/wealthpulse/wealthpulse"
)

// A SummaryRow is one asset category line in the terminal summary.
type SummaryRow struct {
	Category string
	Count    int
	Invested string
	Current  string
}

// SummaryData is the template context for the terminal summary.
type SummaryData struct {
	GeneratedAt  string
	SourceFiles  int
	Rows         []SummaryRow
	NetWorthINR  string
	USValueShown bool
}

// BuildSummaryData computes the per-category totals from the snapshot
// alone, with no live prices: equity is shown at its statement close.
func BuildSummaryData(snap *wealthpulse.Snapshot) *SummaryData {
	s := &SummaryData{
		GeneratedAt: snap.Metadata.GeneratedAt,
		SourceFiles: len(snap.Metadata.SourceFiles),
	}

	add := func(category string, count int, invested, current string) {
		if count > 0 {
			s.Rows = append(s.Rows, SummaryRow{Category: category, Count: count, Invested: invested, Current: current})
		}
	}
	inr := func(v float64) string { return "₹" + FormatINR(v) }

	add("Indian Equity", len(snap.Stocks), inr(snap.StockInvested()), inr(snap.StockClosingValue()))
	add("Mutual Funds", len(snap.MutualFunds), inr(snap.FundInvested()), inr(snap.FundCurrent()))
	if len(snap.USHoldings) > 0 {
		s.USValueShown = true
		add("US Equity", len(snap.USHoldings), "", FormatUSD(snap.USValue()))
	}
	add("NPS", len(snap.NPSHoldings), "", inr(snap.NPSValue()))
	add("EPF", len(snap.EPFOHoldings), "", inr(snap.EPFOValue()))
	if snap.NonEquityValue() > 0 {
		add("Other Assets", len(snap.NonEquity), "", inr(snap.NonEquityValue()))
	}

	// INR holdings only; US equity needs a live rate to convert.
	s.NetWorthINR = inr(snap.StockClosingValue() + snap.FundCurrent() +
		snap.NPSValue() + snap.EPFOValue() + snap.NonEquityValue())
	return s
}

// SummaryMarkdown renders the summary context to markdown for the
// terminal.
func SummaryMarkdown(s *SummaryData) string {
	return renderMarkdown("summary", "templates/summary.md", s)
}
