package wealthpulse

import (
	"reflect"
	"testing"
	"time"
)

var testClock = time.Date(2026, 8, 25, 7, 30, 0, 0, time.UTC)

func stockOutcome(broker string, lots ...StockLot) *ParseOutcome {
	out := NewParseOutcome(broker)
	out.Stocks = lots
	return out
}

func TestConsolidateMergesAcrossBrokers(t *testing.T) {
	outcomes := []*ParseOutcome{
		stockOutcome("Groww", StockLot{
			Symbol: "RELIANCE", Quantity: 10, AvgPrice: 2500,
			Invested: 25000, ClosingPrice: 2800, ClosingValue: 28000, Broker: "Groww",
		}),
		stockOutcome("Zerodha", StockLot{
			Symbol: "RELIANCE", Quantity: 5, AvgPrice: 2600,
			Invested: 13000, ClosingPrice: 2800, ClosingValue: 14000, Broker: "Zerodha",
		}),
	}

	snap, _ := Consolidate(DefaultConfig(), nil, outcomes, nil, testClock)

	agg := snap.Stocks["RELIANCE"]
	if agg == nil {
		t.Fatal("RELIANCE missing from consolidated stocks")
	}
	if agg.TotalQty != 15 {
		t.Errorf("total qty = %v, want 15", agg.TotalQty)
	}
	if agg.TotalInvested != 38000 {
		t.Errorf("total invested = %v, want 38000", agg.TotalInvested)
	}
	if agg.BlendedAvgPrice != 2533.33 {
		t.Errorf("blended avg = %v, want 2533.33", agg.BlendedAvgPrice)
	}
	if len(agg.Brokers) != 2 || agg.Brokers[0].Broker != "Groww" || agg.Brokers[1].Broker != "Zerodha" {
		t.Errorf("broker breakdown = %+v, want Groww then Zerodha", agg.Brokers)
	}

	// invested ≈ qty × blended avg within a paisa
	if diff := agg.TotalQty*agg.BlendedAvgPrice - agg.TotalInvested; diff > 0.05 || diff < -0.05 {
		t.Errorf("qty×avg drifted from invested by %v", diff)
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	outcomes := []*ParseOutcome{
		stockOutcome("Groww", StockLot{
			Symbol: "TCS", Quantity: 4, AvgPrice: 3500, Invested: 14000,
			ClosingPrice: 3900, ClosingValue: 15600, Broker: "Groww",
		}),
	}
	cfg := DefaultConfig()

	first, _ := Consolidate(cfg, nil, outcomes, []string{"groww.xlsx"}, testClock)
	second, _ := Consolidate(cfg, nil, outcomes, []string{"groww.xlsx"}, testClock)
	if !reflect.DeepEqual(first, second) {
		t.Error("consolidating the same input twice produced different snapshots")
	}
}

func TestConsolidateVerdictCarryOver(t *testing.T) {
	prior := NewSnapshot()
	prior.Verdicts["TCS"] = Verdict{Verdict: "BUY", Risk: "Low", Sector: "IT"}

	outcomes := []*ParseOutcome{
		stockOutcome("Groww",
			StockLot{Symbol: "TCS", Quantity: 4, Invested: 14000, Broker: "Groww"},
			StockLot{Symbol: "NEWLISTING", Quantity: 1, Invested: 900, Broker: "Groww"},
		),
	}

	snap, fresh := Consolidate(DefaultConfig(), prior, outcomes, nil, testClock)

	if v := snap.Verdicts["TCS"]; v.Verdict != "BUY" {
		t.Errorf("TCS verdict = %q, want carried-over BUY", v.Verdict)
	}
	want := DefaultVerdict()
	if v := snap.Verdicts["NEWLISTING"]; v != want {
		t.Errorf("NEWLISTING verdict = %+v, want default %+v", v, want)
	}
	if len(fresh) != 1 || fresh[0] != "NEWLISTING" {
		t.Errorf("new symbols = %v, want [NEWLISTING]", fresh)
	}
}

func TestConsolidateConfigVerdictWins(t *testing.T) {
	prior := NewSnapshot()
	prior.Verdicts["INFY"] = Verdict{Verdict: "HOLD", Risk: "Medium", Sector: "IT"}

	cfg := DefaultConfig()
	cfg.Verdicts = map[string]Verdict{
		"INFY": {Verdict: "SELL", Risk: "High", Sector: "IT"},
	}

	outcomes := []*ParseOutcome{
		stockOutcome("Zerodha", StockLot{Symbol: "INFY", Quantity: 2, Invested: 3000, Broker: "Zerodha"}),
	}
	snap, _ := Consolidate(cfg, prior, outcomes, nil, testClock)

	if v := snap.Verdicts["INFY"]; v.Verdict != "SELL" {
		t.Errorf("INFY verdict = %q, want configured SELL", v.Verdict)
	}
}

func TestConsolidateFundsWeightedXIRR(t *testing.T) {
	out := NewParseOutcome("MF Central")
	out.MutualFunds = []MutualFundLot{
		{Name: "Parag Parikh Flexi Cap", AMC: "PPFAS", Category: "Equity", SubCategory: "Flexi Cap", Invested: 10000, Current: 12000, XIRR: 10},
		{Name: "Parag Parikh Flexi Cap", AMC: "PPFAS", Category: "Equity", SubCategory: "Flexi Cap", Invested: 20000, Current: 26000, XIRR: 16},
	}

	snap, _ := Consolidate(DefaultConfig(), nil, []*ParseOutcome{out}, nil, testClock)
	if len(snap.MutualFunds) != 1 {
		t.Fatalf("fund count = %d, want 1 merged scheme", len(snap.MutualFunds))
	}
	f := snap.MutualFunds[0]
	if f.XIRR != 14.0 {
		t.Errorf("weighted XIRR = %v, want 14.0", f.XIRR)
	}
	if f.Invested != 30000 || f.Current != 38000 {
		t.Errorf("invested/current = %v/%v, want 30000/38000", f.Invested, f.Current)
	}
	if f.NumFolios != 2 {
		t.Errorf("num folios = %d, want 2", f.NumFolios)
	}
	if f.Category != "Flexi Cap" || f.Type != "Equity" {
		t.Errorf("category/type = %q/%q, want Flexi Cap/Equity", f.Category, f.Type)
	}
}

func TestConsolidateYahooMap(t *testing.T) {
	outcomes := []*ParseOutcome{
		stockOutcome("Groww",
			StockLot{Symbol: "RELIANCE", Quantity: 1, Invested: 2500, Broker: "Groww"},
			StockLot{Symbol: "EMBASSY-RR", Quantity: 10, Invested: 3500, Broker: "Groww"},
			StockLot{Symbol: "INE002A01018", Quantity: 1, Invested: 100, Broker: "Groww"},
		),
	}
	snap, _ := Consolidate(DefaultConfig(), nil, outcomes, nil, testClock)

	if snap.YahooMap["RELIANCE"] != "RELIANCE.NS" {
		t.Errorf("RELIANCE ticker = %q, want RELIANCE.NS", snap.YahooMap["RELIANCE"])
	}
	if _, ok := snap.YahooMap["EMBASSY-RR"]; ok {
		t.Error("REIT units must not get a provider ticker")
	}
	if _, ok := snap.YahooMap["INE002A01018"]; ok {
		t.Error("ISIN fallbacks must not get a provider ticker")
	}
}

func TestConsolidateAppendsRetirementEntries(t *testing.T) {
	nps := NewParseOutcome("NPS")
	nps.NPSHoldings = []NPSEntry{
		{PRAN: "110012345678", SchemeName: "SBI Pension Fund - Tier I", AssetClass: "E", CurrentValue: 450000},
	}
	epfo := NewParseOutcome("EPFO")
	epfo.EPFOHoldings = []EPFOEntry{
		{UAN: "100900800700", Establishment: "ACME INDIA PVT LTD", TotalBalance: 820000},
	}

	cfg := DefaultConfig()
	cfg.NonEquity["fd"] = 250000
	snap, _ := Consolidate(cfg, nil, []*ParseOutcome{nps, epfo}, []string{"nps.pdf", "epfo.pdf"}, testClock)

	if len(snap.NPSHoldings) != 1 || len(snap.EPFOHoldings) != 1 {
		t.Fatalf("nps/epfo counts = %d/%d, want 1/1", len(snap.NPSHoldings), len(snap.EPFOHoldings))
	}
	if snap.NonEquity["fd"] != 250000 {
		t.Errorf("non_equity fd = %v, want 250000", snap.NonEquity["fd"])
	}
	if snap.Metadata.NPSCount != 1 || snap.Metadata.EPFOCount != 1 {
		t.Errorf("metadata counts = %+v", snap.Metadata)
	}
	if got := snap.Metadata.SourceFiles; len(got) != 2 || got[0] != "nps.pdf" {
		t.Errorf("source files = %v", got)
	}
}

func TestConsolidateUSHoldings(t *testing.T) {
	fid := NewParseOutcome("Fidelity")
	fid.USHoldings = []USEquityLot{
		{Symbol: "AAPL", Name: "Apple Inc", Quantity: 12, InvestedUSD: 1800, ValueUSD: 2700, Source: "Fidelity"},
	}
	ms := NewParseOutcome("Morgan Stanley")
	ms.USHoldings = []USEquityLot{
		{Symbol: "AAPL", Name: "Apple Inc", Quantity: 8, InvestedUSD: 1400, ValueUSD: 1800, Source: "Morgan Stanley"},
	}

	snap, _ := Consolidate(DefaultConfig(), nil, []*ParseOutcome{fid, ms}, nil, testClock)
	agg := snap.USHoldings["AAPL"]
	if agg == nil {
		t.Fatal("AAPL missing")
	}
	if agg.TotalQty != 20 || agg.TotalValueUSD != 4500 {
		t.Errorf("AAPL qty/value = %v/%v, want 20/4500", agg.TotalQty, agg.TotalValueUSD)
	}
	if len(agg.Sources) != 2 {
		t.Errorf("sources = %+v, want two entries", agg.Sources)
	}
}
