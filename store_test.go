package wealthpulse

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadSnapshotMissingFile(t *testing.T) {
	snap, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Stocks) != 0 || len(snap.Verdicts) != 0 {
		t.Error("missing file should load as an empty snapshot")
	}
}

func TestRequireSnapshotMissingFile(t *testing.T) {
	_, err := RequireSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("RequireSnapshot should fail when no snapshot exists")
	}
	if !strings.Contains(err.Error(), "wpulse parse") {
		t.Errorf("error should name the parse step: %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "portfolio_data.json")

	snap := NewSnapshot()
	snap.Metadata = Metadata{GeneratedAt: "2026-08-25T07:30:00Z", StockCount: 1}
	snap.Stocks["RELIANCE"] = &StockAggregate{
		Symbol: "RELIANCE", TotalQty: 15, TotalInvested: 38000,
		TotalClosingValue: 42000, BlendedAvgPrice: 2533.33,
		Brokers: []BrokerLot{{Broker: "Groww", Qty: 10, AvgPrice: 2500, Invested: 25000}},
	}
	snap.Verdicts["RELIANCE"] = Verdict{Verdict: "BUY", Risk: "Low", Sector: "Energy", Target1Y: 3200}
	snap.YahooMap["RELIANCE"] = "RELIANCE.NS"
	snap.MutualFunds = []FundAggregate{{Name: "Parag Parikh Flexi Cap", Invested: 30000, Current: 38000, XIRR: 14, NumFolios: 2}}
	snap.NonEquity["gold"] = 150000

	if err := SaveSnapshot(path, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	back, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !reflect.DeepEqual(snap, back) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", snap, back)
	}
}

func TestSaveSnapshotLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio_data.json")
	if err := SaveSnapshot(path, NewSnapshot()); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "portfolio_data.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("data dir after save = %v, want only portfolio_data.json", names)
	}
}

func TestSaveSnapshotOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")

	first := NewSnapshot()
	first.NonEquity["cash"] = 1000
	if err := SaveSnapshot(path, first); err != nil {
		t.Fatal(err)
	}
	second := NewSnapshot()
	second.NonEquity["cash"] = 2000
	if err := SaveSnapshot(path, second); err != nil {
		t.Fatal(err)
	}

	back, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.NonEquity["cash"] != 2000 {
		t.Errorf("cash = %v, want the second save's 2000", back.NonEquity["cash"])
	}
}
