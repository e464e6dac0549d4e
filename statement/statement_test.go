package statement

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wealthpulse/wealthpulse"
)

func TestFindLatestPicksNewest(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "Groww_jan.xlsx")
	newer := filepath.Join(dir, "Groww_aug.xlsx")
	for _, p := range []string{older, newer} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	got := FindLatest(dir, Groww{}.Patterns())
	if got != newer {
		t.Errorf("FindLatest = %q, want %q", got, newer)
	}
}

func TestFindLatestNoMatch(t *testing.T) {
	if got := FindLatest(t.TempDir(), []string{"Zerodha_*.xlsx"}); got != "" {
		t.Errorf("FindLatest in empty dir = %q, want empty", got)
	}
}

func TestRegistryOrderStable(t *testing.T) {
	regs := Registry()
	if len(regs) != 14 {
		t.Fatalf("registry has %d adapters, want 14", len(regs))
	}
	if regs[0].Key != "groww" || regs[len(regs)-1].Key != "epfo" {
		t.Errorf("registry order changed: first=%s last=%s", regs[0].Key, regs[len(regs)-1].Key)
	}
	seen := make(map[string]bool)
	for _, reg := range regs {
		if seen[reg.Key] {
			t.Errorf("duplicate registry key %q", reg.Key)
		}
		seen[reg.Key] = true
		if len(reg.Adapter.Patterns()) == 0 {
			t.Errorf("adapter %q has no filename patterns", reg.Key)
		}
	}
}

func TestParseAllHonorsConfigAndOrder(t *testing.T) {
	dir := t.TempDir()
	writeGrowwStatement(t, dir)
	// A Zerodha file exists but the broker is disabled below.
	if err := os.WriteFile(filepath.Join(dir, "Zerodha_aug.xlsx"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := wealthpulse.DefaultConfig()
	cfg.Brokers = map[string]wealthpulse.BrokerConfig{
		"groww":   {Enabled: true},
		"upstox":  {Enabled: true},
		"zerodha": {Enabled: false},
	}

	results := ParseAll(cfg, dir)
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2 enabled brokers", len(results))
	}
	if results[0].Key != "groww" || results[1].Key != "upstox" {
		t.Errorf("run order = %s, %s; want groww, upstox", results[0].Key, results[1].Key)
	}
	if results[0].Skipped() || results[0].Outcome.Failed() {
		t.Errorf("groww should have parsed cleanly: %+v", results[0])
	}
	if !results[1].Skipped() {
		t.Error("upstox has no statement file and should be skipped")
	}
}

func TestCleanOutcomesFiltersFailures(t *testing.T) {
	good := wealthpulse.NewParseOutcome("Groww")
	good.Stocks = []wealthpulse.StockLot{{Symbol: "TCS", Quantity: 1}}
	bad := wealthpulse.NewParseOutcome("NPS")
	bad.Errorf("unreadable")

	results := []RunResult{
		{Key: "groww", Broker: "Groww", File: "g.xlsx", Outcome: good},
		{Key: "zerodha", Broker: "Zerodha"}, // skipped, no file
		{Key: "nps", Broker: "NPS", File: "n.pdf", Outcome: bad},
	}
	outcomes, files := CleanOutcomes(results)
	if len(outcomes) != 1 || outcomes[0] != good {
		t.Fatalf("outcomes = %+v, want only the clean one", outcomes)
	}
	if len(files) != 1 || files[0] != "g.xlsx" {
		t.Errorf("files = %v, want [g.xlsx]", files)
	}
}
