package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"

	"github.com/wealthpulse/wealthpulse"
)

// setPaths points the global path flags at per-test directories.
func setPaths(t *testing.T) (stmts, data string) {
	t.Helper()
	root := t.TempDir()
	stmts = filepath.Join(root, "statements")
	data = filepath.Join(root, "data")
	if err := os.MkdirAll(stmts, 0o755); err != nil {
		t.Fatal(err)
	}

	oldConfig, oldStmts, oldData, oldOut := *configFile, *statementsDir, *dataDir, *outputDir
	t.Cleanup(func() {
		*configFile, *statementsDir, *dataDir, *outputDir = oldConfig, oldStmts, oldData, oldOut
	})
	*configFile = filepath.Join(root, "config.yaml")
	*statementsDir = stmts
	*dataDir = data
	*outputDir = filepath.Join(root, "output")
	return stmts, data
}

func writeGrowwFixture(t *testing.T, dir string) {
	t.Helper()
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Holdings statement as on 15-08-2026"},
		{},
		{"Stock Name", "ISIN", "Qty", "Avg Price", "Buy Value", "Closing Price", "Closing Value"},
		{"Reliance Industries Limited", "INE002A01018", 10, 2500, 25000, 2800, 28000},
	}
	for i, row := range rows {
		axis, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", axis, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, "Groww_Holdings.xlsx")); err != nil {
		t.Fatal(err)
	}
}

func TestParseCommand(t *testing.T) {
	stmts, _ := setPaths(t)
	writeGrowwFixture(t, stmts)

	status := (&parseCmd{}).Execute(context.Background(), flag.NewFlagSet("parse", flag.ContinueOnError))
	if status != subcommands.ExitSuccess {
		t.Fatalf("parse exited %v", status)
	}

	snap, err := wealthpulse.RequireSnapshot(SnapshotPath())
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	agg, ok := snap.Stocks["RELIANCE"]
	if !ok {
		t.Fatalf("RELIANCE missing from snapshot: %v", snap.Stocks)
	}
	if agg.TotalQty != 10 || agg.TotalInvested != 25000 {
		t.Errorf("RELIANCE qty/invested = %v/%v", agg.TotalQty, agg.TotalInvested)
	}
	if v := snap.Verdicts["RELIANCE"]; v.Verdict != "HOLD" {
		t.Errorf("new symbol verdict = %q, want the HOLD default", v.Verdict)
	}
}

func TestParseCommandNoStatements(t *testing.T) {
	setPaths(t)

	// Every enabled adapter finds nothing: the snapshot must not be created.
	status := (&parseCmd{}).Execute(context.Background(), flag.NewFlagSet("parse", flag.ContinueOnError))
	if status != subcommands.ExitFailure {
		t.Fatalf("parse with no statements exited %v, want failure", status)
	}
	if _, err := os.Stat(SnapshotPath()); !os.IsNotExist(err) {
		t.Error("snapshot file created from an empty run")
	}
}

func TestSummaryCommandRequiresSnapshot(t *testing.T) {
	setPaths(t)

	status := (&summaryCmd{}).Execute(context.Background(), flag.NewFlagSet("summary", flag.ContinueOnError))
	if status != subcommands.ExitFailure {
		t.Fatalf("summary without a snapshot exited %v, want failure", status)
	}
}

func TestDashboardCommandOffline(t *testing.T) {
	stmts, _ := setPaths(t)
	writeGrowwFixture(t, stmts)

	if status := (&parseCmd{}).Execute(context.Background(), flag.NewFlagSet("parse", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("parse exited %v", status)
	}

	out := filepath.Join(*outputDir, "dash.html")
	status := (&dashboardCmd{out: out, offline: true}).Execute(context.Background(), flag.NewFlagSet("dashboard", flag.ContinueOnError))
	if status != subcommands.ExitSuccess {
		t.Fatalf("dashboard exited %v", status)
	}

	html, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("dashboard not written: %v", err)
	}
	if !strings.Contains(string(html), "RELIANCE") {
		t.Error("dashboard HTML missing the holding")
	}
}

func TestEmailCommandRequiresSnapshot(t *testing.T) {
	setPaths(t)

	status := (&emailCmd{dryRun: true}).Execute(context.Background(), flag.NewFlagSet("email", flag.ContinueOnError))
	if status != subcommands.ExitFailure {
		t.Fatalf("email without a snapshot exited %v, want failure", status)
	}
}
