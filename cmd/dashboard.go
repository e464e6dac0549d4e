package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"

	"github.com/wealthpulse/wealthpulse"
	"github.com/wealthpulse/wealthpulse/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	out     string
	offline bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "generate the HTML portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `wpulse dashboard [-o <file>] [-offline]

  Renders the portfolio dashboard from the last parsed snapshot, enriched
  with live quotes, index levels, market movers, and news. With -offline
  the dashboard is built from statement values alone.

`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output HTML file. Defaults to a dated file in the output directory.")
	f.BoolVar(&c.offline, "offline", false, "Skip live quote and news fetching.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load config: %v\n", err)
		return subcommands.ExitFailure
	}
	snap, err := wealthpulse.RequireSnapshot(SnapshotPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var market renderer.MarketData
	if !c.offline {
		market = fetchMarket(cfg, snap)
	}

	now := time.Now()
	html := renderer.DashboardHTML(renderer.BuildDashboardData(cfg, snap, market, now))

	out := c.out
	if out == "" {
		out = filepath.Join(*outputDir, fmt.Sprintf("WealthPulse_Dashboard_%s.html", now.Format("20060102")))
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Dashboard saved: %s\n", out)
	return subcommands.ExitSuccess
}
