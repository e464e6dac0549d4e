package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/wealthpulse/wealthpulse"
	"github.com/wealthpulse/wealthpulse/statement"
)

// parseCmd holds the flags for the 'parse' subcommand.
type parseCmd struct {
	dir string
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "parse broker statements into the portfolio snapshot" }
func (*parseCmd) Usage() string {
	return `wpulse parse [-dir <statements>]

  Runs every enabled statement adapter against the statements directory,
  consolidates the results, and writes the portfolio snapshot. Verdicts
  from the previous snapshot carry over; new symbols get defaults.

`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "Statements directory. Defaults to the global -statements flag.")
}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load config: %v\n", err)
		return subcommands.ExitFailure
	}

	dir := c.dir
	if dir == "" {
		dir = *statementsDir
	}

	results := statement.ParseAll(cfg, dir)
	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no brokers enabled in %s.\n", *configFile)
		return subcommands.ExitSuccess
	}

	failed := 0
	for _, r := range results {
		switch {
		case r.Skipped():
			fmt.Fprintf(os.Stderr, "%-18s no statement found\n", r.Broker)
		case r.Outcome.Failed():
			failed++
			fmt.Fprintf(os.Stderr, "%-18s FAILED %s\n", r.Broker, r.File)
			for _, e := range r.Outcome.Errors {
				fmt.Fprintf(os.Stderr, "%-18s   %s\n", "", e)
			}
		default:
			s, m, u, n, e := r.Outcome.Counts()
			fmt.Fprintf(os.Stderr, "%-18s %s: %d records\n", r.Broker, r.File, s+m+u+n+e)
		}
	}

	outcomes, files := statement.CleanOutcomes(results)
	if len(outcomes) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no statement parsed cleanly, snapshot left untouched.\n")
		return subcommands.ExitFailure
	}

	prior, err := wealthpulse.LoadSnapshot(SnapshotPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load previous snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	snap, newSymbols := wealthpulse.Consolidate(cfg, prior, outcomes, files, time.Now())
	if err := wealthpulse.SaveSnapshot(SnapshotPath(), snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Stocks:        %d (₹%.0f invested)\n", len(snap.Stocks), snap.StockInvested())
	fmt.Printf("Mutual Funds:  %d (₹%.0f current)\n", len(snap.MutualFunds), snap.FundCurrent())
	fmt.Printf("US Holdings:   %d ($%.0f)\n", len(snap.USHoldings), snap.USValue())
	fmt.Printf("NPS entries:   %d (₹%.0f)\n", len(snap.NPSHoldings), snap.NPSValue())
	fmt.Printf("EPFO entries:  %d (₹%.0f)\n", len(snap.EPFOHoldings), snap.EPFOValue())
	fmt.Printf("\n✅ Portfolio saved: %s\n", SnapshotPath())

	if len(newSymbols) > 0 {
		fmt.Printf("New symbols with default verdicts: %s\n", strings.Join(newSymbols, ", "))
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n⚠️  %d statement(s) failed and were excluded from the snapshot.\n", failed)
	}
	return subcommands.ExitSuccess
}
