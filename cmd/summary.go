package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/wealthpulse/wealthpulse"
	"github.com/wealthpulse/wealthpulse/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the consolidated portfolio totals" }
func (*summaryCmd) Usage() string {
	return `wpulse summary

  Displays per-category totals from the last parsed snapshot. Values are
  the statement closes; no live prices are fetched.

`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := wealthpulse.RequireSnapshot(SnapshotPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(renderer.BuildSummaryData(snap)))
	return subcommands.ExitSuccess
}
