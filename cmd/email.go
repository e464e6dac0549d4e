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
	"github.com/wealthpulse/wealthpulse/mail"
	"github.com/wealthpulse/wealthpulse/renderer"
)

// emailCmd holds the flags for the 'email' subcommand.
type emailCmd struct {
	dryRun bool
}

func (*emailCmd) Name() string     { return "email" }
func (*emailCmd) Synopsis() string { return "send the daily portfolio brief by email" }
func (*emailCmd) Usage() string {
	return `wpulse email [-n]

  Builds the daily brief from the last parsed snapshot plus live market
  data and sends it over SMTP. Credentials come from the config file or
  the GMAIL_ADDRESS, GMAIL_APP_PASSWORD, and GMAIL_RECIPIENTS environment
  variables. With -n the brief is printed instead of sent.

`
}

func (c *emailCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Print the brief to the terminal instead of sending it.")
}

func (c *emailCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	brief := renderer.BuildBriefData(cfg, snap, fetchMarket(cfg, snap), time.Now())
	md := renderer.BriefMarkdown(brief)

	if c.dryRun {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	html, err := renderer.BriefHTML(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	creds, err := mail.Resolve(cfg.Email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Tip: set email credentials in %s or the GMAIL_* environment variables.\n", *configFile)
		return subcommands.ExitFailure
	}
	if err := mail.Send(cfg.Email, brief.Subject, html, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not send email: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Daily brief sent to %s\n", strings.Join(creds.Recipients, ", "))
	return subcommands.ExitSuccess
}
