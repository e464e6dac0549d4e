// Package cmd implements the CLI application that turns broker statements
// into a consolidated portfolio snapshot, dashboard, and daily brief.
package cmd

import (
	"flag"
	"path/filepath"
	"sort"

	"github.com/google/subcommands"

	"github.com/wealthpulse/wealthpulse"
	"github.com/wealthpulse/wealthpulse/quote"
	"github.com/wealthpulse/wealthpulse/renderer"
)

// Commands lists every subcommand in registration order.
var Commands = []subcommands.Command{
	&parseCmd{},
	&summaryCmd{},
	&dashboardCmd{},
	&emailCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the shared paths.

var configFile = flag.String("config", filepath.Join("config", "config.yaml"), "Path to the YAML configuration file")
var statementsDir = flag.String("statements", filepath.Join("data", "statements"), "Directory scanned for broker statement files")
var dataDir = flag.String("data", "data", "Directory holding the portfolio snapshot")
var outputDir = flag.String("output", "output", "Directory for generated dashboards")

// LoadConfig reads the configured YAML file, merging it over the defaults.
// A missing file is not an error: first runs work out of the box.
func LoadConfig() (*wealthpulse.Config, error) {
	return wealthpulse.LoadConfig(*configFile)
}

// SnapshotPath returns the location of the consolidated snapshot file.
func SnapshotPath() string {
	return filepath.Join(*dataDir, wealthpulse.SnapshotFile)
}

// fetchMarket gathers live quotes, index levels, movers, and news,
// honoring the dashboard settings. Everything inside is best-effort.
func fetchMarket(cfg *wealthpulse.Config, snap *wealthpulse.Snapshot) renderer.MarketData {
	svc := quote.NewService()

	symbols := make([]string, 0, len(snap.Stocks))
	for sym := range snap.Stocks {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	market := renderer.MarketData{
		StockPrices: svc.Quotes(symbols, snap.YahooMap),
		Indices:     svc.Indices(),
	}
	if cfg.Dashboard.ShowMarketMovers {
		market.Gainers, market.Losers = svc.TopMovers(cfg.Dashboard.TopNMovers)
	}
	if cfg.Dashboard.ShowNews && len(cfg.NewsFeeds) > 0 {
		market.News = quote.News(cfg.NewsFeeds, 5)
	}
	return market
}
