// Package statement converts broker statement exports (XLSX, CSV, PDF)
// into the shared holding records. Each institution gets one Adapter;
// the registry drives them in a fixed order so run logs stay stable.
package statement

import (
	"os"
	"path/filepath"

	"github.com/wealthpulse/wealthpulse"
)

// An Adapter parses one institution's statement export.
type Adapter interface {
	// Name is the human-readable institution name used in records.
	Name() string
	// Patterns are the filename globs this adapter claims.
	Patterns() []string
	// Parse reads the file at path. Parse never returns a Go error:
	// failures are recorded on the outcome so one bad export cannot
	// abort the rest of the run.
	Parse(path string) *wealthpulse.ParseOutcome
}

// Registration pairs a config key with its adapter.
type Registration struct {
	Key     string
	Adapter Adapter
}

// Registry returns all adapters in their canonical order: Indian brokers,
// mutual funds, US custodians, then retirement accounts.
func Registry() []Registration {
	return []Registration{
		{"groww", Groww{}},
		{"zerodha", Zerodha{}},
		{"mutual_funds", MutualFunds{}},
		{"angel_one", AngelOne{}},
		{"upstox", Upstox{}},
		{"icici_direct", ICICIDirect{}},
		{"hdfc_securities", HDFCSecurities{}},
		{"kotak_securities", KotakSecurities{}},
		{"dhan", Dhan{}},
		{"five_paisa", FivePaisa{}},
		{"fidelity", Fidelity{}},
		{"morgan_stanley", MorganStanley{}},
		{"nps", NPS{}},
		{"epfo", EPFO{}},
	}
}

// FindLatest returns the most recently modified file in dir matching any
// of the patterns, or "" when none match.
func FindLatest(dir string, patterns []string) string {
	var best string
	var bestMod int64
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				continue
			}
			if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
				best, bestMod = m, mod
			}
		}
	}
	return best
}

// A RunResult is one adapter invocation within a parse run.
type RunResult struct {
	Key    string
	Broker string
	// File is the base name of the parsed statement, empty when the
	// adapter found no matching file.
	File    string
	Outcome *wealthpulse.ParseOutcome
}

// Skipped reports whether no statement file was found for this broker.
func (r RunResult) Skipped() bool { return r.Outcome == nil }

// ParseAll runs every enabled adapter against dir, in registry order.
// Adapter failures are carried inside their outcomes; ParseAll itself
// never fails.
func ParseAll(cfg *wealthpulse.Config, dir string) []RunResult {
	var results []RunResult
	for _, reg := range Registry() {
		if !cfg.BrokerEnabled(reg.Key) {
			continue
		}
		path := FindLatest(dir, reg.Adapter.Patterns())
		if path == "" {
			results = append(results, RunResult{Key: reg.Key, Broker: reg.Adapter.Name()})
			continue
		}
		results = append(results, RunResult{
			Key:     reg.Key,
			Broker:  reg.Adapter.Name(),
			File:    filepath.Base(path),
			Outcome: reg.Adapter.Parse(path),
		})
	}
	return results
}

// CleanOutcomes filters a run down to the outcomes safe to consolidate
// and returns them with their source filenames.
func CleanOutcomes(results []RunResult) ([]*wealthpulse.ParseOutcome, []string) {
	var outcomes []*wealthpulse.ParseOutcome
	var files []string
	for _, r := range results {
		if r.Skipped() || r.Outcome.Failed() {
			continue
		}
		outcomes = append(outcomes, r.Outcome)
		files = append(files, r.File)
	}
	return outcomes, files
}
