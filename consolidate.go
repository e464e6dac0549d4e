package wealthpulse

import "time"

// Consolidate merges the outcomes of one parse run into a fresh Snapshot.
//
// Stocks are grouped by symbol across brokers with a recomputed blended
// average cost; mutual funds are grouped by scheme name with an
// invested-weighted XIRR; US holdings are grouped by ticker; NPS and EPFO
// entries are appended as-is. Verdicts carry over from prior, are
// overridden by configuration, and default for first-seen symbols.
//
// Callers must pass only clean outcomes (no errors); the engine does not
// filter. It returns the new snapshot and the symbols that received a
// default verdict this run.
func Consolidate(cfg *Config, prior *Snapshot, outcomes []*ParseOutcome, sourceFiles []string, now time.Time) (*Snapshot, []string) {
	snap := NewSnapshot()

	// Stocks, keyed by symbol. Broker breakdowns accumulate in outcome
	// order, so diagnostics and JSON output follow registry order.
	for _, out := range outcomes {
		for _, lot := range out.Stocks {
			agg := snap.Stocks[lot.Symbol]
			if agg == nil {
				agg = &StockAggregate{Symbol: lot.Symbol}
				snap.Stocks[lot.Symbol] = agg
			}
			agg.TotalQty += lot.Quantity
			agg.TotalInvested = Round2(agg.TotalInvested + lot.Invested)
			agg.TotalClosingValue = Round2(agg.TotalClosingValue + lot.ClosingValue)
			agg.Brokers = append(agg.Brokers, BrokerLot{
				Broker:       lot.Broker,
				Qty:          lot.Quantity,
				AvgPrice:     lot.AvgPrice,
				Invested:     lot.Invested,
				ClosingPrice: lot.ClosingPrice,
				ClosingValue: lot.ClosingValue,
			})
		}
	}
	for _, agg := range snap.Stocks {
		agg.BlendedAvgPrice = BlendedAvg(agg.TotalInvested, agg.TotalQty)
	}

	snap.MutualFunds = consolidateFunds(outcomes)

	for _, out := range outcomes {
		for _, h := range out.USHoldings {
			agg := snap.USHoldings[h.Symbol]
			if agg == nil {
				agg = &USAggregate{Symbol: h.Symbol, Name: h.Name}
				snap.USHoldings[h.Symbol] = agg
			}
			agg.TotalQty += h.Quantity
			agg.TotalInvestedUSD = Round2(agg.TotalInvestedUSD + h.InvestedUSD)
			agg.TotalValueUSD = Round2(agg.TotalValueUSD + h.ValueUSD)
			agg.Sources = append(agg.Sources, USSource{
				Source:   h.Source,
				Qty:      h.Quantity,
				ValueUSD: h.ValueUSD,
			})
		}
		// Retirement and provident-fund entries carry no cross-source
		// identity; duplicates from overlapping exports are kept.
		snap.NPSHoldings = append(snap.NPSHoldings, out.NPSHoldings...)
		snap.EPFOHoldings = append(snap.EPFOHoldings, out.EPFOHoldings...)
	}

	// Verdicts: prior snapshot first, config overrides win, defaults
	// only for symbols seen for the first time. Stale symbols are kept;
	// the map grows without bound until the user prunes it.
	if prior != nil {
		for sym, v := range prior.Verdicts {
			snap.Verdicts[sym] = v
		}
	}
	for sym, v := range cfg.Verdicts {
		snap.Verdicts[sym] = v
	}
	var newSymbols []string
	for sym := range snap.Stocks {
		if _, ok := snap.Verdicts[sym]; !ok {
			snap.Verdicts[sym] = DefaultVerdict()
			newSymbols = append(newSymbols, sym)
		}
	}

	for sym := range snap.Stocks {
		if t := ProviderTicker(sym); t != "" {
			snap.YahooMap[sym] = t
		}
	}

	for k, v := range cfg.NonEquity {
		snap.NonEquity[k] = v
	}

	snap.Metadata = Metadata{
		GeneratedAt: now.Format(time.RFC3339),
		SourceFiles: sourceFiles,
		StockCount:  len(snap.Stocks),
		MFCount:     len(snap.MutualFunds),
		USCount:     len(snap.USHoldings),
		NPSCount:    len(snap.NPSHoldings),
		EPFOCount:   len(snap.EPFOHoldings),
	}
	return snap, newSymbols
}

// consolidateFunds groups mutual fund lots by scheme name, summing
// invested and current value and weighting XIRR by invested amount.
// First-seen order is preserved so repeated runs serialize identically.
func consolidateFunds(outcomes []*ParseOutcome) []FundAggregate {
	var order []string
	byName := make(map[string]*FundAggregate)
	rates := make(map[string][]float64)
	weights := make(map[string][]float64)

	for _, out := range outcomes {
		for _, mf := range out.MutualFunds {
			agg := byName[mf.Name]
			if agg == nil {
				category := mf.SubCategory
				if category == "" {
					category = mf.Category
				}
				agg = &FundAggregate{
					Name:     mf.Name,
					AMC:      mf.AMC,
					Category: category,
					Type:     mf.Category,
				}
				byName[mf.Name] = agg
				order = append(order, mf.Name)
			}
			agg.Invested = Round2(agg.Invested + mf.Invested)
			agg.Current = Round2(agg.Current + mf.Current)
			agg.NumFolios++
			rates[mf.Name] = append(rates[mf.Name], mf.XIRR)
			weights[mf.Name] = append(weights[mf.Name], mf.Invested)
		}
	}

	funds := make([]FundAggregate, 0, len(order))
	for _, name := range order {
		agg := byName[name]
		agg.XIRR = WeightedAvg(rates[name], weights[name])
		funds = append(funds, *agg)
	}
	return funds
}
