package renderer

import (
	"sort"
	"time"

	"github.com/wealthpulse/wealthpulse"
	"github.com/wealthpulse/wealthpulse/quote"
)

// MarketData carries everything fetched live for one render. All fields
// are optional: an offline render produces a dashboard from statement
// values alone.
type MarketData struct {
	StockPrices map[string]float64
	Indices     []quote.IndexQuote
	Gainers     []quote.Mover
	Losers      []quote.Mover
	News        map[string][]quote.NewsItem
}

// USDToINR returns the live USD/INR rate when the index strip carries
// one, else the configured fallback.
func (m MarketData) USDToINR(fallback float64) float64 {
	for _, q := range m.Indices {
		if q.Name == "USD/INR" && q.Price > 0 {
			return q.Price
		}
	}
	return fallback
}

// A Holding is one equity row on the dashboard, priced live when a quote
// was available and at the statement close otherwise.
type Holding struct {
	Symbol   string
	Qty      float64
	AvgPrice float64
	CMP      float64
	Invested float64
	Current  float64
	PnL      float64
	PnLPct   float64
	Verdict  string
	Sector   string
}

// A Fund is one mutual fund row on the dashboard.
type Fund struct {
	Name     string
	Category string
	Invested float64
	Current  float64
	XIRR     float64
}

// A Slice is one labelled value in an allocation breakdown.
type Slice struct {
	Label string
	Value float64
	Pct   float64
}

// A NewsSection is one feed category's headlines, in a deterministic
// category order.
type NewsSection struct {
	Category string
	Items    []quote.NewsItem
}

// DashboardData is the fully computed template context for the dashboard.
type DashboardData struct {
	Theme             string
	ProfileName       string
	GeneratedDate     string
	GeneratedDateTime string
	Greeting          string
	Currency          string

	NetWorth        float64
	NetWorthDisplay string
	TotalPnL        float64
	PnLDisplay      string
	PnLPct          float64
	EquityCurrent   float64
	EquityDisplay   string
	MFDisplay       string
	MFXIRRAvg       float64
	StocksFetched   int

	ShowFire          bool
	FireTargetDisplay string
	FireTargetAge     int
	FirePct           float64
	YearsToFire       int

	USValueDisplay string
	USCount        int

	NPSTotalDisplay  string
	NPSContribution  float64
	EPFOTotalDisplay string
	EPFOInterest     float64

	AssetSlices  []Slice
	SectorSlices []Slice

	Holdings     []Holding
	Funds        []Fund
	FundInvested float64
	FundCurrent  float64

	Indices []quote.IndexQuote
	Gainers []quote.Mover
	Losers  []quote.Mover
	News    []NewsSection
}

// BuildDashboardData computes every figure the dashboard shows from the
// snapshot, the configuration, and whatever market data was fetched.
func BuildDashboardData(cfg *wealthpulse.Config, snap *wealthpulse.Snapshot, market MarketData, now time.Time) *DashboardData {
	d := &DashboardData{
		Theme:             cfg.Dashboard.Theme,
		ProfileName:       cfg.Profile.Name,
		GeneratedDate:     now.Format("02 Jan 2006"),
		GeneratedDateTime: now.Format("02 Jan 2006, 03:04 PM"),
		Greeting:          Greeting(now),
		Currency:          "₹",
		Indices:           market.Indices,
		Gainers:           market.Gainers,
		Losers:            market.Losers,
		News:              newsSections(market.News),
	}

	d.Holdings, d.StocksFetched = buildHoldings(snap, market.StockPrices)

	var equityInvested, equityCurrent float64
	sectorTotals := make(map[string]float64)
	for _, h := range d.Holdings {
		equityInvested += h.Invested
		equityCurrent += h.Current
		sectorTotals[h.Sector] += h.Current
	}
	d.EquityCurrent = wealthpulse.Round2(equityCurrent)
	d.EquityDisplay = FormatINR(equityCurrent)
	d.TotalPnL = wealthpulse.Round2(equityCurrent - equityInvested)
	d.PnLDisplay = FormatINR(absf(d.TotalPnL))
	if equityInvested > 0 {
		d.PnLPct = wealthpulse.Round2(d.TotalPnL / equityInvested * 100)
	}

	d.Funds, d.MFXIRRAvg = buildFunds(snap)
	d.FundInvested = snap.FundInvested()
	d.FundCurrent = snap.FundCurrent()
	d.MFDisplay = FormatINR(d.FundCurrent)

	usValue := snap.USValue()
	usdINR := market.USDToINR(cfg.Profile.USDToINR)
	if usValue > 0 {
		d.USValueDisplay = FormatUSD(usValue)
	}
	d.USCount = len(snap.USHoldings)

	npsTotal := snap.NPSValue()
	if npsTotal > 0 {
		d.NPSTotalDisplay = FormatINR(npsTotal)
	}
	for _, h := range snap.NPSHoldings {
		d.NPSContribution += h.ContributionTotal
	}

	epfoTotal := snap.EPFOValue()
	if epfoTotal > 0 {
		d.EPFOTotalDisplay = FormatINR(epfoTotal)
	}
	for _, h := range snap.EPFOHoldings {
		d.EPFOInterest += h.InterestEarned
	}

	d.NetWorth = wealthpulse.Round2(equityCurrent + d.FundCurrent + snap.NonEquityValue() +
		npsTotal + epfoTotal + usValue*usdINR)
	d.NetWorthDisplay = FormatINR(d.NetWorth)

	if cfg.Dashboard.ShowFireProgress && cfg.Fire.TargetAmount > 0 {
		d.ShowFire = true
		d.FireTargetDisplay = FormatINR(cfg.Fire.TargetAmount)
		d.FireTargetAge = cfg.Fire.TargetAge
		d.FirePct = wealthpulse.Round2(d.NetWorth / cfg.Fire.TargetAmount * 100)
		if cfg.Fire.TargetAge > cfg.Profile.Age {
			d.YearsToFire = cfg.Fire.TargetAge - cfg.Profile.Age
		}
	}

	d.AssetSlices = assetSlices(snap, equityCurrent, d.FundCurrent, usValue*usdINR, npsTotal, epfoTotal)
	if cfg.Dashboard.ShowSectorChart {
		d.SectorSlices = sectorSlices(sectorTotals)
	}
	return d
}

// DashboardHTML renders the dashboard context to a standalone HTML page.
func DashboardHTML(d *DashboardData) string {
	return renderHTML("dashboard", "templates/dashboard.html", d)
}

// buildHoldings prices every stock aggregate, preferring the live quote,
// then the statement close, then flat at invested value. It returns the
// rows sorted by current value descending and the live-quote hit count.
func buildHoldings(snap *wealthpulse.Snapshot, prices map[string]float64) ([]Holding, int) {
	holdings := make([]Holding, 0, len(snap.Stocks))
	fetched := 0
	for symbol, agg := range snap.Stocks {
		h := Holding{
			Symbol:   symbol,
			Qty:      agg.TotalQty,
			AvgPrice: agg.BlendedAvgPrice,
			Invested: agg.TotalInvested,
		}
		if cmp := prices[symbol]; cmp > 0 {
			h.CMP = cmp
			fetched++
		} else if agg.TotalQty > 0 && agg.TotalClosingValue > 0 {
			h.CMP = wealthpulse.Round2(agg.TotalClosingValue / agg.TotalQty)
		}
		if h.CMP > 0 {
			h.Current = wealthpulse.Round2(h.Qty * h.CMP)
		} else {
			h.Current = h.Invested
		}
		h.PnL = wealthpulse.Round2(h.Current - h.Invested)
		if h.Invested > 0 {
			h.PnLPct = wealthpulse.Round2(h.PnL / h.Invested * 100)
		}

		verdict, ok := snap.Verdicts[symbol]
		if !ok {
			verdict = wealthpulse.DefaultVerdict()
		}
		h.Verdict = verdict.Verdict
		h.Sector = verdict.Sector
		if h.Sector == "" {
			h.Sector = "Other"
		}
		holdings = append(holdings, h)
	}
	sort.SliceStable(holdings, func(i, j int) bool {
		if holdings[i].Current != holdings[j].Current {
			return holdings[i].Current > holdings[j].Current
		}
		return holdings[i].Symbol < holdings[j].Symbol
	})
	return holdings, fetched
}

// buildFunds returns the fund rows sorted by current value descending and
// the plain average of the non-zero XIRRs.
func buildFunds(snap *wealthpulse.Snapshot) ([]Fund, float64) {
	funds := make([]Fund, 0, len(snap.MutualFunds))
	var xirrSum float64
	var xirrCount int
	for _, f := range snap.MutualFunds {
		funds = append(funds, Fund{
			Name:     f.Name,
			Category: f.Category,
			Invested: f.Invested,
			Current:  f.Current,
			XIRR:     f.XIRR,
		})
		if f.XIRR != 0 {
			xirrSum += f.XIRR
			xirrCount++
		}
	}
	sort.SliceStable(funds, func(i, j int) bool {
		if funds[i].Current != funds[j].Current {
			return funds[i].Current > funds[j].Current
		}
		return funds[i].Name < funds[j].Name
	})
	var avg float64
	if xirrCount > 0 {
		avg = wealthpulse.Round2(xirrSum / float64(xirrCount))
	}
	return funds, avg
}

// assetSlices builds the asset-allocation breakdown. Categories with no
// value are omitted; the user's static balances come last, sorted by label.
func assetSlices(snap *wealthpulse.Snapshot, equity, funds, usINR, nps, epfo float64) []Slice {
	slices := make([]Slice, 0, 5+len(snap.NonEquity))
	add := func(label string, value float64) {
		if value > 0 {
			slices = append(slices, Slice{Label: label, Value: wealthpulse.Round2(value)})
		}
	}
	add("Indian Equity", equity)
	add("Mutual Funds", funds)
	add("US Equity", usINR)
	add("NPS", nps)
	add("EPF", epfo)

	labels := make([]string, 0, len(snap.NonEquity))
	for label := range snap.NonEquity {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		add(label, snap.NonEquity[label])
	}
	return withPct(slices)
}

// sectorSlices keeps the eight biggest sectors and folds the rest into
// an Others bucket.
func sectorSlices(totals map[string]float64) []Slice {
	slices := make([]Slice, 0, len(totals))
	for sector, value := range totals {
		if value > 0 {
			slices = append(slices, Slice{Label: sector, Value: wealthpulse.Round2(value)})
		}
	}
	sort.SliceStable(slices, func(i, j int) bool {
		if slices[i].Value != slices[j].Value {
			return slices[i].Value > slices[j].Value
		}
		return slices[i].Label < slices[j].Label
	})
	if len(slices) > 8 {
		var other float64
		for _, s := range slices[8:] {
			other += s.Value
		}
		slices = append(slices[:8], Slice{Label: "Others", Value: wealthpulse.Round2(other)})
	}
	return withPct(slices)
}

// withPct fills each slice's share of the total.
func withPct(slices []Slice) []Slice {
	var total float64
	for _, s := range slices {
		total += s.Value
	}
	if total <= 0 {
		return slices
	}
	for i := range slices {
		slices[i].Pct = wealthpulse.Round2(slices[i].Value / total * 100)
	}
	return slices
}

// newsSections flattens the feed map into category-sorted sections.
func newsSections(news map[string][]quote.NewsItem) []NewsSection {
	categories := make([]string, 0, len(news))
	for category := range news {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	sections := make([]NewsSection, 0, len(categories))
	for _, category := range categories {
		sections = append(sections, NewsSection{Category: category, Items: news[category]})
	}
	return sections
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
