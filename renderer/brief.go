package renderer

import (
	"fmt"
	"sort"
	"time"

	"github.com/wealthpulse/wealthpulse"
	"github.com/wealthpulse/wealthpulse/quote"
)

// briefIndexNames are the only benchmarks shown in the email, to keep it
// compact.
var briefIndexNames = []string{"NIFTY 50", "SENSEX", "NIFTY Bank", "Gold (INR/10g)", "USD/INR"}

// A PortfolioMover is one of the user's own stocks ranked by the size of
// its day move.
type PortfolioMover struct {
	Symbol    string
	Price     float64
	ChangePct float64
	DayPnL    float64
}

// BriefData is the template context for the daily email brief.
type BriefData struct {
	Subject       string
	DateDisplay   string
	Greeting      string
	Currency      string
	EquityDisplay string
	DayPnL        float64
	DayPnLDisplay string

	PortfolioMovers []PortfolioMover

	MFDisplay    string
	MFPnL        float64
	MFPnLDisplay string

	Indices []quote.IndexQuote
	Gainers []quote.Mover
	Losers  []quote.Mover
	News    []NewsSection
}

// BuildBriefData computes the brief's figures. The day's profit and loss
// is estimated against each stock's statement close, so it is only as
// fresh as the last parsed statement.
func BuildBriefData(cfg *wealthpulse.Config, snap *wealthpulse.Snapshot, market MarketData, now time.Time) *BriefData {
	b := &BriefData{
		Subject:     fmt.Sprintf("WealthPulse Brief - %s", now.Format("02 Jan 2006")),
		DateDisplay: now.Format("Monday, 02 Jan 2006"),
		Greeting:    Greeting(now),
		Currency:    "₹",
		Gainers:     market.Gainers,
		Losers:      market.Losers,
		News:        newsSections(market.News),
	}

	var totalCurrent, dayPnL float64
	movers := make([]PortfolioMover, 0, len(snap.Stocks))
	for symbol, agg := range snap.Stocks {
		var prevClose float64
		if agg.TotalQty > 0 && agg.TotalClosingValue > 0 {
			prevClose = agg.TotalClosingValue / agg.TotalQty
		}
		cmp := market.StockPrices[symbol]
		if cmp <= 0 {
			cmp = prevClose
		}
		if cmp <= 0 {
			cmp = agg.BlendedAvgPrice
		}
		totalCurrent += agg.TotalQty * cmp

		m := PortfolioMover{Symbol: symbol, Price: wealthpulse.Round2(cmp)}
		if prevClose > 0 {
			m.DayPnL = wealthpulse.Round2(agg.TotalQty * (cmp - prevClose))
			m.ChangePct = wealthpulse.Round2((cmp - prevClose) / prevClose * 100)
		}
		dayPnL += m.DayPnL
		movers = append(movers, m)
	}
	sort.SliceStable(movers, func(i, j int) bool {
		if absf(movers[i].DayPnL) != absf(movers[j].DayPnL) {
			return absf(movers[i].DayPnL) > absf(movers[j].DayPnL)
		}
		return movers[i].Symbol < movers[j].Symbol
	})
	if len(movers) > 10 {
		movers = movers[:10]
	}
	b.PortfolioMovers = movers
	b.EquityDisplay = FormatINR(totalCurrent)
	b.DayPnL = wealthpulse.Round2(dayPnL)
	b.DayPnLDisplay = FormatINR(absf(b.DayPnL))

	mfCurrent := snap.FundCurrent()
	if mfCurrent > 0 {
		b.MFDisplay = FormatINR(mfCurrent)
	}
	b.MFPnL = wealthpulse.Round2(mfCurrent - snap.FundInvested())
	b.MFPnLDisplay = FormatINR(absf(b.MFPnL))

	for _, q := range market.Indices {
		for _, name := range briefIndexNames {
			if q.Name == name {
				b.Indices = append(b.Indices, q)
				break
			}
		}
	}
	return b
}

// BriefMarkdown renders the brief context to markdown. The same text is
// shown in the terminal and converted to HTML for the email body.
func BriefMarkdown(b *BriefData) string {
	return renderMarkdown("brief", "templates/brief.md", b)
}
