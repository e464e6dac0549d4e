package statement

import (
	"regexp"

	"github.com/wealthpulse/wealthpulse"
)

var (
	msSharesRe = regexp.MustCompile(`(?i)Number of Shares\s+([\d,]+\.?\d*)`)
	msPriceRe  = regexp.MustCompile(`(?i)Share Price\s+\$?([\d,]+\.?\d*)`)
	msValueRe  = regexp.MustCompile(`(?i)Share Value\s+\$?([\d,]+\.?\d*)`)
)

// MorganStanley parses a StockPlan Connect account statement PDF. Same
// regex-cascade strategy as Fidelity, with Morgan Stanley's fixed
// "Number of Shares / Share Price / Share Value" labels.
type MorganStanley struct{}

func (MorganStanley) Name() string { return "MorganStanley" }

func (MorganStanley) Patterns() []string {
	return []string{"MorganStanley_*.pdf", "morgan_stanley_*.pdf", "MS_*.pdf"}
}

func (m MorganStanley) Parse(path string) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(m.Name())

	text, err := extractPDFText(path)
	if err != nil {
		out.Errorf("cannot read PDF %s: %v", path, err)
		return out
	}
	m.parseText(text, out)
	return out
}

func (m MorganStanley) parseText(text string, out *wealthpulse.ParseOutcome) {
	symbol := detectUSSymbol(text)
	shares := msSharesRe.FindStringSubmatch(text)
	if symbol == "" || shares == nil {
		out.Errorf("could not locate a holding in the Morgan Stanley statement; re-export a fresh PDF from StockPlan Connect")
		return
	}

	qty := wealthpulse.ParseAmount(shares[1])
	var price, value float64
	if pm := msPriceRe.FindStringSubmatch(text); pm != nil {
		price = wealthpulse.ParseAmount(pm[1])
	}
	if vm := msValueRe.FindStringSubmatch(text); vm != nil {
		value = wealthpulse.ParseAmount(vm[1])
	}
	if value == 0 {
		value = wealthpulse.Round2(qty * price)
	}

	out.USHoldings = append(out.USHoldings, wealthpulse.USEquityLot{
		Symbol:   symbol,
		Name:     symbol,
		Quantity: qty,
		PriceUSD: price,
		ValueUSD: value,
		Source:   m.Name(),
	})
}
