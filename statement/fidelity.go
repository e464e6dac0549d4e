package statement

import (
	"regexp"
	"strings"

	"github.com/wealthpulse/wealthpulse"
)

// usSymbols is the detection list for ESPP/RSU custodian statements,
// which rarely label the ticker explicitly near the holdings table.
var usSymbols = []string{"MSFT", "AAPL", "GOOGL", "AMZN", "META", "TSLA", "NVDA"}

var (
	fidelitySharesRe = regexp.MustCompile(`(?i)(?:Number of )?Shares[:\s]*([\d,]+\.?\d*)`)
	fidelityPriceRe  = regexp.MustCompile(`(?i)(?:Share |Stock )?Price[:\s]*\$?([\d,]+\.?\d*)`)
	fidelityValueRe  = regexp.MustCompile(`(?i)(?:Total |Market )?Value[:\s]*\$?([\d,]+\.?\d*)`)
	usTickerRe       = regexp.MustCompile(`(?i)\b([A-Z]{2,5})\b.*?(?:stock|share|equity)`)
)

// Fidelity parses a Fidelity NetBenefits account statement PDF for
// ESPP/RSU holdings. There is no table header to anchor on, so fields
// come from a regex cascade over the page text. Extraction accuracy
// depends on Fidelity keeping the statement layout stable; when nothing
// plausible is found the adapter errors rather than fabricating a
// zero-value holding.
type Fidelity struct{}

func (Fidelity) Name() string { return "Fidelity" }

func (Fidelity) Patterns() []string {
	return []string{"Fidelity_*.pdf", "fidelity_*.pdf"}
}

func (f Fidelity) Parse(path string) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(f.Name())

	text, err := extractPDFText(path)
	if err != nil {
		out.Errorf("cannot read PDF %s: %v", path, err)
		return out
	}
	f.parseText(text, out)
	return out
}

func (f Fidelity) parseText(text string, out *wealthpulse.ParseOutcome) {
	if len(text) < 100 {
		out.Errorf("Fidelity PDF appears empty or unreadable")
		return
	}

	symbol := detectUSSymbol(text)
	shares := fidelitySharesRe.FindStringSubmatch(text)
	if symbol == "" || shares == nil {
		out.Errorf("could not locate an ESPP/RSU holding in the Fidelity statement; re-export a fresh PDF from NetBenefits")
		return
	}

	qty := wealthpulse.ParseAmount(shares[1])
	var price, value float64
	if m := fidelityPriceRe.FindStringSubmatch(text); m != nil {
		price = wealthpulse.ParseAmount(m[1])
	}
	if m := fidelityValueRe.FindStringSubmatch(text); m != nil {
		value = wealthpulse.ParseAmount(m[1])
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
		Source:   f.Name(),
	})
}

// detectUSSymbol returns the first well-known ticker appearing in the
// statement text, falling back to any caps token adjacent to
// stock/share wording.
func detectUSSymbol(text string) string {
	for _, sym := range usSymbols {
		if strings.Contains(text, sym) {
			return sym
		}
	}
	if m := usTickerRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}
