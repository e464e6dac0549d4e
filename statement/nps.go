package statement

import (
	"regexp"

	"github.com/wealthpulse/wealthpulse"
)

var (
	pranRe     = regexp.MustCompile(`(?i)PRAN\s*[:\-]?\s*(\d{12})`)
	npsDateRe  = regexp.MustCompile(`(?i)(?:as\s+on|statement\s+date|date\s*:)\s*[:\-]?\s*(\d{1,2}[\-/]\w{3}[\-/]\d{4}|\d{1,2}[\-/]\d{1,2}[\-/]\d{4})`)
	tierRe     = regexp.MustCompile(`(?i)Tier\s*(I{1,2})\b`)
	npsNavRe   = regexp.MustCompile(`(?i)NAV\s*[:\-]?\s*₹?\s*([\d,]+\.?\d+)`)
	npsUnitsRe = regexp.MustCompile(`(?i)(?:total\s+)?units?\s*[:\-]?\s*([\d,]+\.?\d+)`)
	npsPFMRe   = regexp.MustCompile(`(?i)(SBI|HDFC|ICICI|UTI|Kotak|LIC|Aditya Birla|Tata)\s*(?:Pension|PFM)`)

	npsTotalRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:total|closing)\s*(?:balance|value|corpus|amount)\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)(?:net\s+asset\s+value|nav)\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)total\s+(?:tier\s+[iI1])\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
	}
	npsContribRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:total\s+)?(?:employee|subscriber)\s*contribution\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)(?:total\s+)?employer\s*contribution\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
	}
)

// npsAssetClasses are the four NPS scheme classes and the wording each
// appears under in CRA statements.
var npsAssetClasses = []struct {
	code string
	desc string
}{
	{"E", "Equity"},
	{"C", "Corporate Bonds"},
	{"G", "Government Securities"},
	{"A", "Alternative"},
}

// NPS parses a CRA (NSDL/KFintech) Transaction Statement PDF. The
// statement has no stable tabular layout, so extraction works through a
// cascade: per-tier scheme breakdown first, then a total-corpus fallback.
// Amounts below the plausibility floor are treated as legend noise.
type NPS struct{}

func (NPS) Name() string { return "NPS" }

func (NPS) Patterns() []string {
	return []string{
		"NPS_*.pdf", "nps_*.pdf", "NPS_*.PDF",
		"NSDL_NPS_*.pdf", "nps_statement_*.pdf",
		"TransactionStatement_*.pdf",
		"NPS-SOT*.pdf",
	}
}

func (n NPS) Parse(path string) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(n.Name())

	text, err := extractPDFText(path)
	if err != nil {
		out.Errorf("cannot read NPS PDF %s: %v", path, err)
		return out
	}
	n.parseText(text, out)
	return out
}

func (n NPS) parseText(text string, out *wealthpulse.ParseOutcome) {
	if len(text) < 100 {
		out.Errorf("NPS PDF appears empty or unreadable")
		return
	}

	var pran string
	if m := pranRe.FindStringSubmatch(text); m != nil {
		pran = m[1]
	}
	if m := npsDateRe.FindStringSubmatch(text); m != nil {
		out.StatementDate = m[1]
	}

	holdings := extractNPSSchemes(text, pran, out.StatementDate)

	// Fallback: no scheme-wise breakdown found, settle for the total
	// corpus. The floor of 1000 rejects per-unit NAV figures.
	if len(holdings) == 0 {
		for _, re := range npsTotalRes {
			for _, m := range re.FindAllStringSubmatch(text, -1) {
				if value := wealthpulse.ParseAmount(m[1]); value > 1000 {
					holdings = append(holdings, wealthpulse.NPSEntry{
						PRAN:          pran,
						SchemeName:    "Tier I",
						CurrentValue:  value,
						StatementDate: out.StatementDate,
					})
					break
				}
			}
			if len(holdings) > 0 {
				break
			}
		}
	}

	if len(holdings) == 0 {
		out.Errorf("could not extract NPS data from PDF; the format may differ, download a fresh statement from npscra.nsdl.co.in")
		return
	}

	var contribution float64
	for _, re := range npsContribRes {
		if m := re.FindStringSubmatch(text); m != nil {
			contribution += wealthpulse.ParseAmount(m[1])
		}
	}
	var fundManager string
	if m := npsPFMRe.FindStringSubmatch(text); m != nil {
		fundManager = m[1]
	}
	var nav, units float64
	if m := npsNavRe.FindStringSubmatch(text); m != nil {
		nav = wealthpulse.ParseAmount(m[1])
	}
	if m := npsUnitsRe.FindStringSubmatch(text); m != nil {
		units = wealthpulse.ParseAmount(m[1])
	}

	for i := range holdings {
		h := &holdings[i]
		h.FundManager = fundManager
		if h.ContributionTotal == 0 {
			h.ContributionTotal = contribution
		}
		if h.NAV == 0 {
			h.NAV = nav
		}
		if h.Units == 0 {
			h.Units = units
		}
	}
	out.NPSHoldings = holdings
}

// extractNPSSchemes looks for a per-tier asset-class breakdown: the text
// after each "Tier N" heading is scanned for each asset class with an
// adjacent amount. Values at or below 100 are header/legend noise.
func extractNPSSchemes(text, pran, date string) []wealthpulse.NPSEntry {
	tiers := tierRe.FindAllStringSubmatchIndex(text, -1)
	seen := make(map[string]bool)
	var holdings []wealthpulse.NPSEntry
	for i, loc := range tiers {
		tierName := "Tier " + text[loc[2]:loc[3]]
		if seen[tierName] {
			continue
		}
		seen[tierName] = true
		start := loc[1]
		end := len(text)
		if i+1 < len(tiers) {
			end = tiers[i+1][0]
		}
		block := text[start:end]

		for _, class := range npsAssetClasses {
			for _, pat := range []string{
				`(?i)` + class.desc + `\s*\(` + class.code + `\).*?(\d[\d,]*\.?\d*)`,
				`(?i)(?:Scheme|Class)\s*` + class.code + `\b.*?(\d[\d,]*\.?\d*)`,
				`(?i)` + class.code + `\s*[-–]\s*` + class.desc + `.*?(\d[\d,]*\.?\d*)`,
			} {
				m := regexp.MustCompile(pat).FindStringSubmatch(block)
				if m == nil {
					continue
				}
				if value := wealthpulse.ParseAmount(m[1]); value > 100 {
					holdings = append(holdings, wealthpulse.NPSEntry{
						PRAN:          pran,
						SchemeName:    tierName,
						AssetClass:    class.code,
						CurrentValue:  value,
						StatementDate: date,
					})
				}
				break
			}
		}
	}
	return holdings
}
