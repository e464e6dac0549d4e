package statement

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wealthpulse/wealthpulse"
)

// Groww exports full company names instead of trading symbols, so the
// adapter resolves names through a lookup table with ISIN and fuzzy
// fallbacks.
var growwNameMap = map[string]string{
	"Aarti Industries Limited":                        "AARTIIND",
	"Aavas Financiers Limited":                        "AAVAS",
	"Alkyl Amines Chemicals Limited":                  "ALKYLAMINE",
	"Avenue Supermarts Limited":                       "DMART",
	"Bajaj Finance Limited":                           "BAJFINANCE",
	"Bajaj Housing Finance Limited":                   "BAJAJHFL",
	"Bandhan Bank Limited":                            "BANDHANBNK",
	"Bata India Limited":                              "BATAINDIA",
	"Dr. Lal PathLabs Limited":                        "LALPATHLAB",
	"Easy Trip Planners Limited":                      "EASEMYTRIP",
	"GMM Pfaudler Limited":                            "GMMPFAUDLR",
	"HDFC Bank Limited":                               "HDFCBANK",
	"HDFC Life Insurance Company Limited":             "HDFCLIFE",
	"ICICI Lombard General Insurance Company Limited": "ICICIGI",
	"Info Edge (India) Limited":                       "NAUKRI",
	"Infosys Limited":                                 "INFOSYS",
	"Jio Financial Services Limited":                  "JIOFIN",
	"Jubilant FoodWorks Limited":                      "JUBLFOOD",
	"LTIMindtree Limited":                             "LTIM",
	"Maruti Suzuki India Limited":                     "MARUTI",
	"Mold-Tek Packaging Limited":                      "MOLDTKPAC",
	"Nestle India Limited":                            "NESTLEIND",
	"Pidilite Industries Limited":                     "PIDILITIND",
	"Prince Pipes and Fittings Limited":               "PRINCEPIPE",
	"Reliance Industries Limited":                     "RELIANCE",
	"SBI - ETF Nifty 50":                              "SETFNIF50",
	"Tata Consultancy Services Limited":               "TCS",
	"Vodafone Idea Limited":                           "IDEA",
}

var growwISINMap = map[string]string{
	"INE020B01018": "RELIANCE",
	"INE467B01029": "TCS",
	"INE009A01021": "INFOSYS",
	"INE040A01034": "HDFCBANK",
	"INE296A01024": "BAJFINANCE",
	"INE795G01014": "BAJAJHFL",
	"INE118H01025": "BANDHANBNK",
	"INE176A01028": "BATAINDIA",
	"INE600K01018": "AAVAS",
	"INE498S01024": "EASEMYTRIP",
	"INE541W01024": "JIOFIN",
	"INE797F01020": "JUBLFOOD",
	"INE214T01019": "LTIM",
	"INE585B01010": "MARUTI",
	"INE00S201012": "DMART",
	"INE934A01020": "NESTLEIND",
	"INE318A01026": "HDFCLIFE",
	"INE765G01017": "ICICIGI",
}

var (
	growwDateRe   = regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`)
	nonAlphaNumRe = regexp.MustCompile(`[^A-Z0-9]`)
)

// growwNames holds the map keys in sorted order so the first-word fuzzy
// fallback resolves the same way every run.
var growwNames = func() []string {
	names := make([]string, 0, len(growwNameMap))
	for name := range growwNameMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Groww parses the Groww equity holdings XLSX export. Layout:
// Stock Name | ISIN | Qty | Avg buy price | Buy value | Closing price |
// Closing value | Unrealised P&L, below a title block.
type Groww struct{}

func (Groww) Name() string { return "Groww" }

func (Groww) Patterns() []string {
	return []string{"Grow_*.xlsx", "Groww_*.xlsx", "groww_*.xlsx"}
}

func (g Groww) Parse(path string) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(g.Name())

	rows, err := readWorkbook(path)
	if err != nil {
		out.Errorf("cannot open %s: %v", path, err)
		return out
	}

	header := findHeaderContains(rows, 0, "stock name")
	if header < 0 {
		out.Errorf("could not find header row with 'Stock Name'")
		return out
	}

	// The title block above the header carries the statement date.
	for r := 0; r < header; r++ {
		v := cell(rows[r], 0)
		if strings.Contains(strings.ToLower(v), "as on") {
			if m := growwDateRe.FindString(v); m != "" {
				out.StatementDate = m
			}
			break
		}
	}

	for _, row := range rows[header+1:] {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		isin := cell(row, 1)
		qty := wealthpulse.ParseAmount(cell(row, 2))
		if qty <= 0 {
			continue
		}
		out.Stocks = append(out.Stocks, wealthpulse.StockLot{
			Symbol:       resolveGrowwSymbol(name, isin),
			ISIN:         isin,
			Quantity:     qty,
			AvgPrice:     wealthpulse.Round2(wealthpulse.ParseAmount(cell(row, 3))),
			Invested:     wealthpulse.Round2(wealthpulse.ParseAmount(cell(row, 4))),
			ClosingPrice: wealthpulse.Round2(wealthpulse.ParseAmount(cell(row, 5))),
			ClosingValue: wealthpulse.Round2(wealthpulse.ParseAmount(cell(row, 6))),
			Broker:       g.Name(),
		})
	}
	return out
}

// resolveGrowwSymbol maps a company display name to an NSE symbol:
// exact name, then ISIN, then first-word fuzzy match, then ISIN as-is,
// finally a sanitized truncation of the name.
func resolveGrowwSymbol(name, isin string) string {
	if sym, ok := growwNameMap[name]; ok {
		return sym
	}
	if sym, ok := growwISINMap[isin]; ok {
		return sym
	}
	if first, _, _ := strings.Cut(name, " "); first != "" {
		firstUpper := strings.ToUpper(first)
		for _, fullName := range growwNames {
			if f, _, _ := strings.Cut(fullName, " "); strings.ToUpper(f) == firstUpper {
				return growwNameMap[fullName]
			}
		}
	}
	if strings.HasPrefix(isin, "INE") {
		return isin
	}
	clean := nonAlphaNumRe.ReplaceAllString(strings.ToUpper(name), "")
	if len(clean) > 15 {
		clean = clean[:15]
	}
	return clean
}
