package statement

import "github.com/wealthpulse/wealthpulse"

// MutualFunds parses consolidated mutual fund XLSX exports (MF Central,
// Groww, Kuvera). Fixed layout below the detected header:
// Scheme Name | AMC | Category | Sub Category | Folio Number | Source |
// Units | Invested Value | Current Value | Returns | XIRR.
//
// Folios of the same scheme are merged here with an invested-weighted
// XIRR, so one scheme held in two folios surfaces as a single lot.
type MutualFunds struct{}

func (MutualFunds) Name() string { return "MutualFunds" }

func (MutualFunds) Patterns() []string {
	return []string{"MutualFunds_*.xlsx", "mf_*.xlsx", "MF_*.xlsx", "mutual_funds_*.xlsx"}
}

func (m MutualFunds) Parse(path string) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(m.Name())

	rows, err := readWorkbook(path, "Holdings")
	if err != nil {
		out.Errorf("cannot open %s: %v", path, err)
		return out
	}

	header := findHeaderContains(rows, 0, "scheme name")
	if header < 0 {
		out.Errorf("could not find header row with 'Scheme Name'")
		return out
	}

	var order []string
	merged := make(map[string]*wealthpulse.MutualFundLot)
	for _, row := range rows[header+1:] {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		invested := wealthpulse.ParseAmount(cell(row, 7))
		xirr := wealthpulse.ParseAmount(cell(row, 10))

		lot := merged[name]
		if lot == nil {
			lot = &wealthpulse.MutualFundLot{
				Name:        name,
				AMC:         cell(row, 1),
				Category:    cell(row, 2),
				SubCategory: cell(row, 3),
				Folio:       cell(row, 4),
				Source:      cell(row, 5),
			}
			merged[name] = lot
			order = append(order, name)
		}
		if total := lot.Invested + invested; total > 0 {
			lot.XIRR = wealthpulse.WeightedAvg(
				[]float64{lot.XIRR, xirr},
				[]float64{lot.Invested, invested},
			)
		}
		lot.Units += wealthpulse.ParseAmount(cell(row, 6))
		lot.Invested = wealthpulse.Round2(lot.Invested + invested)
		lot.Current = wealthpulse.Round2(lot.Current + wealthpulse.ParseAmount(cell(row, 8)))
	}

	for _, name := range order {
		out.MutualFunds = append(out.MutualFunds, *merged[name])
	}
	return out
}
