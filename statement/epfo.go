package statement

import (
	"regexp"
	"strings"

	"github.com/wealthpulse/wealthpulse"
)

var (
	uanRe       = regexp.MustCompile(`(?i)UAN\s*[:\-]?\s*(\d{12})`)
	epfoDateRe  = regexp.MustCompile(`(?i)(?:as\s+on|date|upto|till)\s*[:\-]?\s*(\d{1,2}[\-/]\w{3}[\-/]\d{4}|\d{1,2}[\-/]\d{1,2}[\-/]\d{4})`)
	epfoEstRe   = regexp.MustCompile(`(?i)(?:establishment|employer|company)\s*(?:name)?\s*[:\-]?\s*([A-Z][A-Za-z\s&.,]+?)(?:\n|Member|UAN|\d{2}/)`)
	closingRe   = regexp.MustCompile(`(?i)(?:closing|total|net)\s*balance\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`)
	interestRe  = regexp.MustCompile(`(?i)(?:interest|int\.?)\s*(?:credited|earned)?\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`)
	tripleRowRe = regexp.MustCompile(`([\d,]+\.?\d{0,2})\s+([\d,]+\.?\d{0,2})\s+([\d,]+\.?\d{0,2})`)

	memberIDRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Member\s*Id\s*[:\-]?\s*([A-Z]{2}/\d+/\d+)`),
		regexp.MustCompile(`(?i)Member\s*Id\s*[:\-]?\s*(\w+/\w+/\w+)`),
	}
	shareRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Employee\s*(?:Share|Contribution)\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)Employer\s*(?:Share|Contribution)\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)Pension\s*(?:Share|Fund|Contribution)\s*[:\-]?\s*₹?\s*([\d,]+\.?\d*)`),
	}
)

// epfoColumnHints drives header detection and column mapping for the
// tabular (XLSX/CSV) passbook variants some payroll providers export.
// epfoHintOrder fixes the mapping priority when a header cell matches
// more than one field's hints.
var epfoHintOrder = []string{
	"uan", "member_id", "establishment", "employee_share",
	"employer_share", "pension_share", "total_balance", "interest", "date",
}

var epfoColumnHints = map[string][]string{
	"uan":            {"uan", "universal account"},
	"member_id":      {"member id", "member_id", "memberid"},
	"establishment":  {"establishment", "employer", "company"},
	"employee_share": {"employee share", "employee contribution", "ee share", "ee contribution"},
	"employer_share": {"employer share", "employer contribution", "er share", "er contribution"},
	"pension_share":  {"pension", "eps", "pension share", "pension fund"},
	"total_balance":  {"total", "balance", "closing", "net"},
	"interest":       {"interest", "int"},
	"date":           {"date", "as on", "period"},
}

// EPFO parses the EPFO e-Passbook. The PDF from passbook.epfindia.gov.in
// is a running ledger, so share amounts take the LAST match in document
// order (later rows carry the up-to-date balances). Tabular XLSX/CSV
// exports go through hint-based column mapping instead.
type EPFO struct{}

func (EPFO) Name() string { return "EPFO" }

func (EPFO) Patterns() []string {
	return []string{
		"EPFO_*.pdf", "epfo_*.pdf",
		"EPF_Passbook*.pdf", "epf_passbook*.pdf",
		"UAN_Passbook*.pdf", "passbook_*.pdf",
		"EPFO_*.xlsx", "epfo_*.xlsx", "EPFO_*.csv", "epfo_*.csv",
		"EPF_*.xlsx", "EPF_*.csv",
	}
}

func (e EPFO) Parse(path string) *wealthpulse.ParseOutcome {
	out := wealthpulse.NewParseOutcome(e.Name())

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		e.parsePDF(path, out)
	case strings.HasSuffix(lower, ".xlsx"):
		rows, err := readWorkbook(path)
		if err != nil {
			out.Errorf("cannot open %s: %v", path, err)
			return out
		}
		e.parseTabular(rows, out)
	case strings.HasSuffix(lower, ".csv"):
		rows, err := readCSV(path)
		if err != nil {
			out.Errorf("cannot open %s: %v", path, err)
			return out
		}
		e.parseTabular(rows, out)
	default:
		out.Errorf("unsupported EPFO file format: %s", path)
	}
	return out
}

func (e EPFO) parsePDF(path string, out *wealthpulse.ParseOutcome) {
	text, err := extractPDFText(path)
	if err != nil {
		out.Errorf("cannot read EPFO PDF %s: %v", path, err)
		return
	}
	e.parsePassbookText(text, out)
}

func (e EPFO) parsePassbookText(text string, out *wealthpulse.ParseOutcome) {
	if len(text) < 50 {
		out.Errorf("EPFO PDF appears empty or unreadable")
		return
	}

	entry := wealthpulse.EPFOEntry{}
	if m := uanRe.FindStringSubmatch(text); m != nil {
		entry.UAN = m[1]
	}
	for _, re := range memberIDRes {
		if m := re.FindStringSubmatch(text); m != nil {
			entry.MemberID = m[1]
			break
		}
	}
	if m := epfoEstRe.FindStringSubmatch(text); m != nil {
		entry.Establishment = strings.TrimSpace(m[1])
	}
	if m := closingRe.FindStringSubmatch(text); m != nil {
		entry.TotalBalance = wealthpulse.ParseAmount(m[1])
	}

	// Last match wins: the passbook is chronological and the final
	// occurrence of each share label carries the closing figure.
	shares := [3]float64{}
	for i, re := range shareRes {
		if all := re.FindAllStringSubmatch(text, -1); len(all) > 0 {
			shares[i] = wealthpulse.ParseAmount(all[len(all)-1][1])
		}
	}
	entry.EmployeeShare, entry.EmployerShare, entry.PensionShare = shares[0], shares[1], shares[2]

	// No labelled shares and no closing balance: fall back to the last
	// three-amount ledger row, floor-checked to reject header noise.
	if entry.EmployeeShare == 0 && entry.TotalBalance == 0 {
		if all := tripleRowRe.FindAllStringSubmatch(text, -1); len(all) > 0 {
			last := all[len(all)-1]
			ee := wealthpulse.ParseAmount(last[1])
			er := wealthpulse.ParseAmount(last[2])
			pension := wealthpulse.ParseAmount(last[3])
			if ee > 100 && er > 100 && pension > 100 {
				entry.EmployeeShare, entry.EmployerShare, entry.PensionShare = ee, er, pension
			}
		}
	}

	if entry.TotalBalance == 0 {
		entry.TotalBalance = entry.EmployeeShare + entry.EmployerShare + entry.PensionShare
	}
	if m := interestRe.FindStringSubmatch(text); m != nil {
		entry.InterestEarned = wealthpulse.ParseAmount(m[1])
	}
	if m := epfoDateRe.FindStringSubmatch(text); m != nil {
		entry.StatementDate = m[1]
	}

	if entry.TotalBalance <= 0 && entry.EmployeeShare <= 0 {
		out.Errorf("could not extract EPFO balance from PDF; download a fresh passbook from passbook.epfindia.gov.in")
		return
	}
	out.EPFOHoldings = append(out.EPFOHoldings, entry)
}

// parseTabular handles XLSX/CSV passbook exports: find the header row by
// hint density, map columns, and read the last non-empty data row as the
// most recent state.
func (e EPFO) parseTabular(rows [][]string, out *wealthpulse.ParseOutcome) {
	headerIdx := -1
	colMap := make(map[string]int)

	for i, row := range rows {
		lowered := make([]string, len(row))
		for j, c := range row {
			lowered[j] = strings.ToLower(strings.TrimSpace(c))
		}
		joined := strings.Join(lowered, " ")

		matches := 0
		for _, hints := range epfoColumnHints {
			for _, hint := range hints {
				if strings.Contains(joined, hint) {
					matches++
					break
				}
			}
		}
		if matches < 2 {
			continue
		}
		headerIdx = i
		for ci, cellText := range lowered {
			for _, key := range epfoHintOrder {
				if _, mapped := colMap[key]; mapped {
					continue
				}
				for _, hint := range epfoColumnHints[key] {
					if strings.Contains(cellText, hint) {
						colMap[key] = ci
						break
					}
				}
			}
		}
		break
	}

	if headerIdx < 0 {
		out.Errorf("cannot detect header row in EPFO file")
		return
	}

	var lastRow []string
	for _, row := range rows[headerIdx+1:] {
		if !blankRow(row) {
			lastRow = row
		}
	}
	if lastRow == nil {
		out.Errorf("no data rows found in EPFO file")
		return
	}

	get := func(key string) string {
		idx, ok := colMap[key]
		if !ok {
			return ""
		}
		return cell(lastRow, idx)
	}

	ee := wealthpulse.ParseAmount(get("employee_share"))
	er := wealthpulse.ParseAmount(get("employer_share"))
	pension := wealthpulse.ParseAmount(get("pension_share"))
	total := wealthpulse.ParseAmount(get("total_balance"))
	if total == 0 {
		total = ee + er + pension
	}

	if total <= 0 && ee <= 0 {
		out.Errorf("could not extract EPFO balance from file")
		return
	}
	out.EPFOHoldings = append(out.EPFOHoldings, wealthpulse.EPFOEntry{
		UAN:            get("uan"),
		MemberID:       get("member_id"),
		Establishment:  get("establishment"),
		EmployeeShare:  ee,
		EmployerShare:  er,
		PensionShare:   pension,
		TotalBalance:   total,
		InterestEarned: wealthpulse.ParseAmount(get("interest")),
		StatementDate:  get("date"),
	})
}
