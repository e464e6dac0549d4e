package statement

import "strings"

// headerScanLimit bounds how many leading rows are searched for a header;
// broker exports pad the top of the sheet with titles and disclaimers.
const headerScanLimit = 35

// findHeader scans the leading rows for one whose cells contain any of
// the synonyms (case-insensitive, trimmed). Returns the row index or -1.
func findHeader(rows [][]string, synonyms ...string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for r := 0; r < limit; r++ {
		for c, raw := range rows[r] {
			if c >= 20 {
				break
			}
			v := strings.ToLower(strings.TrimSpace(raw))
			for _, syn := range synonyms {
				if v == syn {
					return r
				}
			}
		}
	}
	return -1
}

// findHeaderContains is findHeader for exports whose header cell embeds
// the keyword in longer text (e.g. "Stock Name (as on ...)").
func findHeaderContains(rows [][]string, col int, keyword string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for r := 0; r < limit; r++ {
		if strings.Contains(strings.ToLower(cell(rows[r], col)), keyword) {
			return r
		}
	}
	return -1
}

// columnMap indexes a header row by lowercased trimmed cell text.
func columnMap(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, raw := range header {
		v := strings.ToLower(strings.TrimSpace(raw))
		if v == "" {
			continue
		}
		if _, dup := cols[v]; !dup {
			cols[v] = i
		}
	}
	return cols
}

// pickColumn resolves a semantic field against an ordered synonym list.
func pickColumn(cols map[string]int, candidates ...string) (int, bool) {
	for _, c := range candidates {
		if i, ok := cols[c]; ok {
			return i, true
		}
	}
	return -1, false
}

// cell returns the trimmed cell at index i, or "" past the row's end.
// Broker exports routinely truncate trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// blankRow reports whether every cell in the row is empty.
func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
