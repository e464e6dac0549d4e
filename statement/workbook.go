package statement

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook loads one sheet of an XLSX file as a string grid. The
// first name in sheetPrefs that exists wins; otherwise the first sheet
// is used. Cells come back already formatted (formula results, not
// formulas), which matches how brokers expect their exports to be read.
func readWorkbook(path string, sheetPrefs ...string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	sheet := sheets[0]
	for _, pref := range sheetPrefs {
		for _, s := range sheets {
			if s == pref {
				sheet = s
				break
			}
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}
