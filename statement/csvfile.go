package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

// readCSV loads a delimited file as a string grid. Rows may have ragged
// lengths, and a UTF-8 BOM (common in exports aimed at Excel) is
// tolerated.
func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV %s: %w", path, err)
	}
	return rows, nil
}
