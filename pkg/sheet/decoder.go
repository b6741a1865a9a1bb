// Package sheet turns a binary spreadsheet into rows of header-keyed string
// values. Callers stay agnostic to the file format; everything about the
// workbook is hidden behind Decode.
package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by its column header.
type Row map[string]string

// Decode reads the first worksheet of an XLSX workbook. The first row is
// taken as the header row; every following non-empty row becomes a Row
// keyed by those headers. Cell values are raw (unformatted), so date cells
// arrive as their serial numbers.
func Decode(r io.Reader) ([]string, []Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		if isRowEmpty(raw) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(raw) {
				row[h] = strings.TrimSpace(raw[i])
			} else {
				row[h] = ""
			}
		}
		out = append(out, row)
	}
	return headers, out, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
