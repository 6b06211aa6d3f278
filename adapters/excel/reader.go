// Package excel converts uploaded XLSX workbooks into the line-oriented draw
// text the batch parser consumes.
package excel

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadDrawLines reads the first sheet of an XLSX stream and joins each row's
// cells into one comma-separated line, oldest draw first, matching the upload
// text format. Empty rows are dropped here; per-line validation stays with
// the draw parser.
func ReadDrawLines(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	var lines []string
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if trimmed := strings.TrimSpace(cell); trimmed != "" {
				cells = append(cells, trimmed)
			}
		}
		if len(cells) == 0 {
			continue
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	log.Printf("[ExcelReader] Read %d draw rows from sheet %s", len(lines), sheets[0])
	return strings.Join(lines, "\n"), nil
}
