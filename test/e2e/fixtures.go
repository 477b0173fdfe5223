// Package e2e provides end-to-end tests; this file builds minimal files for supported upload types.
package e2e

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// MinimalXlsx builds a one-sheet workbook with each cell text in its own row.
func MinimalXlsx(cells ...string) ([]byte, error) {
	f := excelize.NewFile()
	for i, text := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Sheet1", cell, text); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
