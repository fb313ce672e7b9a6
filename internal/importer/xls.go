package importer

import (
	"fmt"

	"github.com/shakinm/xlsReader/xls"
)

// XLSFormat reads legacy binary Excel workbooks, first sheet only.
type XLSFormat struct{}

// Extensions returns the file extensions handled by this format.
func (f *XLSFormat) Extensions() []string { return []string{".xls"} }

// Read returns all cells of the first sheet as raw text.
func (f *XLSFormat) Read(path string) ([][]string, error) {
	wb, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("reading first sheet: %w", err)
	}

	var cells [][]string
	for _, row := range sheet.GetRows() {
		var line []string
		for _, cell := range row.GetCols() {
			line = append(line, cell.GetString())
		}
		cells = append(cells, line)
	}
	return cells, nil
}
