package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXFormat reads modern Excel workbooks. Only the first sheet is
// imported, matching the source spreadsheets the tool receives.
type XLSXFormat struct{}

// Extensions returns the file extensions handled by this format.
func (f *XLSXFormat) Extensions() []string { return []string{".xlsx"} }

// Read returns all cells of the first sheet as raw text.
func (f *XLSXFormat) Read(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}
