package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
)

// CSVFormat reads comma-delimited text files.
type CSVFormat struct{}

// Extensions returns the file extensions handled by this format.
func (f *CSVFormat) Extensions() []string { return []string{".csv"} }

// Read returns all cells of a CSV file as raw text. The reader is
// lenient: rows may have varying field counts and loose quoting.
func (f *CSVFormat) Read(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV: %w", err)
	}
	defer file.Close()

	cr := csv.NewReader(bufio.NewReader(file))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	cells, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return cells, nil
}
