// Package export serializes payment records to the bank upload CSV
// format: amounts in canonical dot-decimal notation, no embedded line
// breaks, optional header/BOM/CRLF, atomic file replacement.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cinteza-dev/cinteza/internal/amount"
	"github.com/cinteza-dev/cinteza/internal/model"
)

// Options are the per-profile CSV formatting toggles. JSON tags match
// the profile document format.
type Options struct {
	NoHeader bool `json:"no_header"`
	CRLF     bool `json:"crlf"`
	BOM      bool `json:"bom"`
}

// DefaultOptions mirrors the historical defaults: headerless CRLF
// output with a UTF-8 BOM, which is what the bank's importer expects.
func DefaultOptions() Options {
	return Options{NoHeader: true, CRLF: true, BOM: true}
}

// Warning flags an IBAN-shaped field that failed the advisory check.
// Row is 1-based to match what the operator sees on screen.
type Warning struct {
	Row   int
	Field string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Field)
}

// ibanShape is the advisory account check: Romanian prefix followed by
// at least two alphanumerics. Not a full IBAN checksum.
var ibanShape = regexp.MustCompile(`^(?i)RO[A-Z0-9]{2,}$`)

var ibanFields = [...]int{model.FieldPayerIBAN, model.FieldPayeeIBAN}

var newlineStripper = strings.NewReplacer("\r", " ", "\n", " ")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Prepare normalizes a copy of rows for CSV output: canonical amounts,
// embedded CR/LF replaced with spaces, fields trimmed. The input is
// never mutated.
func Prepare(rows []model.Record) []model.Record {
	out := make([]model.Record, len(rows))
	copy(out, rows)

	for i := range out {
		out[i][model.FieldAmount] = amount.Normalize(out[i][model.FieldAmount])
		for col := range out[i] {
			out[i][col] = strings.TrimSpace(newlineStripper.Replace(out[i][col]))
		}
	}
	return out
}

// Validate collects advisory warnings for payer/payee account fields
// that are non-empty but not IBAN-shaped. Warnings never block export.
func Validate(rows []model.Record) []Warning {
	var warnings []Warning
	for _, col := range ibanFields {
		for i, rec := range rows {
			v := strings.TrimSpace(rec[col])
			if v != "" && !ibanShape.MatchString(v) {
				warnings = append(warnings, Warning{Row: i + 1, Field: model.FieldName(col)})
			}
		}
	}
	return warnings
}

// Export writes rows to path as CSV under opts. The destination is
// replaced atomically: a sibling temp file is written first and moved
// into place with a single rename, so a failure mid-write leaves any
// existing file untouched. Returns advisory IBAN warnings.
func Export(path string, rows []model.Record, opts Options) ([]Warning, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("no destination path chosen")
	}

	prepared := Prepare(rows)
	warnings := Validate(prepared)

	tmp := path + ".tmp"
	if err := writeFile(tmp, prepared, opts); err != nil {
		os.Remove(tmp)
		return warnings, err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return warnings, fmt.Errorf("replacing %s: %w", path, err)
	}
	return warnings, nil
}

func writeFile(path string, rows []model.Record, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if opts.BOM {
		if _, err := f.Write(utf8BOM); err != nil {
			return fmt.Errorf("writing BOM: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	cw.UseCRLF = opts.CRLF

	if !opts.NoHeader {
		if err := cw.Write(model.FieldNames()); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, rec := range rows {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
