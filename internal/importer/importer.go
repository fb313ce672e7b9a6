// Package importer loads payment rows from external spreadsheet or
// delimited files and coerces them to the canonical schema.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cinteza-dev/cinteza/internal/model"
)

// Format reads all cells of a tabular file as raw text.
type Format interface {
	Read(path string) ([][]string, error)
	Extensions() []string
}

// Registry holds formats keyed by file extension.
type Registry struct {
	byExt map[string]Format
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Format)}
}

// Register adds a format. Panics on a duplicate extension.
func (r *Registry) Register(f Format) {
	for _, ext := range f.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.byExt[key]; ok {
			panic("duplicate importer extension: " + key)
		}
		r.byExt[key] = f
	}
}

// Get returns the format for an extension (with leading dot), or nil.
func (r *Registry) Get(ext string) Format {
	return r.byExt[strings.ToLower(ext)]
}

// DefaultRegistry returns a registry with all built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVFormat{})
	r.Register(&XLSXFormat{})
	r.Register(&XLSFormat{})
	return r
}

// Load reads path with the format matching its extension and
// reconciles the result to the canonical schema.
func (r *Registry) Load(path string) ([]model.Record, error) {
	ext := filepath.Ext(path)
	f := r.Get(ext)
	if f == nil {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}

	cells, err := f.Read(path)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", filepath.Base(path), err)
	}
	return Reconcile(cells), nil
}

// Load reads a file using the built-in formats.
func Load(path string) ([]model.Record, error) {
	return DefaultRegistry().Load(path)
}

// Reconcile coerces raw cell rows to the canonical schema. When the
// first row names at least one canonical column it is treated as a
// header: named columns are mapped, extras dropped, missing fields
// synthesized empty. Otherwise every row is data and columns map
// positionally. Result order is always canonical.
func Reconcile(cells [][]string) []model.Record {
	if len(cells) == 0 {
		return nil
	}

	mapping, hasHeader := headerMapping(cells[0])
	data := cells
	if hasHeader {
		data = cells[1:]
	}

	records := make([]model.Record, 0, len(data))
	for _, row := range data {
		if !hasHeader {
			records = append(records, model.RecordFromRow(row))
			continue
		}
		var rec model.Record
		for src, field := range mapping {
			if src < len(row) {
				rec[field] = row[src]
			}
		}
		records = append(records, rec)
	}
	return records
}

// headerMapping maps source column index to canonical field index for
// every first-row cell that names a canonical column. Reports whether
// the row qualifies as a header at all. The first cell may carry a
// UTF-8 BOM (our own exports emit one), which must not hide it.
func headerMapping(first []string) (map[int]int, bool) {
	mapping := make(map[int]int)
	for src, cell := range first {
		if src == 0 {
			cell = strings.TrimPrefix(cell, "\uFEFF")
		}
		if field, ok := model.FieldIndex(strings.TrimSpace(cell)); ok {
			mapping[src] = field
		}
	}
	return mapping, len(mapping) > 0
}
