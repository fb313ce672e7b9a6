// Package profile persists company profiles — name, export path,
// formatting options and rows — as a single JSON document.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cinteza-dev/cinteza/internal/export"
	"github.com/cinteza-dev/cinteza/internal/model"
	"github.com/cinteza-dev/cinteza/internal/store"
)

// Profile is one company: a record store plus its export destination
// and formatting options.
type Profile struct {
	Name    string
	Path    string
	Options export.Options
	Store   *store.Store
}

// New creates a named profile with an empty store.
func New(name string, opts export.Options) *Profile {
	return &Profile{Name: name, Options: opts, Store: store.New()}
}

// document mirrors the on-disk JSON shape: a list of profiles, each
// row a positional array of the 14 schema values.
type document struct {
	Name    string         `json:"name"`
	Path    string         `json:"path"`
	Options export.Options `json:"options"`
	Rows    [][]string     `json:"rows"`
}

// SaveAll writes all profiles to path as indented JSON. The file is
// replaced atomically via a sibling temp file and rename.
func SaveAll(path string, profiles []*Profile) error {
	docs := make([]document, len(profiles))
	for i, p := range profiles {
		rows := p.Store.Snapshot()
		doc := document{
			Name:    p.Name,
			Path:    p.Path,
			Options: p.Options,
			Rows:    make([][]string, len(rows)),
		}
		for j, rec := range rows {
			doc.Rows[j] = rec.Row()
		}
		docs[i] = doc
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling profiles: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing profiles: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// LoadAll reads a profiles JSON document. Rows are zero-padded or
// truncated to the canonical schema positionally.
func LoadAll(path string) ([]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	var docs []document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	profiles := make([]*Profile, len(docs))
	for i, doc := range docs {
		p := New(doc.Name, doc.Options)
		p.Path = doc.Path

		rows := make([]model.Record, len(doc.Rows))
		for j, row := range doc.Rows {
			rows[j] = model.RecordFromRow(row)
		}
		p.Store.Replace(rows)
		profiles[i] = p
	}
	return profiles, nil
}
