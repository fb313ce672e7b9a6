// Package store holds the ordered, mutable record sequence for one
// company profile and notifies subscribers after every mutation.
package store

import (
	"strconv"

	"github.com/cinteza-dev/cinteza/internal/model"
)

// Store is an ordered sequence of payment records. It is not safe for
// concurrent use; all access happens from the driving command.
type Store struct {
	rows []model.Record
	subs []func()
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Subscribe registers fn to be called synchronously after every
// mutating operation.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// Size returns the number of records.
func (s *Store) Size() int {
	return len(s.rows)
}

// At returns the record at pos.
func (s *Store) At(pos int) (model.Record, bool) {
	if pos < 0 || pos >= len(s.rows) {
		return model.Record{}, false
	}
	return s.rows[pos], true
}

// Field returns one field of one record by canonical header name.
func (s *Store) Field(pos int, name string) (string, bool) {
	col, ok := model.FieldIndex(name)
	if !ok || pos < 0 || pos >= len(s.rows) {
		return "", false
	}
	return s.rows[pos][col], true
}

// Insert adds count blank records at pos (0 <= pos <= size), shifting
// later records down. A single inserted record gets its PO number
// pre-filled as a best-effort convenience: the predecessor's value
// plus one when that value is a pure integer, otherwise pos+1 (or "1"
// at the top). Returns false without mutating on an invalid position.
func (s *Store) Insert(pos, count int) bool {
	if pos < 0 || pos > len(s.rows) || count < 1 {
		return false
	}

	blanks := make([]model.Record, count)
	s.rows = append(s.rows[:pos], append(blanks, s.rows[pos:]...)...)

	if count == 1 {
		s.rows[pos][model.FieldPONumber] = s.nextPONumber(pos)
	}

	s.notify()
	return true
}

// nextPONumber picks the auto-filled PO value for a freshly inserted
// row. Never fails; unparsable predecessors fall back to pos+1.
func (s *Store) nextPONumber(pos int) string {
	if pos == 0 {
		return "1"
	}
	prev := s.rows[pos-1][model.FieldPONumber]
	if isDigits(prev) {
		if n, err := strconv.Atoi(prev); err == nil {
			return strconv.Itoa(n + 1)
		}
	}
	return strconv.Itoa(pos + 1)
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Delete removes count records starting at pos. Out-of-range positions
// are a no-op returning false; count is clamped to the tail.
func (s *Store) Delete(pos, count int) bool {
	if pos < 0 || pos >= len(s.rows) || count < 1 {
		return false
	}
	end := pos + count
	if end > len(s.rows) {
		end = len(s.rows)
	}
	s.rows = append(s.rows[:pos], s.rows[end:]...)
	s.notify()
	return true
}

// SetField overwrites one field of one record, addressed by canonical
// header name. Returns false for an unknown field or position.
func (s *Store) SetField(pos int, name, value string) bool {
	col, ok := model.FieldIndex(name)
	if !ok || pos < 0 || pos >= len(s.rows) {
		return false
	}
	s.rows[pos][col] = value
	s.notify()
	return true
}

// Snapshot returns a deep copy of all records, in order.
func (s *Store) Snapshot() []model.Record {
	out := make([]model.Record, len(s.rows))
	copy(out, s.rows)
	return out
}

// Replace swaps in a new record sequence (used by import and profile
// load) and notifies subscribers once.
func (s *Store) Replace(rows []model.Record) {
	s.rows = make([]model.Record, len(rows))
	copy(s.rows, rows)
	s.notify()
}
