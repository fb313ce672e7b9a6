package store

import (
	"github.com/shopspring/decimal"

	"github.com/cinteza-dev/cinteza/internal/amount"
	"github.com/cinteza-dev/cinteza/internal/model"
)

// Total is a derived running sum of the amount column. It subscribes
// to a Store and fully recomputes after every mutation; amounts that
// fail to parse are skipped silently.
type Total struct {
	st  *Store
	sum decimal.Decimal
}

// NewTotal creates a Total bound to st and computes the initial sum.
func NewTotal(st *Store) *Total {
	t := &Total{st: st}
	st.Subscribe(t.recompute)
	t.recompute()
	return t
}

func (t *Total) recompute() {
	sum := decimal.Zero
	for _, rec := range t.st.Snapshot() {
		d, err := amount.Parse(rec[model.FieldAmount])
		if err != nil {
			continue
		}
		sum = sum.Add(d)
	}
	t.sum = sum
}

// Value returns the current sum.
func (t *Total) Value() decimal.Decimal {
	return t.sum
}

// String renders the sum with comma decimal and dot thousands
// separators, the presentation used for the live total display.
func (t *Total) String() string {
	return amount.FormatGrouped(t.sum)
}
