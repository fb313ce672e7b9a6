package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestTotalSkipsUnparsable(t *testing.T) {
	s := New()
	total := NewTotal(s)

	amounts := []string{"10,00", "abc", "5,50"}
	for i, a := range amounts {
		s.Insert(i, 1)
		s.SetField(i, "Amount", a)
	}

	assert.True(t, total.Value().Equal(dec("15.50")), "got %s", total.Value())
	assert.Equal(t, "15,50", total.String())
}

func TestTotalTracksMutations(t *testing.T) {
	s := New()
	total := NewTotal(s)
	assert.True(t, total.Value().IsZero())

	s.Insert(0, 1)
	s.SetField(0, "Amount", "1.234,56")
	assert.True(t, total.Value().Equal(dec("1234.56")), "got %s", total.Value())

	s.Insert(1, 1)
	s.SetField(1, "Amount", "0,44")
	assert.Equal(t, "1.235,00", total.String())

	require.True(t, s.Delete(0, 1))
	assert.True(t, total.Value().Equal(dec("0.44")), "got %s", total.Value())
}

func TestTotalInitialCompute(t *testing.T) {
	s := New()
	s.Insert(0, 1)
	s.SetField(0, "Amount", "7")

	// Rows added before the Total subscribed are still counted.
	total := NewTotal(s)
	assert.True(t, total.Value().Equal(dec("7")), "got %s", total.Value())
}
