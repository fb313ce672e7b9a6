// Package amount converts between the locale-formatted decimal text
// used for data entry (comma decimal separator, optional dot thousands
// separator) and the canonical dot-decimal form written to CSV.
package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var spaceStripper = strings.NewReplacer(" ", "", " ", "")

// Normalize converts locale-formatted decimal text to canonical
// dot-decimal notation: "1.234,56" -> "1234.56", "10,5" -> "10.5".
// Input that contains no comma is assumed to be canonical already, so
// Normalize is idempotent. Empty input stays empty.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = spaceStripper.Replace(s)
	if !strings.Contains(s, ",") {
		return s
	}
	// Dots are thousands separators only when a comma decimal is present.
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", ".")
}

// Parse normalizes s and parses it as an exact decimal.
func Parse(s string) (decimal.Decimal, error) {
	n := Normalize(s)
	if n == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(n)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// FormatGrouped renders d with two decimals, comma as decimal
// separator and dot as thousands separator: 1234567.8 -> "1.234.567,80".
func FormatGrouped(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
