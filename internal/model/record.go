package model

// NumFields is the number of columns in the canonical payment schema.
const NumFields = 14

// Field indexes into a Record, in canonical column order.
const (
	FieldPONumber = iota
	FieldAmount
	FieldCurrency
	FieldPayerIBAN
	FieldPayeeName
	FieldPayeeAddress1
	FieldPayeeAddress2
	FieldPayeeCUI
	FieldPayeeIBAN
	FieldDetails1
	FieldDetails2
	FieldDetails3
	FieldProcessingDate
	FieldProcessingMethod
)

// fieldNames holds the canonical column headers expected by the bank
// upload format. Order must match the field index constants above.
var fieldNames = [NumFields]string{
	"PO_No.",
	"Amount",
	"CCY/RON",
	"Payer Account IBAN",
	"Payee Name",
	"Payee address 1",
	"Payee address 2",
	"Payee CUI",
	"Payee Account IBAN",
	"Details 1",
	"Details 2",
	"Details 3",
	"Processing date",
	"Processing Method",
}

var fieldIndex = func() map[string]int {
	m := make(map[string]int, NumFields)
	for i, name := range fieldNames {
		m[name] = i
	}
	return m
}()

// Record is one payment row. All fields are free-form text; numeric
// interpretation of the amount happens only at export/total time.
type Record [NumFields]string

// FieldNames returns the canonical column headers in order.
func FieldNames() []string {
	names := make([]string, NumFields)
	copy(names, fieldNames[:])
	return names
}

// FieldName returns the header for a field index.
func FieldName(i int) string {
	return fieldNames[i]
}

// FieldIndex returns the index for a canonical header name.
func FieldIndex(name string) (int, bool) {
	i, ok := fieldIndex[name]
	return i, ok
}

// RecordFromRow builds a Record from a positional row, zero-padding or
// truncating to the canonical field count.
func RecordFromRow(row []string) Record {
	var r Record
	for i := 0; i < NumFields && i < len(row); i++ {
		r[i] = row[i]
	}
	return r
}

// Row returns the record as a positional string slice.
func (r Record) Row() []string {
	row := make([]string, NumFields)
	copy(row, r[:])
	return row
}
