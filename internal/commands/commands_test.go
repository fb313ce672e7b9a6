package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinteza-dev/cinteza/internal/profile"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestProfileAddRemove(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")

	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))

	profiles, err := profile.LoadAll(ws)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Firma", profiles[0].Name)

	// Default options come from the built-in config.
	assert.True(t, profiles[0].Options.NoHeader)
	assert.True(t, profiles[0].Options.CRLF)
	assert.True(t, profiles[0].Options.BOM)

	require.NoError(t, run(t, "-f", ws, "profile", "remove", "Firma"))
	profiles, err = profile.LoadAll(ws)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileAddDefaultName(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")

	require.NoError(t, run(t, "-f", ws, "profile", "add"))
	require.NoError(t, run(t, "-f", ws, "profile", "add"))

	profiles, err := profile.LoadAll(ws)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Company 1", profiles[0].Name)
	assert.Equal(t, "Company 2", profiles[1].Name)
}

func TestRowLifecycle(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))

	require.NoError(t, run(t, "-f", ws, "row", "add", "-p", "Firma"))
	require.NoError(t, run(t, "-f", ws, "row", "set", "-p", "Firma", "1", "Amount", "10,50"))
	require.NoError(t, run(t, "-f", ws, "row", "add", "-p", "Firma"))

	profiles, err := profile.LoadAll(ws)
	require.NoError(t, err)
	st := profiles[0].Store
	require.Equal(t, 2, st.Size())

	amt, _ := st.Field(0, "Amount")
	assert.Equal(t, "10,50", amt)
	po, _ := st.Field(0, "PO_No.")
	assert.Equal(t, "1", po)
	po, _ = st.Field(1, "PO_No.")
	assert.Equal(t, "2", po)

	require.NoError(t, run(t, "-f", ws, "row", "delete", "-p", "Firma", "1"))
	profiles, err = profile.LoadAll(ws)
	require.NoError(t, err)
	assert.Equal(t, 1, profiles[0].Store.Size())
}

func TestRowDeleteOutOfRangeIsNoOp(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))

	require.NoError(t, run(t, "-f", ws, "row", "delete", "-p", "Firma", "7"))
}

func TestRowSetErrors(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))
	require.NoError(t, run(t, "-f", ws, "row", "add", "-p", "Firma"))

	err := run(t, "-f", ws, "row", "set", "-p", "Firma", "1", "Details 4", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")

	err = run(t, "-f", ws, "row", "set", "-p", "Firma", "9", "Amount", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestImportExportFlow(t *testing.T) {
	dir := t.TempDir()
	ws := filepath.Join(dir, "profiles.json")
	input := filepath.Join(dir, "input.csv")
	output := filepath.Join(dir, "out.csv")

	csv := "PO_No.,Amount,Payer Account IBAN\n1,\"1.000,00\",RO49AAAA1234567890123456\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))
	require.NoError(t, run(t, "-f", ws, "import", "-p", "Firma", input))
	require.NoError(t, run(t, "-f", ws, "export", "-p", "Firma", "-o", output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1000.00")

	// --output is remembered on the profile.
	profiles, err := profile.LoadAll(ws)
	require.NoError(t, err)
	assert.Equal(t, output, profiles[0].Path)
}

func TestImportFailureKeepsRows(t *testing.T) {
	dir := t.TempDir()
	ws := filepath.Join(dir, "profiles.json")
	bad := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0o644))

	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))
	require.NoError(t, run(t, "-f", ws, "row", "add", "-p", "Firma"))
	require.NoError(t, run(t, "-f", ws, "row", "set", "-p", "Firma", "1", "Payee Name", "ACME SRL"))

	require.Error(t, run(t, "-f", ws, "import", "-p", "Firma", bad))

	// A failed import leaves the profile's rows untouched.
	profiles, err := profile.LoadAll(ws)
	require.NoError(t, err)
	require.Equal(t, 1, profiles[0].Store.Size())
	name, _ := profiles[0].Store.Field(0, "Payee Name")
	assert.Equal(t, "ACME SRL", name)
}

func TestRowAddInvalidCount(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))

	err := run(t, "-f", ws, "row", "add", "-p", "Firma", "--count", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count")

	profiles, err := profile.LoadAll(ws)
	require.NoError(t, err)
	assert.Equal(t, 0, profiles[0].Store.Size())
}

func TestProfileRename(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Other"))

	require.NoError(t, run(t, "-f", ws, "profile", "set", "Firma", "--name", "Firma Noua"))

	profiles, err := profile.LoadAll(ws)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Firma Noua", profiles[0].Name)

	// Renaming onto an existing profile is rejected.
	err = run(t, "-f", ws, "profile", "set", "Other", "--name", "Firma Noua")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestExportWithoutPath(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))

	err := run(t, "-f", ws, "export", "-p", "Firma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no destination path")
}

func TestUnknownProfile(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")

	err := run(t, "-f", ws, "total", "-p", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
}

func TestTotal(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, run(t, "-f", ws, "profile", "add", "Firma"))
	require.NoError(t, run(t, "-f", ws, "row", "add", "-p", "Firma"))
	require.NoError(t, run(t, "-f", ws, "row", "set", "-p", "Firma", "1", "Amount", "10,00"))

	require.NoError(t, run(t, "-f", ws, "total", "-p", "Firma"))
}
