package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/application/auth"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

// run ejecuta invctl contra un archivo temporal con reloj fijo.
func run(t *testing.T, storePath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("STORE_PATH", storePath)
	t.Setenv("APP_ENV", "production")
	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeed_RequiereForceSiExiste(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "inventdb.json")

	out, err := run(t, path, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 6 products")

	_, err = run(t, path, "seed")
	assert.ErrorContains(t, err, "--force")

	_, err = run(t, path, "seed", "--force")
	assert.NoError(t, err)
}

func TestSeed_FixturesLatin1(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	yaml := "settings:\n  companyName: \"Almac\xe9n\"\n  currency: INR\n  lowStockThreshold: 10\n  criticalStockThreshold: 5\n  expiryDaysThreshold: 7\n"
	fixtures := filepath.Join(dir, "fixtures.yaml")
	require.NoError(t, os.WriteFile(fixtures, []byte(yaml), 0o644))

	path := filepath.Join(dir, "inventdb.json")
	out, err := run(t, path, "seed", "--fixtures", fixtures, "--charset", "iso-8859-1")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 0 products")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Almacén")
}

func TestSeed_HashPasswords(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "inventdb.json")

	_, err := run(t, path, "seed", "--hash-passwords")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"password":"admin123"`)

	doc, err := document.Decode(raw)
	require.NoError(t, err)
	require.NotEmpty(t, doc.Users)
	for _, u := range doc.Users {
		assert.True(t, auth.IsHashed(u.Password), u.Username)
	}
	assert.True(t, auth.PasswordMatches(doc.Users[0].Password, "admin123"))
}

func TestReportYExport(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "inventdb.json")

	out, err := run(t, path, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending orders")
	assert.Contains(t, out, "Replenishment:")
	assert.Contains(t, out, "Inventory value")

	out, err = run(t, path, "export-po", "1", "--format", "xml", "-o", dir)
	require.NoError(t, err)
	written := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "PO-10001.xml"), written)
	raw, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "PurchaseOrder")

	_, err = run(t, path, "export-po", "99", "--format", "xml", "-o", dir)
	assert.Error(t, err)

	_, err = run(t, path, "export-po", "1", "--format", "csv")
	assert.ErrorContains(t, err, "csv")
}
