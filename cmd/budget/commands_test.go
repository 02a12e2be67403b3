package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/config"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func setupEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_PATH", filepath.Join(dir, "budzet.db"))
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("LOG_LEVEL", "error")

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd, c := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := runCLI(cmd, c)

	return out.String(), err
}

func TestAddAndMonth(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "add", "income", "-d", "2024-06-01", "-c", "Mąż", "-m", "Pensja", "-a", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-01 income Mąż 5000.00")

	_, err = execute(t, "add", "expense", "-d", "2024-06-03", "-c", "Jedzenie", "-m", "Biedronka", "-a", "120,50")
	require.NoError(t, err)

	out, err = execute(t, "month", "-y", "2024", "-M", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "Czerwiec 2024")
	assert.Contains(t, out, "Jedzenie")
	assert.Contains(t, out, "Biedronka")
	assert.Contains(t, out, "4879.50")
}

func TestAdd_Errors(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown kind",
			args:    []string{"add", "transfer", "-a", "5"},
			wantErr: ledger.ErrInvalidKind,
		},
		{
			name:    "bad amount",
			args:    []string{"add", "expense", "-a", "abc"},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "bad date",
			args:    []string{"add", "expense", "-d", "03.06.2024", "-a", "5"},
			wantMsg: "want YYYY-MM-DD",
		},
		{
			name:    "missing amount",
			args:    []string{"add", "expense"},
			wantMsg: `"amount" not set`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLockBlocksWrites(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "lock", "2024-05")
	require.NoError(t, err)
	assert.Contains(t, out, "locked months: 2024-05")

	_, err = execute(t, "add", "expense", "-d", "2024-05-10", "-c", "Jedzenie", "-a", "10")
	assert.ErrorIs(t, err, ledger.ErrMonthLocked)

	_, err = execute(t, "unlock", "2024-05")
	require.NoError(t, err)

	_, err = execute(t, "add", "expense", "-d", "2024-05-10", "-c", "Jedzenie", "-a", "10")
	assert.NoError(t, err)

	_, err = execute(t, "lock", "May")
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	dir := setupEnv(t)

	_, err := execute(t, "add", "expense", "-d", "2024-06-03", "-c", "Jedzenie", "-a", "12")
	require.NoError(t, err)

	path := filepath.Join(dir, "czerwiec.pdf")

	out, err := execute(t, "report", "-y", "2024", "-M", "6", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = execute(t, "report", "-y", "2024", "-M", "13")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	dir := setupEnv(t)

	path := filepath.Join(dir, "wyciag.csv")
	csv := "Data;Opis;Kwota\n2024-06-03;Biedronka;-45,20\n2024-06-05;Pensja;5000,00\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	out, err := execute(t, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 transactions")

	out, err = execute(t, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 duplicate rows")
	assert.Contains(t, out, "duplicate: 2024-06-03 Biedronka")

	out, err = execute(t, "import", "--force", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 0 transactions, skipped 2 duplicates")
}

func TestToken(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SECRET")

	t.Setenv("AUTH_SECRET", "sekret")

	out, err := execute(t, "token", "-s", "tester", "--ttl", "1h")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out), "."))
}

func TestVersion(t *testing.T) {
	setupEnv(t)
	t.Setenv("APP_VERSION", "1.2.3")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Budżet Domowy 1.2.3\n", out)
}

func TestFailingCommandClosesDatabase(t *testing.T) {
	dir := setupEnv(t)

	cmd, c := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", filepath.Join(dir, "missing.csv")})

	err := runCLI(cmd, c)
	require.Error(t, err)

	assert.FileExists(t, filepath.Join(dir, "budzet.db"))
	assert.Nil(t, c.app)
}
