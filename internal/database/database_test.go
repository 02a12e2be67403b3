package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/config"
)

func TestRebind(t *testing.T) {
	type testCase struct {
		name   string
		driver string
		query  string
		want   string
	}

	tests := []testCase{
		{
			name:   "SQLiteUntouched",
			driver: config.DriverSQLite,
			query:  "SELECT * FROM t WHERE a = ? AND b = ?",
			want:   "SELECT * FROM t WHERE a = ? AND b = ?",
		},
		{
			name:   "PostgresNumbered",
			driver: config.DriverPostgres,
			query:  "SELECT * FROM t WHERE a = ? AND b IN (?, ?)",
			want:   "SELECT * FROM t WHERE a = $1 AND b IN ($2, $3)",
		},
		{
			name:   "PostgresQuotedQuestionMark",
			driver: config.DriverPostgres,
			query:  "SELECT '?' FROM t WHERE a = ?",
			want:   "SELECT '?' FROM t WHERE a = $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rebind(tt.driver, tt.query))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?, ?, ?", Placeholders(3))
}

func TestMigrate_SQLiteSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "budzet.db")

	require.NoError(t, Migrate(config.DriverSQLite, path))
	// Second run is a no-op.
	require.NoError(t, Migrate(config.DriverSQLite, path))

	db, err := New(config.DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM categories").Scan(&n))
	assert.Equal(t, 9, n)

	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM shops").Scan(&n))
	assert.Equal(t, 8, n)

	var weekly string
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT value FROM app_config WHERE key = ?", "weekly_limit_config").Scan(&weekly))
	assert.Contains(t, weekly, `"enabled":false`)
}
