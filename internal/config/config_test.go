package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "budzet.db", cfg.ConnectionString())
	assert.Equal(t, "0.9.5", cfg.App.Version)
	assert.Equal(t, "Oszczędności gotówka", cfg.Ledger.CashSavingsLabel)
	assert.Equal(t, "Inne", cfg.Ledger.FallbackCategory)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "ledger")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:secret@db:5432/ledger?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfig_LogLevel(t *testing.T) {
	type testCase struct {
		name  string
		level string
		want  slog.Level
	}

	tests := []testCase{
		{name: "Debug", level: "debug", want: slog.LevelDebug},
		{name: "WarnAlias", level: "WARNING", want: slog.LevelWarn},
		{name: "Error", level: "error", want: slog.LevelError},
		{name: "Unknown", level: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config.Config
			cfg.Log.Level = tt.level

			assert.Equal(t, tt.want, cfg.LogLevel())
		})
	}
}
