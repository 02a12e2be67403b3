package app_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/app"
	"github.com/MrJamesThe3rd/budzet/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "data", "budzet.db"))

	cfg, err := config.Load()
	require.NoError(t, err)

	return cfg
}

func TestOpen_MonthRoundTrip(t *testing.T) {
	ctx := context.Background()

	a, err := app.Open(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	june := func(d int) time.Time { return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC) }

	_, err = a.Ledger.AddIncome(ctx, june(1), "Mąż", "Pensja", decimal.NewFromInt(5000))
	require.NoError(t, err)

	_, err = a.Ledger.AddExpense(ctx, june(3), "Jedzenie", "Biedronka", decimal.RequireFromString("120.50"), false)
	require.NoError(t, err)

	_, err = a.Ledger.AddSavings(ctx, june(5), a.Config.Ledger.CashSavingsLabel, "", decimal.NewFromInt(300), false)
	require.NoError(t, err)

	view, err := a.Aggregator.Month(ctx, aggregate.MonthRequest{Year: 2024, Month: time.June})
	require.NoError(t, err)

	assert.Equal(t, "Czerwiec", view.Name)
	assert.True(t, decimal.RequireFromString("4579.50").Equal(view.ClosingBalance), view.ClosingBalance.String())
	assert.True(t, decimal.NewFromInt(300).Equal(view.TotalCashSavings))
	assert.Len(t, view.Rows, 3)
}

func TestOpen_ImportUsesLearnedCategory(t *testing.T) {
	ctx := context.Background()

	a, err := app.Open(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	require.NoError(t, a.Matching.Learn(ctx, "orlen", "Samochód"))

	params, err := a.Importer.Import(ctx, "bank", strings.NewReader("Data;Opis;Kwota\n03.06.2024;ORLEN 12;-210,00\n04.06.2024;Przelew;100,00\n"))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "Samochód", params[0].Category)
	assert.Equal(t, a.Config.Ledger.DefaultPerson, params[1].Category)
}
