package ledgercsv_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/importer/ledgercsv"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func TestWriteThenParse(t *testing.T) {
	txs := []ledger.Transaction{
		{
			ID:                1,
			Date:              time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Kind:              ledger.KindExpense,
			Category:          "Jedzenie",
			Description:       "Zakupy, Biedronka",
			Amount:            decimal.RequireFromString("45.5"),
			Currency:          "PLN",
			ExcludeFromWeekly: true,
		},
		{
			ID:       2,
			Date:     time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			Kind:     ledger.KindSavings,
			Category: "Wakacje",
			Amount:   decimal.RequireFromString("-100"),
			Currency: "PLN",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ledgercsv.Write(&buf, txs))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "date,kind,category,description,amount,currency,exclude_from_weekly\n"))
	assert.Contains(t, out, `2024-06-03,expense,Jedzenie,"Zakupy, Biedronka",45.50,PLN,true`)

	params, err := ledgercsv.NewParser().Parse(&buf)
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, txs[0].Date, params[0].Date)
	assert.Equal(t, ledger.KindExpense, params[0].Kind)
	assert.Equal(t, "Zakupy, Biedronka", params[0].Description)
	assert.True(t, params[0].ExcludeFromWeekly)
	assert.True(t, decimal.RequireFromString("45.5").Equal(params[0].Amount))

	assert.Equal(t, ledger.KindSavings, params[1].Kind)
	assert.True(t, decimal.RequireFromString("-100").Equal(params[1].Amount))
}

func TestParse_Errors(t *testing.T) {
	type testCase struct {
		name string
		csv  string
	}

	header := "date,kind,category,description,amount,currency,exclude_from_weekly\n"

	tests := []testCase{
		{name: "Invalid Date", csv: header + "03.06.2024,expense,Jedzenie,x,1,PLN,false\n"},
		{name: "Invalid Kind", csv: header + "2024-06-03,gift,Jedzenie,x,1,PLN,false\n"},
		{name: "Invalid Amount", csv: header + "2024-06-03,expense,Jedzenie,x,abc,PLN,false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledgercsv.NewParser().Parse(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}
