package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func TestMatcher(t *testing.T) {
	cfg := aggregate.DefaultConfig()

	tx := func(amount, category, description string) *ledger.Transaction {
		return &ledger.Transaction{
			Date:        day(2024, 6, 21),
			Kind:        ledger.KindExpense,
			Category:    category,
			Description: description,
			Amount:      dec(amount),
		}
	}

	type testCase struct {
		name  string
		query string
		tx    *ledger.Transaction
		want  bool
	}

	tests := []testCase{
		{name: "CurrencyAmountMatches", query: "19zł", tx: tx("19.00", "Zakupy", "Lidl"), want: true},
		{name: "CurrencyAmountTruncates", query: "19 zł", tx: tx("19.99", "Zakupy", "Lidl"), want: true},
		{name: "CurrencySuppressesText", query: "19zł", tx: tx("119.00", "Zakupy", "paragon 19"), want: false},
		{name: "WithoutCurrencyTextStillMatches", query: "19", tx: tx("119.00", "Zakupy", "paragon 19"), want: true},
		{name: "FractionalWithinTolerance", query: "19.50", tx: tx("19.50", "Zakupy", ""), want: true},
		{name: "FractionalComma", query: "19,50", tx: tx("19.505", "Zakupy", ""), want: true},
		{name: "FractionalMiss", query: "19.99", tx: tx("20.00", "Zakupy", ""), want: false},
		{name: "Description", query: "BIEDRONKA", tx: tx("5", "Zakupy", "biedronka 1234"), want: true},
		{name: "Category", query: "zak", tx: tx("5", "Zakupy", ""), want: true},
		{name: "FormattedAmountText", query: "5.00", tx: tx("5", "Zakupy", ""), want: true},
		{name: "DottedDate", query: "21.06.2024", tx: tx("5", "Zakupy", ""), want: true},
		{name: "ShortDottedDate", query: "1.6.2024", tx: tx("5", "Zakupy", ""), want: false},
		{name: "PartialDate", query: "06-21", tx: tx("5", "Zakupy", ""), want: true},
		{name: "MonthName", query: "Czerwiec", tx: tx("5", "Zakupy", ""), want: true},
		{name: "MonthNameOtherMonth", query: "lipiec", tx: tx("5", "Zakupy", ""), want: false},
		{name: "NoMatch", query: "czynsz", tx: tx("5", "Zakupy", "Lidl"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := aggregate.NewMatcher(tt.query, cfg)
			assert.True(t, m.Active())
			assert.Equal(t, tt.want, m.Match(tt.tx))
		})
	}
}

func TestMatcher_Empty(t *testing.T) {
	m := aggregate.NewMatcher("   ", aggregate.DefaultConfig())
	assert.False(t, m.Active())
	assert.True(t, m.Match(&ledger.Transaction{}))
}
