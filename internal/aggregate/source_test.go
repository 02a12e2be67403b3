package aggregate_test

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// memSource is an in-memory Source following the store's semantics.
type memSource struct {
	txs     []*ledger.Transaction
	limits  map[time.Time]ledger.WeeklyLimit
	enabled bool
	cash    string
}

func newSource() *memSource {
	return &memSource{limits: map[time.Time]ledger.WeeklyLimit{}, cash: "Oszczędności gotówka"}
}

func (m *memSource) add(date time.Time, kind ledger.Kind, category, description, amount string) *ledger.Transaction {
	tx := &ledger.Transaction{
		ID:          int64(len(m.txs) + 1),
		Date:        date,
		Kind:        kind,
		Category:    category,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
	m.txs = append(m.txs, tx)

	return tx
}

func (m *memSource) limit(monday time.Time, amount string, categories []string) {
	m.limits[monday] = ledger.WeeklyLimit{Monday: monday, Amount: decimal.RequireFromString(amount), Categories: categories}
}

func (m *memSource) AllTransactions(context.Context) ([]*ledger.Transaction, error) {
	out := slices.Clone(m.txs)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}

		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (m *memSource) ExpensesInRange(_ context.Context, start, end time.Time, allowed []string) ([]ledger.CategoryAmount, error) {
	if allowed != nil && len(allowed) == 0 {
		return nil, nil
	}

	var out []ledger.CategoryAmount

	for _, tx := range m.txs {
		if tx.Kind != ledger.KindExpense || tx.ExcludeFromWeekly || tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}

		if allowed != nil && !slices.Contains(allowed, tx.Category) {
			continue
		}

		i := slices.IndexFunc(out, func(c ledger.CategoryAmount) bool { return c.Category == tx.Category })
		if i < 0 {
			out = append(out, ledger.CategoryAmount{Category: tx.Category, Amount: tx.Amount})
			continue
		}

		out[i].Amount = out[i].Amount.Add(tx.Amount)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })

	return out, nil
}

func (m *memSource) NetBalanceBefore(_ context.Context, date time.Time) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, tx := range m.txs {
		if !tx.Date.Before(date) {
			continue
		}

		if tx.Kind == ledger.KindIncome {
			total = total.Add(tx.Amount)
		} else {
			total = total.Sub(tx.Amount)
		}
	}

	return total, nil
}

func (m *memSource) WeeklyLimitForWeek(_ context.Context, monday time.Time) (ledger.WeeklyLimit, bool, error) {
	l, ok := m.limits[monday]
	return l, ok, nil
}

func (m *memSource) IsWeeklySystemEnabled(context.Context) (bool, error) {
	return m.enabled, nil
}

func (m *memSource) TotalCashSavings(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, tx := range m.txs {
		if tx.Kind == ledger.KindSavings && tx.Category == m.cash {
			total = total.Add(tx.Amount)
		}
	}

	return total, nil
}
