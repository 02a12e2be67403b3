package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/database"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

const insertTransaction = `
	INSERT INTO transactions (date, kind, category, description, amount, currency, exclude_from_weekly)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	RETURNING id
`

func insertArgs(p ledger.CreateParams, currency string) []any {
	return []any{
		p.Date.Format(ledger.DateLayout),
		string(p.Kind),
		p.Category,
		p.Description,
		p.Amount.String(),
		currency,
		p.ExcludeFromWeekly,
	}
}

func (s *Store) AddTransaction(ctx context.Context, params ledger.CreateParams) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, insertTransaction, insertArgs(params, s.labels.Currency)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("creating transaction: %w", err)
	}

	return id, nil
}

// UpdateTransaction reports whether a row with id existed.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, params ledger.UpdateParams) (bool, error) {
	query := `
		UPDATE transactions
		SET date = ?, category = ?, description = ?, amount = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		params.Date.Format(ledger.DateLayout),
		params.Category,
		params.Description,
		params.Amount.String(),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("updating transaction: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating transaction: %w", err)
	}

	return n > 0, nil
}

func (s *Store) DeleteTransactions(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `DELETE FROM transactions WHERE id IN (` + database.Placeholders(len(ids)) + `)`
	if _, err := dbTx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting transactions: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = ?`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

// AllTransactions returns every transaction, newest date first and, within a
// day, the most recently created first.
func (s *Store) AllTransactions(ctx context.Context) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions ORDER BY date DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(ctx, rows)
}

// TransactionsBetween returns transactions dated within [start, end] in
// chronological order.
func (s *Store) TransactionsBetween(ctx context.Context, start, end time.Time) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, start.Format(ledger.DateLayout), end.Format(ledger.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(ctx, rows)
}

// ExpensesInRange sums weekly-counted expenses per category within [start, end].
// A nil allowed list means any category; an empty one matches nothing.
func (s *Store) ExpensesInRange(ctx context.Context, start, end time.Time, allowed []string) ([]ledger.CategoryAmount, error) {
	if allowed != nil && len(allowed) == 0 {
		return []ledger.CategoryAmount{}, nil
	}

	query := `
		SELECT category, CAST(amount AS TEXT)
		FROM transactions
		WHERE kind = ? AND exclude_from_weekly = ? AND date >= ? AND date <= ?`

	args := []any{string(ledger.KindExpense), false, start.Format(ledger.DateLayout), end.Format(ledger.DateLayout)}

	if allowed != nil {
		query += ` AND category IN (` + database.Placeholders(len(allowed)) + `)`
		for _, c := range allowed {
			args = append(args, c)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summing expenses: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)

	for rows.Next() {
		var category, raw string
		if err := rows.Scan(&category, &raw); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		amount, ok := parseAmount(ctx, raw, "expenses in range")
		if !ok {
			continue
		}

		sums[category] = sums[category].Add(amount)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}

	result := make([]ledger.CategoryAmount, 0, len(sums))
	for category, amount := range sums {
		result = append(result, ledger.CategoryAmount{Category: category, Amount: amount})
	}

	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Amount.Cmp(result[j].Amount); c != 0 {
			return c > 0
		}

		return result[i].Category < result[j].Category
	})

	return result, nil
}

// NetBalanceBefore is the signed total of everything dated strictly before
// date: income adds, every other kind subtracts its stored amount.
func (s *Store) NetBalanceBefore(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	query := `SELECT kind, CAST(amount AS TEXT) FROM transactions WHERE date < ?`

	rows, err := s.db.QueryContext(ctx, query, date.Format(ledger.DateLayout))
	if err != nil {
		return decimal.Zero, fmt.Errorf("computing balance: %w", err)
	}
	defer rows.Close()

	balance := decimal.Zero

	for rows.Next() {
		var kind, raw string
		if err := rows.Scan(&kind, &raw); err != nil {
			return decimal.Zero, fmt.Errorf("scanning balance row: %w", err)
		}

		amount, ok := parseAmount(ctx, raw, "net balance")
		if !ok {
			continue
		}

		if ledger.Kind(kind) == ledger.KindIncome {
			balance = balance.Add(amount)
		} else {
			balance = balance.Sub(amount)
		}
	}

	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("iterating balance rows: %w", err)
	}

	return balance, nil
}

// TotalCashSavings sums every savings row booked against the cash-savings label.
func (s *Store) TotalCashSavings(ctx context.Context) (decimal.Decimal, error) {
	sums, err := s.sumByCategory(ctx, s.db, ledger.KindSavings)
	if err != nil {
		return decimal.Zero, err
	}

	return sums[s.labels.CashSavings], nil
}

// sumByCategory totals the amounts of one kind per category.
func (s *Store) sumByCategory(ctx context.Context, q querier, kind ledger.Kind) (map[string]decimal.Decimal, error) {
	rows, err := q.QueryContext(ctx, `SELECT category, CAST(amount AS TEXT) FROM transactions WHERE kind = ?`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("summing %s: %w", kind, err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)

	for rows.Next() {
		var category, raw string
		if err := rows.Scan(&category, &raw); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", kind, err)
		}

		amount, ok := parseAmount(ctx, raw, string(kind))
		if !ok {
			continue
		}

		sums[category] = sums[category].Add(amount)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", kind, err)
	}

	return sums, nil
}
