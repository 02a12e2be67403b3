package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/database"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

var _ ledger.Repository = (*Store)(nil)

type Store struct {
	db     *database.DB
	labels ledger.Labels
}

func New(db *database.DB, labels ledger.Labels) *Store {
	return &Store{db: db, labels: labels}
}

// querier is satisfied by both *database.DB and *database.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, date, kind, category, description, CAST(amount AS TEXT), currency, exclude_from_weekly
`

// scanTransaction reads a transaction row. Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var (
		tx              ledger.Transaction
		date, kind, amt string
	)

	if err := s.Scan(
		&tx.ID, &date, &kind, &tx.Category, &tx.Description, &amt, &tx.Currency, &tx.ExcludeFromWeekly,
	); err != nil {
		return nil, err
	}

	var err error

	tx.Date, err = ledger.ParseDate(date)
	if err != nil {
		return nil, &malformedRowError{id: tx.ID, err: err}
	}

	tx.Amount, err = decimal.NewFromString(amt)
	if err != nil {
		return nil, &malformedRowError{id: tx.ID, err: err}
	}

	tx.Kind = ledger.Kind(kind)

	return &tx, nil
}

// malformedRowError marks a row whose stored date or amount cannot be parsed.
type malformedRowError struct {
	id  int64
	err error
}

func (e *malformedRowError) Error() string {
	return fmt.Sprintf("malformed transaction %d: %v", e.id, e.err)
}

func (e *malformedRowError) Unwrap() error { return e.err }

// collectTransactions drains rows, skipping malformed ones with a warning.
func collectTransactions(ctx context.Context, rows *sql.Rows) ([]*ledger.Transaction, error) {
	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			var malformed *malformedRowError
			if errors.As(err, &malformed) {
				slog.WarnContext(ctx, "skipping malformed transaction", "id", malformed.id, "error", malformed.err)
				continue
			}

			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

// parseAmount parses a CAST(... AS TEXT) amount, reporting whether it was valid.
func parseAmount(ctx context.Context, raw, what string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		slog.WarnContext(ctx, "skipping malformed amount", "source", what, "value", raw)
		return decimal.Zero, false
	}

	return d, true
}
