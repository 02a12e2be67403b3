package store

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/MrJamesThe3rd/budzet/internal/config"
	"github.com/MrJamesThe3rd/budzet/internal/database"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// importLockKey is the Postgres advisory lock serialising concurrent imports.
func importLockKey() int64 {
	h := fnv.New64a()
	h.Write([]byte("budzet:import"))

	return int64(h.Sum64())
}

type importTx struct {
	tx       *database.Tx
	currency string
}

func (s *Store) BeginImport(ctx context.Context) (ledger.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	// SQLite already serialises writers on its single connection.
	if dbTx.Driver() == config.DriverPostgres {
		if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(?)", importLockKey()); err != nil {
			dbTx.Rollback()
			return nil, fmt.Errorf("acquiring import lock: %w", err)
		}
	}

	return &importTx{tx: dbTx, currency: s.labels.Currency}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

type lookupKey struct {
	Date        string
	Kind        ledger.Kind
	Amount      string
	Description string
}

// FindDuplicates returns stored transactions that share date, kind, amount
// and description with any of params.
func (itx *importTx) FindDuplicates(ctx context.Context, params []ledger.CreateParams) ([]*ledger.Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	minDate := params[0].Date
	maxDate := params[0].Date
	keySet := make(map[lookupKey]struct{}, len(params))

	for _, p := range params {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}

		keySet[lookupKey{
			Date:        p.Date.Format(ledger.DateLayout),
			Kind:        p.Kind,
			Amount:      p.Amount.StringFixed(2),
			Description: p.Description,
		}] = struct{}{}
	}

	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC`

	rows, err := itx.tx.QueryContext(ctx, query, minDate.Format(ledger.DateLayout), maxDate.Format(ledger.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer rows.Close()

	candidates, err := collectTransactions(ctx, rows)
	if err != nil {
		return nil, err
	}

	var duplicates []*ledger.Transaction

	for _, tx := range candidates {
		k := lookupKey{
			Date:        tx.Date.Format(ledger.DateLayout),
			Kind:        tx.Kind,
			Amount:      tx.Amount.StringFixed(2),
			Description: tx.Description,
		}

		if _, found := keySet[k]; found {
			duplicates = append(duplicates, tx)
		}
	}

	return duplicates, nil
}

func (itx *importTx) CreateTransactions(ctx context.Context, params []ledger.CreateParams) ([]*ledger.Transaction, error) {
	txs := make([]*ledger.Transaction, 0, len(params))

	for _, p := range params {
		var id int64
		if err := itx.tx.QueryRowContext(ctx, insertTransaction, insertArgs(p, itx.currency)...).Scan(&id); err != nil {
			return nil, fmt.Errorf("creating transaction: %w", err)
		}

		txs = append(txs, &ledger.Transaction{
			ID:                id,
			Date:              p.Date,
			Kind:              p.Kind,
			Category:          p.Category,
			Description:       p.Description,
			Amount:            p.Amount,
			Currency:          itx.currency,
			ExcludeFromWeekly: p.ExcludeFromWeekly,
		})
	}

	return txs, nil
}
