package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func (s *Store) WeeklyLimitForWeek(ctx context.Context, monday time.Time) (ledger.WeeklyLimit, bool, error) {
	return weeklyLimit(ctx, s.db, monday)
}

func weeklyLimit(ctx context.Context, q querier, monday time.Time) (ledger.WeeklyLimit, bool, error) {
	var (
		raw        string
		categories sql.NullString
	)

	query := `SELECT CAST(amount AS TEXT), categories FROM weekly_history WHERE monday_date = ?`

	err := q.QueryRowContext(ctx, query, monday.Format(ledger.DateLayout)).Scan(&raw, &categories)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.WeeklyLimit{}, false, nil
		}

		return ledger.WeeklyLimit{}, false, fmt.Errorf("getting weekly limit: %w", err)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		slog.WarnContext(ctx, "malformed weekly limit amount", "monday", monday.Format(ledger.DateLayout), "value", raw)

		amount = decimal.Zero
	}

	return ledger.WeeklyLimit{
		Monday:     monday,
		Amount:     amount,
		Categories: decodeCategories(ctx, categories),
	}, true, nil
}

// decodeCategories maps NULL to nil (any category) and malformed JSON to an
// empty list (no category).
func decodeCategories(ctx context.Context, raw sql.NullString) []string {
	if !raw.Valid {
		return nil
	}

	categories := []string{}
	if err := json.Unmarshal([]byte(raw.String), &categories); err != nil {
		slog.WarnContext(ctx, "malformed weekly categories", "value", raw.String)
		return []string{}
	}

	if categories == nil {
		return nil
	}

	return categories
}

func encodeCategories(categories []string) (sql.NullString, error) {
	if categories == nil {
		return sql.NullString{}, nil
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: string(raw), Valid: true}, nil
}

func (s *Store) SetWeeklyLimitForWeek(ctx context.Context, limit ledger.WeeklyLimit) error {
	return setWeeklyLimit(ctx, s.db, limit)
}

func setWeeklyLimit(ctx context.Context, q querier, limit ledger.WeeklyLimit) error {
	categories, err := encodeCategories(limit.Categories)
	if err != nil {
		return fmt.Errorf("encoding weekly categories: %w", err)
	}

	query := `
		INSERT INTO weekly_history (monday_date, amount, categories) VALUES (?, ?, ?)
		ON CONFLICT (monday_date) DO UPDATE SET amount = excluded.amount, categories = excluded.categories
	`

	if _, err := q.ExecContext(ctx, query, limit.Monday.Format(ledger.DateLayout), limit.Amount.String(), categories); err != nil {
		return fmt.Errorf("saving weekly limit: %w", err)
	}

	return nil
}
