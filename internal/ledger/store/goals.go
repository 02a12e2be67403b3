package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func (s *Store) Goals(ctx context.Context) ([]ledger.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, CAST(target_amount AS TEXT) FROM goals ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	goals := []ledger.Goal{}

	for rows.Next() {
		var (
			g   ledger.Goal
			raw string
		)

		if err := rows.Scan(&g.ID, &g.Name, &raw); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		g.Target, _ = parseAmount(ctx, raw, "goal target")
		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}

	collected, err := s.sumByCategory(ctx, s.db, ledger.KindSavings)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		goals[i].Collected = collected[goals[i].Name]
	}

	return goals, nil
}

// AddGoal returns ledger.ErrDuplicateName when a goal with the name exists.
func (s *Store) AddGoal(ctx context.Context, name string, target decimal.Decimal) (int64, error) {
	query := `
		INSERT INTO goals (name, target_amount) VALUES (?, ?)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, name, target.String()).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ledger.ErrDuplicateName, name)
		}

		return 0, fmt.Errorf("creating goal: %w", err)
	}

	return id, nil
}

func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	return nil
}

func (s *Store) Liabilities(ctx context.Context) ([]ledger.Liability, error) {
	query := `SELECT id, name, CAST(total_amount AS TEXT), deadline FROM liabilities ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing liabilities: %w", err)
	}
	defer rows.Close()

	liabilities := []ledger.Liability{}

	for rows.Next() {
		var (
			l        ledger.Liability
			raw      string
			deadline sql.NullString
		)

		if err := rows.Scan(&l.ID, &l.Name, &raw, &deadline); err != nil {
			return nil, fmt.Errorf("scanning liability: %w", err)
		}

		l.Total, _ = parseAmount(ctx, raw, "liability total")

		if deadline.Valid && deadline.String != "" {
			if d, err := ledger.ParseDate(deadline.String); err == nil {
				l.Deadline = &d
			}
		}

		liabilities = append(liabilities, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating liabilities: %w", err)
	}

	paid, err := s.sumByCategory(ctx, s.db, ledger.KindLiabilityRepayment)
	if err != nil {
		return nil, err
	}

	for i := range liabilities {
		liabilities[i].Paid = paid[liabilities[i].Name]
	}

	return liabilities, nil
}

// AddLiability returns ledger.ErrDuplicateName when a liability with the name exists.
func (s *Store) AddLiability(ctx context.Context, l ledger.Liability) (int64, error) {
	query := `
		INSERT INTO liabilities (name, total_amount, deadline) VALUES (?, ?, ?)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`

	var deadline sql.NullString
	if l.Deadline != nil {
		deadline = sql.NullString{String: l.Deadline.Format(ledger.DateLayout), Valid: true}
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, l.Name, l.Total.String(), deadline).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ledger.ErrDuplicateName, l.Name)
		}

		return 0, fmt.Errorf("creating liability: %w", err)
	}

	return id, nil
}

func (s *Store) DeleteLiability(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM liabilities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting liability: %w", err)
	}

	return nil
}

// HistoricalCreditors lists every creditor a repayment was ever booked against.
func (s *Store) HistoricalCreditors(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM transactions
		WHERE kind = ? AND category <> ''
		ORDER BY category
	`

	rows, err := s.db.QueryContext(ctx, query, string(ledger.KindLiabilityRepayment))
	if err != nil {
		return nil, fmt.Errorf("listing creditors: %w", err)
	}
	defer rows.Close()

	creditors := []string{}

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning creditor: %w", err)
		}

		creditors = append(creditors, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating creditors: %w", err)
	}

	return creditors, nil
}
