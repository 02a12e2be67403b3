package store

import (
	"context"
	"fmt"
)

func (s *Store) IsMonthLocked(ctx context.Context, month string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM month_locks WHERE month = ?`, month).Scan(&n); err != nil {
		return false, fmt.Errorf("checking month lock: %w", err)
	}

	return n > 0, nil
}

func (s *Store) LockMonth(ctx context.Context, month string) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO month_locks (month) VALUES (?) ON CONFLICT DO NOTHING`, month); err != nil {
		return fmt.Errorf("locking month: %w", err)
	}

	return nil
}

func (s *Store) UnlockMonth(ctx context.Context, month string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM month_locks WHERE month = ?`, month); err != nil {
		return fmt.Errorf("unlocking month: %w", err)
	}

	return nil
}

func (s *Store) LockedMonths(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT month FROM month_locks ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("listing locked months: %w", err)
	}
	defer rows.Close()

	months := []string{}

	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("scanning locked month: %w", err)
		}

		months = append(months, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locked months: %w", err)
	}

	return months, nil
}
