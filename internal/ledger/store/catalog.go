package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// listNames reads the single-column name tables (categories, people, shops).
func listNames(ctx context.Context, q querier, table string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT name FROM `+table+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	names := []string{}

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}

	return names, nil
}

func insertName(ctx context.Context, q querier, table, name string) error {
	if _, err := q.ExecContext(ctx, `INSERT INTO `+table+` (name) VALUES (?) ON CONFLICT DO NOTHING`, name); err != nil {
		return fmt.Errorf("adding to %s: %w", table, err)
	}

	return nil
}

func (s *Store) Categories(ctx context.Context) ([]string, error) {
	return listNames(ctx, s.db, "categories")
}

// AddCategory registers name and appends it to the weekly defaults and to the
// category list of the week starting on currentMonday, if that week has one.
func (s *Store) AddCategory(ctx context.Context, name string, currentMonday time.Time) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := insertName(ctx, dbTx, "categories", name); err != nil {
		return err
	}

	cfg, err := s.weeklyConfig(ctx, dbTx)
	if err != nil {
		return err
	}

	if !slices.Contains(cfg.Categories, name) {
		cfg.Categories = append(cfg.Categories, name)
		if err := saveSetting(ctx, dbTx, keyWeeklyConfig, cfg); err != nil {
			return err
		}
	}

	limit, found, err := weeklyLimit(ctx, dbTx, currentMonday)
	if err != nil {
		return err
	}

	if found && limit.Categories != nil && !slices.Contains(limit.Categories, name) {
		limit.Categories = append(limit.Categories, name)
		if err := setWeeklyLimit(ctx, dbTx, limit); err != nil {
			return err
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// DeleteCategory moves the category's expenses to the fallback category and
// removes it.
func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	reassign := `UPDATE transactions SET category = ? WHERE kind = ? AND category = ?`
	if _, err := dbTx.ExecContext(ctx, reassign, s.labels.Fallback, string(ledger.KindExpense), name); err != nil {
		return fmt.Errorf("reassigning expenses: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM categories WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) People(ctx context.Context) ([]string, error) {
	return listNames(ctx, s.db, "people")
}

func (s *Store) AddPerson(ctx context.Context, name string) error {
	return insertName(ctx, s.db, "people", name)
}

func (s *Store) Shops(ctx context.Context) ([]string, error) {
	return listNames(ctx, s.db, "shops")
}

func (s *Store) AddShop(ctx context.Context, name string) error {
	return insertName(ctx, s.db, "shops", name)
}
