package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/budzet/internal/database"
	"github.com/MrJamesThe3rd/budzet/internal/shopping"
)

var _ shopping.Repository = (*Store)(nil)

type Store struct {
	db *database.DB
}

func New(db *database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateList(ctx context.Context, name string, createdAt time.Time) (int64, error) {
	query := `
		INSERT INTO shopping_lists (name, created_at, status)
		VALUES (?, ?, ?)
		RETURNING id
	`

	var id int64

	err := s.db.QueryRowContext(ctx, query, name, createdAt.Format(shopping.CreatedAtLayout), shopping.StatusOpen).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating shopping list: %w", err)
	}

	return id, nil
}

func (s *Store) Lists(ctx context.Context, status shopping.Status) ([]shopping.List, error) {
	query := `SELECT id, name, created_at, status FROM shopping_lists`

	var args []any

	if status != "" {
		query += ` WHERE status = ?`

		args = append(args, status)
	}

	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shopping lists: %w", err)
	}
	defer rows.Close()

	lists := []shopping.List{}

	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shopping list: %w", err)
		}

		lists = append(lists, *list)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shopping lists: %w", err)
	}

	return lists, nil
}

func (s *Store) GetList(ctx context.Context, id int64) (*shopping.List, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, created_at, status FROM shopping_lists WHERE id = ?`, id)

	list, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shopping.ErrNotFound
		}

		return nil, fmt.Errorf("getting shopping list: %w", err)
	}

	return list, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanList(s scanner) (*shopping.List, error) {
	var (
		list            shopping.List
		created, status string
	)

	if err := s.Scan(&list.ID, &list.Name, &created, &status); err != nil {
		return nil, err
	}

	list.CreatedAt, _ = time.Parse(shopping.CreatedAtLayout, created)
	list.Status = shopping.Status(status)

	return &list, nil
}

func (s *Store) SetListStatus(ctx context.Context, id int64, status shopping.Status) error {
	res, err := s.db.ExecContext(ctx, `UPDATE shopping_lists SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating shopping list status: %w", err)
	}

	return expectRow(res, shopping.ErrNotFound)
}

// DeleteList removes the items explicitly so it does not depend on the
// driver enforcing the cascade.
func (s *Store) DeleteList(ctx context.Context, id int64) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM shopping_items WHERE list_id = ?`, id); err != nil {
		return fmt.Errorf("deleting shopping items: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM shopping_lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shopping list: %w", err)
	}

	if err := expectRow(res, shopping.ErrNotFound); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) Items(ctx context.Context, listID int64) ([]shopping.Item, error) {
	query := `
		SELECT id, list_id, product_name, quantity, store, is_checked
		FROM shopping_items
		WHERE list_id = ?
		ORDER BY store ASC, product_name ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("listing shopping items: %w", err)
	}
	defer rows.Close()

	items := []shopping.Item{}

	for rows.Next() {
		var item shopping.Item
		if err := rows.Scan(&item.ID, &item.ListID, &item.Product, &item.Quantity, &item.Store, &item.Checked); err != nil {
			return nil, fmt.Errorf("scanning shopping item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shopping items: %w", err)
	}

	return items, nil
}

func (s *Store) AddItem(ctx context.Context, listID int64, params shopping.ItemParams) (int64, error) {
	query := `
		INSERT INTO shopping_items (list_id, product_name, quantity, store, is_checked)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`

	var id int64

	err := s.db.QueryRowContext(ctx, query, listID, params.Product, params.Quantity, params.Store, false).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("adding shopping item: %w", err)
	}

	return id, nil
}

func (s *Store) UpdateItem(ctx context.Context, id int64, params shopping.ItemParams) error {
	query := `
		UPDATE shopping_items
		SET product_name = ?, quantity = ?, store = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, params.Product, params.Quantity, params.Store, id)
	if err != nil {
		return fmt.Errorf("updating shopping item: %w", err)
	}

	return expectRow(res, shopping.ErrItemNotFound)
}

func (s *Store) ToggleItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE shopping_items SET is_checked = NOT is_checked WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggling shopping item: %w", err)
	}

	return expectRow(res, shopping.ErrItemNotFound)
}

func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shopping_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shopping item: %w", err)
	}

	return expectRow(res, shopping.ErrItemNotFound)
}

func expectRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}

	if n == 0 {
		return notFound
	}

	return nil
}
