package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/budzet/internal/database"
	"github.com/MrJamesThe3rd/budzet/internal/matching"
)

type Store struct {
	db  *database.DB
	now func() time.Time
}

func New(db *database.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Mappings returns every mapping, newest first. Matching happens in Go so
// that case folding covers Polish letters on every driver.
func (s *Store) Mappings(ctx context.Context) ([]matching.Mapping, error) {
	query := `
		SELECT id, raw_pattern, category, created_at
		FROM category_mappings
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing mappings: %w", err)
	}
	defer rows.Close()

	var mappings []matching.Mapping

	for rows.Next() {
		var (
			m       matching.Mapping
			created string
		)

		if err := rows.Scan(&m.ID, &m.RawPattern, &m.Category, &created); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}

		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}

	return mappings, nil
}

func (s *Store) CreateMapping(ctx context.Context, rawPattern, category string) error {
	query := `
		INSERT INTO category_mappings (raw_pattern, category, created_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, category, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}

func (s *Store) DeleteMapping(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM category_mappings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting mapping: %w", err)
	}

	return nil
}
