package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

const (
	keyWeeklyConfig = "weekly_limit_config"
	keyBackupConfig = "backup_config"
)

var defaultWeeklyAmount = decimal.NewFromInt(500)

// Setting decodes the JSON stored under key into dst and reports whether a
// usable value was found. Malformed JSON counts as not set.
func (s *Store) Setting(ctx context.Context, key string, dst any) (bool, error) {
	return setting(ctx, s.db, key, dst)
}

func (s *Store) SaveSetting(ctx context.Context, key string, value any) error {
	return saveSetting(ctx, s.db, key, value)
}

func setting(ctx context.Context, q querier, key string, dst any) (bool, error) {
	var raw string

	err := q.QueryRowContext(ctx, `SELECT value FROM app_config WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("reading setting %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.WarnContext(ctx, "ignoring malformed setting", "key", key, "error", err)
		return false, nil
	}

	return true, nil
}

func saveSetting(ctx context.Context, q querier, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %s: %w", key, err)
	}

	query := `
		INSERT INTO app_config (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	if _, err := q.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}

	return nil
}

func (s *Store) WeeklyConfig(ctx context.Context) (ledger.WeeklyConfig, error) {
	return s.weeklyConfig(ctx, s.db)
}

func (s *Store) weeklyConfig(ctx context.Context, q querier) (ledger.WeeklyConfig, error) {
	var cfg ledger.WeeklyConfig

	found, err := setting(ctx, q, keyWeeklyConfig, &cfg)
	if err != nil {
		return ledger.WeeklyConfig{}, err
	}

	if found {
		return cfg, nil
	}

	categories, err := listNames(ctx, q, "categories")
	if err != nil {
		return ledger.WeeklyConfig{}, err
	}

	return ledger.WeeklyConfig{Amount: defaultWeeklyAmount, Categories: categories}, nil
}

func (s *Store) SaveWeeklyConfig(ctx context.Context, cfg ledger.WeeklyConfig) error {
	return saveSetting(ctx, s.db, keyWeeklyConfig, cfg)
}

func (s *Store) IsWeeklySystemEnabled(ctx context.Context) (bool, error) {
	cfg, err := s.WeeklyConfig(ctx)
	if err != nil {
		return false, err
	}

	return cfg.Enabled, nil
}

func (s *Store) SetWeeklySystemEnabled(ctx context.Context, enabled bool) error {
	cfg, err := s.WeeklyConfig(ctx)
	if err != nil {
		return err
	}

	cfg.Enabled = enabled

	return s.SaveWeeklyConfig(ctx, cfg)
}

func (s *Store) BackupConfig(ctx context.Context) (ledger.BackupConfig, error) {
	cfg := ledger.BackupConfig{BackupPath: "backups"}

	if _, err := setting(ctx, s.db, keyBackupConfig, &cfg); err != nil {
		return ledger.BackupConfig{}, err
	}

	return cfg, nil
}

func (s *Store) SaveBackupConfig(ctx context.Context, cfg ledger.BackupConfig) error {
	return saveSetting(ctx, s.db, keyBackupConfig, cfg)
}
