// Package app wires the services shared by the API server, the TUI and the CLI.
package app

import (
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/config"
	"github.com/MrJamesThe3rd/budzet/internal/database"
	"github.com/MrJamesThe3rd/budzet/internal/export"
	"github.com/MrJamesThe3rd/budzet/internal/importer"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/budzet/internal/ledger/store"
	"github.com/MrJamesThe3rd/budzet/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/budzet/internal/matching/store"
	"github.com/MrJamesThe3rd/budzet/internal/shopping"
	shoppingStore "github.com/MrJamesThe3rd/budzet/internal/shopping/store"
)

type App struct {
	Config *config.Config
	DB     *database.DB

	Ledger     *ledger.Service
	Aggregator *aggregate.Aggregator
	Matching   *matching.Service
	Importer   *importer.Service
	Export     *export.Service
	Shopping   *shopping.Service
}

// Open migrates the schema, connects and builds every service.
func Open(cfg *config.Config) (*App, error) {
	dsn := cfg.ConnectionString()

	if err := database.Migrate(cfg.DB.Driver, dsn); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	db, err := database.New(cfg.DB.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	slog.Debug("database ready", "driver", cfg.DB.Driver)

	labels := ledger.Labels{
		CashSavings: cfg.Ledger.CashSavingsLabel,
		Fallback:    cfg.Ledger.FallbackCategory,
		Currency:    cfg.Ledger.CurrencyCode,
	}

	store := ledgerStore.New(db, labels)

	var (
		ledgerSvc   = ledger.NewService(store, labels)
		matchingSvc = matching.NewService(matchingStore.New(db))
	)

	aggCfg := aggregate.DefaultConfig()
	aggCfg.CashSavingsLabel = labels.CashSavings
	aggCfg.CurrencyMarker = cfg.Ledger.CurrencyMarker

	return &App{
		Config:     cfg,
		DB:         db,
		Ledger:     ledgerSvc,
		Aggregator: aggregate.New(store, aggCfg),
		Matching:   matchingSvc,
		Importer: importer.NewService(matchingSvc, importer.Defaults{
			ExpenseCategory: labels.Fallback,
			IncomePerson:    cfg.Ledger.DefaultPerson,
		}),
		Export: export.NewService(ledgerSvc, export.Meta{
			AppName:          cfg.App.Name,
			Version:          cfg.App.Version,
			Currency:         labels.Currency,
			CashSavingsLabel: labels.CashSavings,
			MonthNames:       aggCfg.MonthNames,
		}),
		Shopping: shopping.NewService(shoppingStore.New(db), ledgerSvc),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
