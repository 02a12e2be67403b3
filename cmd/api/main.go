package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/budzet/internal/app"
	"github.com/MrJamesThe3rd/budzet/internal/config"
	budzetHttp "github.com/MrJamesThe3rd/budzet/internal/http"
	"github.com/MrJamesThe3rd/budzet/internal/http/catalog"
	"github.com/MrJamesThe3rd/budzet/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/budzet/internal/http/export"
	"github.com/MrJamesThe3rd/budzet/internal/http/goals"
	importHandler "github.com/MrJamesThe3rd/budzet/internal/http/importcsv"
	"github.com/MrJamesThe3rd/budzet/internal/http/locks"
	matchingHandler "github.com/MrJamesThe3rd/budzet/internal/http/matching"
	"github.com/MrJamesThe3rd/budzet/internal/http/middleware"
	shoppingHandler "github.com/MrJamesThe3rd/budzet/internal/http/shopping"
	txHandler "github.com/MrJamesThe3rd/budzet/internal/http/transaction"
	"github.com/MrJamesThe3rd/budzet/internal/http/weekly"
	"github.com/MrJamesThe3rd/budzet/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel(), cfg.Log.Format))

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	a, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	handlers := budzetHttp.Handlers{
		Transactions: txHandler.NewHandler(a.Ledger),
		Dashboard:    dashboard.NewHandler(a.Aggregator),
		Weekly:       weekly.NewHandler(a.Ledger),
		Catalog:      catalog.NewHandler(a.Ledger),
		Goals:        goals.NewHandler(a.Ledger),
		Locks:        locks.NewHandler(a.Ledger),
		Import:       importHandler.NewHandler(a.Importer, a.Ledger),
		Matching:     matchingHandler.NewHandler(a.Matching),
		Export:       exportHandler.NewHandler(a.Export, a.Aggregator.Config().MonthNames, cfg.Ledger.CurrencyCode),
		Shopping:     shoppingHandler.NewHandler(a.Shopping, a.Export),
	}

	opts := budzetHttp.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}
	if cfg.Auth.Secret != "" {
		opts.Auth = middleware.NewAuth(cfg.Auth.Secret, cfg.Auth.Issuer)
	} else {
		slog.Warn("AUTH_SECRET not set, API is unauthenticated")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           budzetHttp.New(handlers, opts),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", srv.Addr, "version", cfg.App.Version)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
