// Package aggregate turns ledger rows into the figures a dashboard shows:
// month statistics, weekly limit consumption, rollover and search matches.
package aggregate

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// Source is the part of the ledger store the aggregator reads.
type Source interface {
	AllTransactions(ctx context.Context) ([]*ledger.Transaction, error)
	ExpensesInRange(ctx context.Context, start, end time.Time, allowed []string) ([]ledger.CategoryAmount, error)
	NetBalanceBefore(ctx context.Context, date time.Time) (decimal.Decimal, error)
	WeeklyLimitForWeek(ctx context.Context, monday time.Time) (ledger.WeeklyLimit, bool, error)
	IsWeeklySystemEnabled(ctx context.Context) (bool, error)
	TotalCashSavings(ctx context.Context) (decimal.Decimal, error)
}

// PolishMonthNames are the nominative month names, January first.
var PolishMonthNames = [12]string{
	"Styczeń", "Luty", "Marzec", "Kwiecień", "Maj", "Czerwiec",
	"Lipiec", "Sierpień", "Wrzesień", "Październik", "Listopad", "Grudzień",
}

type Config struct {
	CashSavingsLabel string
	CurrencyMarker   string
	MonthNames       [12]string
}

func DefaultConfig() Config {
	return Config{
		CashSavingsLabel: "Oszczędności gotówka",
		CurrencyMarker:   "zł",
		MonthNames:       PolishMonthNames,
	}
}

// MonthName returns the configured name of m.
func (c Config) MonthName(m time.Month) string {
	return c.MonthNames[m-1]
}

type Aggregator struct {
	src Source
	cfg Config
	now func() time.Time
}

type Option func(*Aggregator)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

func New(src Source, cfg Config, opts ...Option) *Aggregator {
	a := &Aggregator{src: src, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Aggregator) Config() Config { return a.cfg }

func (a *Aggregator) today() time.Time {
	return ledger.Day(a.now())
}

func sumAmounts(rows []ledger.CategoryAmount) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}

	return total
}
