package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type DashboardRequest struct {
	Year     int
	Month    time.Month
	Category string
	Search   string

	// WeekView asks for the weekly panel; it is honoured only while the
	// weekly system is enabled.
	WeekView     bool
	WeekOffset   int
	WeekCategory string
}

type Dashboard struct {
	Month *MonthView
	// Week is nil unless the weekly panel is active.
	Week          *WeekView
	WeeklyEnabled bool

	// Reserved is the unspent allowance of the current week, held back from
	// DisplayBalance while the current week is shown.
	Reserved       decimal.Decimal
	RealBalance    decimal.Decimal
	DisplayBalance decimal.Decimal

	// Rows are the transactions the table shows for this refresh.
	Rows []*ledger.Transaction
}

func (a *Aggregator) Dashboard(ctx context.Context, req DashboardRequest) (*Dashboard, error) {
	enabled, err := a.src.IsWeeklySystemEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading weekly switch: %w", err)
	}

	all, err := a.src.AllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	weekActive := enabled && req.WeekView

	monthReq := MonthRequest{Year: req.Year, Month: req.Month, Category: req.Category, Search: req.Search}
	if weekActive {
		monthReq.Category = ""
	}

	month, err := a.month(ctx, monthReq, all)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Month:          month,
		WeeklyEnabled:  enabled,
		Reserved:       decimal.Zero,
		RealBalance:    month.ClosingBalance,
		DisplayBalance: month.ClosingBalance,
		Rows:           month.Rows,
	}

	if !weekActive {
		return d, nil
	}

	week, err := a.week(ctx, WeekRequest{Offset: req.WeekOffset, Category: req.WeekCategory}, all)
	if err != nil {
		return nil, err
	}

	d.Week = week

	if week.State == StateConfigured && week.Current && week.Remaining.IsPositive() {
		d.Reserved = week.Remaining
		d.DisplayBalance = d.RealBalance.Sub(d.Reserved)
	}

	if req.WeekCategory != "" {
		d.Rows = week.Rows
	}

	return d, nil
}
