package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// WeekState is the state of the weekly limit panel.
type WeekState int

const (
	StateDisabled WeekState = iota
	StateUnconfigured
	StateConfigured
)

func (s WeekState) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	}

	return "disabled"
}

func (s WeekState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type WeekRequest struct {
	// Offset counts weeks from the current one; negative is the past.
	Offset int
	// Category, when set, lists this week's expense rows of that category.
	Category string
}

type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	// Percent is the truncated share of the week's spending.
	Percent int `json:"percent"`
}

type WeekView struct {
	State  WeekState
	Offset int
	Monday time.Time
	Sunday time.Time
	// Current is true when the week contains today.
	Current bool

	Limit      decimal.Decimal
	Categories []string
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	// Percent is the signed remaining share of the limit, truncated toward zero.
	Percent int
	// Progress is Percent clamped to [0, 100].
	Progress  int
	OverLimit bool
	Breakdown []CategoryShare

	PreviousConfigured bool
	PreviousSaved      decimal.Decimal

	// Rollover is what completed weeks of RolloverMonth left unspent.
	Rollover          decimal.Decimal
	RolloverMonth     time.Month
	RolloverMonthName string

	Category string
	Rows     []*ledger.Transaction
}

func (a *Aggregator) Week(ctx context.Context, req WeekRequest) (*WeekView, error) {
	enabled, err := a.src.IsWeeklySystemEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading weekly switch: %w", err)
	}

	if !enabled {
		return &WeekView{State: StateDisabled}, nil
	}

	var rows []*ledger.Transaction
	if req.Category != "" {
		if rows, err = a.src.AllTransactions(ctx); err != nil {
			return nil, fmt.Errorf("loading transactions: %w", err)
		}
	}

	return a.week(ctx, req, rows)
}

// week builds the view for an enabled weekly system. all is only consulted
// when a category filter is set.
func (a *Aggregator) week(ctx context.Context, req WeekRequest, all []*ledger.Transaction) (*WeekView, error) {
	today := a.today()
	monday, sunday := ledger.WeekBounds(today.AddDate(0, 0, 7*req.Offset))

	view := &WeekView{
		State:    StateUnconfigured,
		Offset:   req.Offset,
		Monday:   monday,
		Sunday:   sunday,
		Current:  monday.Equal(ledger.MondayOf(today)),
		Category: req.Category,
	}

	if req.Category != "" {
		for _, tx := range all {
			if tx.Kind == ledger.KindExpense && tx.Category == req.Category &&
				!tx.Date.Before(monday) && !tx.Date.After(sunday) {
				view.Rows = append(view.Rows, tx)
			}
		}
	}

	limit, found, err := a.src.WeeklyLimitForWeek(ctx, monday)
	if err != nil {
		return nil, fmt.Errorf("loading weekly limit: %w", err)
	}

	if !found {
		return view, nil
	}

	view.State = StateConfigured
	view.Limit = limit.Amount
	view.Categories = limit.Categories

	spending, err := a.src.ExpensesInRange(ctx, monday, sunday, limit.Categories)
	if err != nil {
		return nil, fmt.Errorf("summing week expenses: %w", err)
	}

	view.Spent = sumAmounts(spending)
	view.Remaining = view.Limit.Sub(view.Spent)
	view.OverLimit = view.Remaining.IsNegative()
	view.Percent = percentOf(view.Remaining, view.Limit)
	view.Progress = min(max(view.Percent, 0), 100)

	view.Breakdown = make([]CategoryShare, 0, len(spending))
	for _, s := range spending {
		view.Breakdown = append(view.Breakdown, CategoryShare{
			Category: s.Category,
			Amount:   s.Amount,
			Percent:  percentOf(s.Amount, view.Spent),
		})
	}

	view.PreviousSaved, view.PreviousConfigured, err = a.weekSaved(ctx, monday.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	view.RolloverMonth = sunday.Month()
	view.RolloverMonthName = a.cfg.MonthName(sunday.Month())

	view.Rollover, err = a.rollover(ctx, sunday, today)
	if err != nil {
		return nil, err
	}

	return view, nil
}

// percentOf returns part/whole*100 truncated toward zero, or 0 when whole is
// not positive.
func percentOf(part, whole decimal.Decimal) int {
	if !whole.IsPositive() {
		return 0
	}

	return int(part.Mul(decimal.NewFromInt(100)).Div(whole).IntPart())
}

// weekSaved returns max(0, limit − spent) for the week starting on monday and
// whether that week has a limit at all.
func (a *Aggregator) weekSaved(ctx context.Context, monday time.Time) (decimal.Decimal, bool, error) {
	limit, found, err := a.src.WeeklyLimitForWeek(ctx, monday)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("loading weekly limit: %w", err)
	}

	if !found {
		return decimal.Zero, false, nil
	}

	spending, err := a.src.ExpensesInRange(ctx, monday, monday.AddDate(0, 0, 6), limit.Categories)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("summing week expenses: %w", err)
	}

	left := limit.Amount.Sub(sumAmounts(spending))
	if left.IsNegative() {
		left = decimal.Zero
	}

	return left, true, nil
}

// rollover walks back a week at a time from sunday while the week's Sunday
// stays in sunday's month, adding what each finished week left unspent.
// A week counts only once its Sunday is before today.
func (a *Aggregator) rollover(ctx context.Context, sunday, today time.Time) (decimal.Decimal, error) {
	total := decimal.Zero

	for check := sunday; check.Month() == sunday.Month(); check = check.AddDate(0, 0, -7) {
		if !check.Before(today) {
			continue
		}

		saved, _, err := a.weekSaved(ctx, check.AddDate(0, 0, -6))
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(saved)
	}

	return total, nil
}

// Reservation is what is left of the current week's limit, or zero when the
// current week has no limit.
func (a *Aggregator) Reservation(ctx context.Context) (decimal.Decimal, error) {
	saved, _, err := a.weekSaved(ctx, ledger.MondayOf(a.today()))
	return saved, err
}
