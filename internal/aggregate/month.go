package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type MonthRequest struct {
	Year  int
	Month time.Month
	// Category, when set, shows only this month's rows of that category.
	Category string
	// Search, when set and no Category is active, shows matching rows of any month.
	Search string
}

type MonthView struct {
	Year  int
	Month time.Month
	Name  string
	Start time.Time
	End   time.Time

	Income      decimal.Decimal
	Expense     decimal.Decimal
	CashSavings decimal.Decimal
	// Savings is every savings movement in the month, goals included.
	Savings   decimal.Decimal
	Liability decimal.Decimal

	IncomeByPerson    Breakdown
	ExpenseByCategory Breakdown

	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal

	// TotalCashSavings is the all-time balance of the cash-savings label.
	TotalCashSavings decimal.Decimal

	Rows []*ledger.Transaction
}

func (a *Aggregator) Month(ctx context.Context, req MonthRequest) (*MonthView, error) {
	all, err := a.src.AllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	return a.month(ctx, req, all)
}

func (a *Aggregator) month(ctx context.Context, req MonthRequest, all []*ledger.Transaction) (*MonthView, error) {
	start, end := ledger.MonthBounds(req.Year, req.Month)

	view := &MonthView{
		Year:        req.Year,
		Month:       req.Month,
		Name:        a.cfg.MonthName(req.Month),
		Start:       start,
		End:         end,
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
		CashSavings: decimal.Zero,
		Savings:     decimal.Zero,
		Liability:   decimal.Zero,
	}

	matcher := NewMatcher(req.Search, a.cfg)

	for _, tx := range all {
		inMonth := tx.Date.Year() == req.Year && tx.Date.Month() == req.Month

		var show bool

		switch {
		case req.Category != "":
			show = inMonth && tx.Category == req.Category
		case matcher.Active():
			show = matcher.Match(tx)
		default:
			show = inMonth
		}

		if show {
			view.Rows = append(view.Rows, tx)
		}

		if !inMonth {
			continue
		}

		switch tx.Kind {
		case ledger.KindIncome:
			view.Income = view.Income.Add(tx.Amount)
			view.IncomeByPerson.Add(tx.Category, tx.Amount)
		case ledger.KindExpense:
			view.Expense = view.Expense.Add(tx.Amount)
			view.ExpenseByCategory.Add(tx.Category, tx.Amount)
		case ledger.KindSavings:
			view.Savings = view.Savings.Add(tx.Amount)
			if tx.Category == a.cfg.CashSavingsLabel {
				view.CashSavings = view.CashSavings.Add(tx.Amount)
			}
		case ledger.KindLiabilityRepayment:
			view.Liability = view.Liability.Add(tx.Amount)
		}
	}

	opening, err := a.src.NetBalanceBefore(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("computing opening balance: %w", err)
	}

	view.OpeningBalance = opening
	view.ClosingBalance = opening.
		Add(view.Income).
		Sub(view.Expense).
		Sub(view.Savings).
		Sub(view.Liability)

	view.TotalCashSavings, err = a.src.TotalCashSavings(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing cash savings: %w", err)
	}

	return view, nil
}
