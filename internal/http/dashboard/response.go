package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type entryResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type rowResponse struct {
	ID                int64       `json:"id"`
	Date              string      `json:"date"`
	Kind              ledger.Kind `json:"kind"`
	Category          string      `json:"category"`
	Description       string      `json:"description"`
	Amount            string      `json:"amount"`
	ExcludeFromWeekly bool        `json:"exclude_from_weekly"`
}

type monthResponse struct {
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	Name              string          `json:"name"`
	Start             string          `json:"start"`
	End               string          `json:"end"`
	Income            string          `json:"income"`
	Expense           string          `json:"expense"`
	CashSavings       string          `json:"cash_savings"`
	Savings           string          `json:"savings"`
	Liability         string          `json:"liability"`
	IncomeByPerson    []entryResponse `json:"income_by_person"`
	ExpenseByCategory []entryResponse `json:"expense_by_category"`
	OpeningBalance    string          `json:"opening_balance"`
	ClosingBalance    string          `json:"closing_balance"`
	TotalCashSavings  string          `json:"total_cash_savings"`
	Rows              []rowResponse   `json:"rows"`
}

type shareResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Percent  int    `json:"percent"`
}

type weekResponse struct {
	State              aggregate.WeekState `json:"state"`
	Offset             int                 `json:"offset"`
	Monday             string              `json:"monday,omitempty"`
	Sunday             string              `json:"sunday,omitempty"`
	Current            bool                `json:"current"`
	Limit              string              `json:"limit"`
	Categories         []string            `json:"categories"`
	Spent              string              `json:"spent"`
	Remaining          string              `json:"remaining"`
	Percent            int                 `json:"percent"`
	Progress           int                 `json:"progress"`
	OverLimit          bool                `json:"over_limit"`
	Breakdown          []shareResponse     `json:"breakdown"`
	PreviousConfigured bool                `json:"previous_configured"`
	PreviousSaved      string              `json:"previous_saved"`
	Rollover           string              `json:"rollover"`
	RolloverMonth      string              `json:"rollover_month,omitempty"`
	Category           string              `json:"category,omitempty"`
	Rows               []rowResponse       `json:"rows"`
}

type dashboardResponse struct {
	Month          monthResponse `json:"month"`
	Week           *weekResponse `json:"week,omitempty"`
	WeeklyEnabled  bool          `json:"weekly_enabled"`
	Reserved       string        `json:"reserved"`
	RealBalance    string        `json:"real_balance"`
	DisplayBalance string        `json:"display_balance"`
	Rows           []rowResponse `json:"rows"`
}

func amount(d decimal.Decimal) string {
	return ledger.FormatAmount(d)
}

func dateOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(ledger.DateLayout)
}

func toEntries(b aggregate.Breakdown) []entryResponse {
	entries := b.Entries()

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{Label: e.Label, Amount: amount(e.Amount)}
	}

	return resp
}

func toRows(txs []*ledger.Transaction) []rowResponse {
	resp := make([]rowResponse, len(txs))
	for i, tx := range txs {
		resp[i] = rowResponse{
			ID:                tx.ID,
			Date:              tx.Date.Format(ledger.DateLayout),
			Kind:              tx.Kind,
			Category:          tx.Category,
			Description:       tx.Description,
			Amount:            amount(tx.Amount),
			ExcludeFromWeekly: tx.ExcludeFromWeekly,
		}
	}

	return resp
}

func toMonthResponse(m *aggregate.MonthView) monthResponse {
	return monthResponse{
		Year:              m.Year,
		Month:             int(m.Month),
		Name:              m.Name,
		Start:             m.Start.Format(ledger.DateLayout),
		End:               m.End.Format(ledger.DateLayout),
		Income:            amount(m.Income),
		Expense:           amount(m.Expense),
		CashSavings:       amount(m.CashSavings),
		Savings:           amount(m.Savings),
		Liability:         amount(m.Liability),
		IncomeByPerson:    toEntries(m.IncomeByPerson),
		ExpenseByCategory: toEntries(m.ExpenseByCategory),
		OpeningBalance:    amount(m.OpeningBalance),
		ClosingBalance:    amount(m.ClosingBalance),
		TotalCashSavings:  amount(m.TotalCashSavings),
		Rows:              toRows(m.Rows),
	}
}

func toWeekResponse(w *aggregate.WeekView) *weekResponse {
	if w == nil {
		return nil
	}

	shares := make([]shareResponse, len(w.Breakdown))
	for i, s := range w.Breakdown {
		shares[i] = shareResponse{Category: s.Category, Amount: amount(s.Amount), Percent: s.Percent}
	}

	return &weekResponse{
		State:              w.State,
		Offset:             w.Offset,
		Monday:             dateOrEmpty(w.Monday),
		Sunday:             dateOrEmpty(w.Sunday),
		Current:            w.Current,
		Limit:              amount(w.Limit),
		Categories:         w.Categories,
		Spent:              amount(w.Spent),
		Remaining:          amount(w.Remaining),
		Percent:            w.Percent,
		Progress:           w.Progress,
		OverLimit:          w.OverLimit,
		Breakdown:          shares,
		PreviousConfigured: w.PreviousConfigured,
		PreviousSaved:      amount(w.PreviousSaved),
		Rollover:           amount(w.Rollover),
		RolloverMonth:      w.RolloverMonthName,
		Category:           w.Category,
		Rows:               toRows(w.Rows),
	}
}

func toDashboardResponse(d *aggregate.Dashboard) dashboardResponse {
	return dashboardResponse{
		Month:          toMonthResponse(d.Month),
		Week:           toWeekResponse(d.Week),
		WeeklyEnabled:  d.WeeklyEnabled,
		Reserved:       amount(d.Reserved),
		RealBalance:    amount(d.RealBalance),
		DisplayBalance: amount(d.DisplayBalance),
		Rows:           toRows(d.Rows),
	}
}
