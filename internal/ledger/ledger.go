package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the type of money movement a transaction records.
type Kind string

const (
	KindIncome             Kind = "income"
	KindExpense            Kind = "expense"
	KindSavings            Kind = "savings"
	KindLiabilityRepayment Kind = "liability_repayment"
)

func (k Kind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindSavings, KindLiabilityRepayment:
		return true
	}

	return false
}

// Transaction is a single recorded money movement.
//
// Category depends on Kind: the person for income, the spending category for
// expenses, the goal name or the cash-savings label for savings, and the
// creditor for liability repayments. Savings withdrawals carry a negative
// Amount.
type Transaction struct {
	ID                int64
	Date              time.Time
	Kind              Kind
	Category          string
	Description       string
	Amount            decimal.Decimal
	Currency          string
	ExcludeFromWeekly bool
}

type CreateParams struct {
	Date              time.Time
	Kind              Kind
	Category          string
	Description       string
	Amount            decimal.Decimal
	ExcludeFromWeekly bool
}

// UpdateParams holds the fields a full-field update replaces.
type UpdateParams struct {
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
}

// CategoryAmount is one row of a grouped expense sum.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// WeeklyLimit is the budget ceiling for the ISO week starting on Monday.
// A nil Categories slice counts every category; an empty one counts none.
type WeeklyLimit struct {
	Monday     time.Time
	Amount     decimal.Decimal
	Categories []string
}

// WeeklyConfig is the process-wide weekly limit switch and the defaults
// used to seed weeks that have no record yet.
type WeeklyConfig struct {
	Enabled    bool            `json:"enabled"`
	Amount     decimal.Decimal `json:"amount"`
	Categories []string        `json:"categories"`
}

type BackupConfig struct {
	AutoBackup bool   `json:"auto_backup"`
	BackupPath string `json:"backup_path"`
}

// Goal is a named savings target. Collected is derived from savings rows.
type Goal struct {
	ID        int64
	Name      string
	Target    decimal.Decimal
	Collected decimal.Decimal
}

// Liability is a named debt. Paid is derived from repayment rows.
type Liability struct {
	ID       int64
	Name     string
	Total    decimal.Decimal
	Deadline *time.Time
	Paid     decimal.Decimal
}

func (l Liability) Remaining() decimal.Decimal {
	return l.Total.Sub(l.Paid)
}

// Labels are the fixed strings the ledger attaches meaning to.
type Labels struct {
	CashSavings string
	Fallback    string
	Currency    string
}
