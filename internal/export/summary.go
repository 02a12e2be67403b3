package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

// Summary is the per-kind roll-up printed on the first report page.
type Summary struct {
	Income      aggregate.Breakdown // by person
	Expenses    aggregate.Breakdown // by category
	Repayments  aggregate.Breakdown // by creditor
	CashSavings decimal.Decimal
	GoalSavings decimal.Decimal
}

// Summarize folds rows into a Summary. Savings split on the cash-savings label.
func Summarize(rows []ledger.Transaction, cashSavingsLabel string) Summary {
	var s Summary

	for _, tx := range rows {
		switch tx.Kind {
		case ledger.KindIncome:
			s.Income.Add(tx.Category, tx.Amount)
		case ledger.KindExpense:
			s.Expenses.Add(tx.Category, tx.Amount)
		case ledger.KindLiabilityRepayment:
			s.Repayments.Add(tx.Category, tx.Amount)
		case ledger.KindSavings:
			if tx.Category == cashSavingsLabel {
				s.CashSavings = s.CashSavings.Add(tx.Amount)
			} else {
				s.GoalSavings = s.GoalSavings.Add(tx.Amount)
			}
		}
	}

	return s
}

// Net is what is left of the income after every outgoing kind.
func (s Summary) Net() decimal.Decimal {
	return s.Income.Total().
		Sub(s.Expenses.Total()).
		Sub(s.CashSavings).
		Sub(s.GoalSavings).
		Sub(s.Repayments.Total())
}

// Text renders the summary as plain text for terminals and message bodies.
func (s Summary) Text(title, currency string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n\n", title)

	section := func(name string, b aggregate.Breakdown) {
		fmt.Fprintf(&sb, "%s:\n", name)

		for _, e := range b.Entries() {
			fmt.Fprintf(&sb, "  %-30s %12s %s\n", e.Label, ledger.FormatAmount(e.Amount), currency)
		}

		fmt.Fprintf(&sb, "  %-30s %12s %s\n\n", "SUMA", ledger.FormatAmount(b.Total()), currency)
	}

	section("PRZYCHODY", s.Income)
	section("WYDATKI", s.Expenses)

	if s.Repayments.Len() > 0 {
		section("SPŁATA ZOBOWIĄZAŃ", s.Repayments)
	}

	fmt.Fprintf(&sb, "Oszczędności (gotówka): %s %s\n", ledger.FormatAmount(s.CashSavings), currency)
	fmt.Fprintf(&sb, "Wpłaty na cele: %s %s\n", ledger.FormatAmount(s.GoalSavings), currency)
	fmt.Fprintf(&sb, "Bilans: %s %s\n", ledger.FormatAmount(s.Net()), currency)

	return sb.String()
}
