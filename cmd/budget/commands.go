package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/export"
	"github.com/MrJamesThe3rd/budzet/internal/http/middleware"
	"github.com/MrJamesThe3rd/budzet/internal/importer"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.open(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", c.cfg.DB.Driver)

			return nil
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	var (
		date        string
		category    string
		description string
		amount      string
		excludeWeek bool
		withdraw    bool
	)

	cmd := &cobra.Command{
		Use:       "add income|expense|savings|repayment",
		Short:     "Record a transaction",
		Long:      "Records one transaction. The category is the person for income, the goal or cash savings for savings and the creditor for repayments.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"income", "expense", "savings", "repayment"},
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				var err error
				if day, err = ledger.ParseDate(date); err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
				}
			}

			value, err := ledger.ParseAmount(amount)
			if err != nil {
				return err
			}

			a, err := c.open()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			var tx *ledger.Transaction

			switch args[0] {
			case "income":
				tx, err = a.Ledger.AddIncome(ctx, day, category, description, value)
			case "expense":
				if category == "" {
					category = c.cfg.Ledger.FallbackCategory
				}

				tx, err = a.Ledger.AddExpense(ctx, day, category, description, value, excludeWeek)
			case "savings":
				if category == "" {
					category = c.cfg.Ledger.CashSavingsLabel
				}

				tx, err = a.Ledger.AddSavings(ctx, day, category, description, value, withdraw)
			case "repayment":
				tx, err = a.Ledger.AddRepayment(ctx, day, category, description, value)
			default:
				return fmt.Errorf("%w: %s", ledger.ErrInvalidKind, args[0])
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s %s %s %s\n",
				tx.ID, tx.Date.Format(ledger.DateLayout), tx.Kind, tx.Category, ledger.FormatAmount(tx.Amount))

			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category, person, goal or creditor")
	cmd.Flags().StringVarP(&description, "desc", "m", "", "description")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount, e.g. 12,50")
	cmd.Flags().BoolVar(&excludeWeek, "exclude-weekly", false, "leave an expense out of the weekly limit")
	cmd.Flags().BoolVar(&withdraw, "withdraw", false, "take money out of savings instead of depositing")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newMonthCmd(c *cli) *cobra.Command {
	var (
		year, month      int
		category, search string
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the month summary and its transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.open()
			if err != nil {
				return err
			}

			now := time.Now()
			if year == 0 {
				year = now.Year()
			}

			if month == 0 {
				month = int(now.Month())
			}

			if month < 1 || month > 12 {
				return fmt.Errorf("month must be 1-12, got %d", month)
			}

			view, err := a.Aggregator.Month(cmd.Context(), aggregate.MonthRequest{
				Year:     year,
				Month:    time.Month(month),
				Category: category,
				Search:   search,
			})
			if err != nil {
				return err
			}

			printMonth(cmd.OutOrStdout(), view, c.cfg.Ledger.CurrencyMarker)

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default current)")
	cmd.Flags().IntVarP(&month, "month", "M", 0, "month 1-12 (default current)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "show only this category's rows")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search every month by text, amount or date")

	return cmd
}

func printMonth(w io.Writer, v *aggregate.MonthView, marker string) {
	amount := func(label string, d decimal.Decimal) {
		fmt.Fprintf(w, "  %-22s %12s %s\n", label, d.StringFixed(2), marker)
	}

	fmt.Fprintf(w, "%s %d\n", v.Name, v.Year)
	amount("Saldo początkowe", v.OpeningBalance)
	amount("Wpływy", v.Income)
	amount("Wydatki", v.Expense)
	amount("Oszczędności", v.Savings)
	amount("Spłaty", v.Liability)
	amount("Saldo końcowe", v.ClosingBalance)
	amount("Gotówka odłożona", v.TotalCashSavings)

	if v.ExpenseByCategory.Len() > 0 {
		fmt.Fprintln(w, "\nWydatki wg kategorii:")

		for _, e := range v.ExpenseByCategory.Entries() {
			amount(e.Label, e.Amount)
		}
	}

	if len(v.Rows) > 0 {
		fmt.Fprintln(w, "\nTransakcje:")
	}

	for _, tx := range v.Rows {
		fmt.Fprintf(w, "  %5d %s %-9s %-20s %-30s %12s\n",
			tx.ID, tx.Date.Format(ledger.DateLayout), tx.Kind, tx.Category, tx.Description, ledger.FormatAmount(tx.Amount))
	}
}

func newWeekCmd(c *cli) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the weekly limit status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.open()
			if err != nil {
				return err
			}

			view, err := a.Aggregator.Week(cmd.Context(), aggregate.WeekRequest{Offset: offset})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			marker := c.cfg.Ledger.CurrencyMarker

			switch view.State {
			case aggregate.StateDisabled:
				fmt.Fprintln(w, "Limit tygodniowy jest wyłączony.")
				return nil
			case aggregate.StateUnconfigured:
				fmt.Fprintf(w, "Tydzień %s - %s nie ma ustawionego limitu.\n",
					view.Monday.Format(ledger.DateLayout), view.Sunday.Format(ledger.DateLayout))
				return nil
			}

			fmt.Fprintf(w, "Tydzień %s - %s\n", view.Monday.Format(ledger.DateLayout), view.Sunday.Format(ledger.DateLayout))
			fmt.Fprintf(w, "  Limit:     %s %s\n", ledger.FormatAmount(view.Limit), marker)
			fmt.Fprintf(w, "  Wydano:    %s %s\n", ledger.FormatAmount(view.Spent), marker)
			fmt.Fprintf(w, "  Zostało:   %s %s (%d%%)\n", ledger.FormatAmount(view.Remaining), marker, view.Percent)

			if view.Rollover.IsPositive() {
				fmt.Fprintf(w, "  Zaoszczędzone w %s: %s %s\n", view.RolloverMonthName, ledger.FormatAmount(view.Rollover), marker)
			}

			for _, share := range view.Breakdown {
				fmt.Fprintf(w, "  %-20s %12s %s %3d%%\n", share.Category, ledger.FormatAmount(share.Amount), marker, share.Percent)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "weeks from the current one, negative for the past")

	return cmd
}

func newReportCmd(c *cli) *cobra.Command {
	var (
		year, month int
		out         string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the PDF report of a month or a whole year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if month < 0 || month > 12 {
				return fmt.Errorf("month must be 1-12, got %d", month)
			}

			a, err := c.open()
			if err != nil {
				return err
			}

			if out == "" {
				out = export.YearReportName(year)
				if month != 0 {
					out = export.MonthReportName(year, time.Month(month))
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating report file: %w", err)
			}
			defer f.Close()

			if month != 0 {
				err = a.Export.MonthReport(cmd.Context(), year, time.Month(month), f)
			} else {
				err = a.Export.YearReport(cmd.Context(), year, f)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return f.Close()
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "report year")
	cmd.Flags().IntVarP(&month, "month", "M", 0, "report month 1-12, omit for the year report")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default budzet_YYYY_MM.pdf or bilans_YYYY.pdf)")

	return cmd
}

func newImportCmd(c *cli) *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a bank statement or a ledger CSV export",
		Long:  "Imports a CSV file. Rows that duplicate existing transactions abort the import unless --force is given, which writes only the new rows.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			ctx := cmd.Context()

			params, err := a.Importer.Import(ctx, importer.Format(format), f)
			if err != nil {
				return err
			}

			result, err := a.Ledger.ImportBatch(ctx, params)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if len(result.Conflicts) == 0 {
				fmt.Fprintf(w, "imported %d transactions\n", len(result.Imported))
				return nil
			}

			for _, conflict := range result.Conflicts {
				fmt.Fprintf(w, "duplicate: %s %s %s\n",
					conflict.Incoming.Date.Format(ledger.DateLayout), conflict.Incoming.Description, ledger.FormatAmount(conflict.Incoming.Amount))
			}

			if !force {
				return fmt.Errorf("%d duplicate rows, nothing imported (use --force to import the %d new rows)",
					len(result.Conflicts), len(result.New))
			}

			txs, err := a.Ledger.CreateBatch(ctx, result.New)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "imported %d transactions, skipped %d duplicates\n", len(txs), len(result.Conflicts))

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(importer.FormatBank), "bank or ledger")
	cmd.Flags().BoolVar(&force, "force", false, "skip duplicates and import the remaining rows")

	return cmd
}

func newLockCmd(c *cli, lock bool) *cobra.Command {
	use, short := "lock YYYY-MM", "Lock a month against changes"
	if !lock {
		use, short = "unlock YYYY-MM", "Unlock a month"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := time.Parse(ledger.MonthLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q, want YYYY-MM", args[0])
			}

			a, err := c.open()
			if err != nil {
				return err
			}

			if lock {
				err = a.Ledger.LockMonth(cmd.Context(), month.Year(), month.Month())
			} else {
				err = a.Ledger.UnlockMonth(cmd.Context(), month.Year(), month.Month())
			}

			if err != nil {
				return err
			}

			locked, err := a.Ledger.LockedMonths(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "locked months: %s\n", strings.Join(locked, ", "))

			return nil
		},
	}
}

func newTokenCmd(c *cli) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.Auth.Secret == "" {
				return fmt.Errorf("AUTH_SECRET is not set")
			}

			auth := middleware.NewAuth(c.cfg.Auth.Secret, c.cfg.Auth.Issuer)

			token, err := auth.Issue(subject, ttl, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "household", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")

	return cmd
}
