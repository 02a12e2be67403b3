package aggregate_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func clock(t time.Time) aggregate.Option {
	return aggregate.WithClock(func() time.Time { return t.Add(10 * time.Hour) })
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestMonth_ClosingBalanceScenario(t *testing.T) {
	src := newSource()
	src.add(day(2024, 3, 1), ledger.KindIncome, "Mąż", "", "3000")
	src.add(day(2024, 3, 5), ledger.KindExpense, "Zakupy", "", "200")
	src.add(day(2024, 3, 10), ledger.KindSavings, "Oszczędności gotówka", "", "100")

	agg := aggregate.New(src, aggregate.DefaultConfig())

	view, err := agg.Month(context.Background(), aggregate.MonthRequest{Year: 2024, Month: time.March})
	require.NoError(t, err)

	assertDecimal(t, "0", view.OpeningBalance)
	assertDecimal(t, "2700", view.ClosingBalance)
	assertDecimal(t, "100", view.CashSavings)
	assert.Equal(t, "2700.00", ledger.FormatAmount(view.ClosingBalance))

	require.Equal(t, 1, view.ExpenseByCategory.Len())
	zakupy, ok := view.ExpenseByCategory.Get("Zakupy")
	require.True(t, ok)
	assertDecimal(t, "200", zakupy)

	assert.Len(t, view.Rows, 3)
	assert.Equal(t, "Marzec", view.Name)
}

func TestMonth_ClosingBalanceIdentity(t *testing.T) {
	src := newSource()
	src.add(day(2024, 2, 3), ledger.KindIncome, "Żona", "", "1234.56")
	src.add(day(2024, 2, 20), ledger.KindExpense, "Opłaty", "", "99.99")
	src.add(day(2024, 3, 1), ledger.KindIncome, "Mąż", "", "4100.10")
	src.add(day(2024, 3, 2), ledger.KindIncome, "Żona", "", "2500")
	src.add(day(2024, 3, 3), ledger.KindExpense, "Zakupy", "", "321.45")
	src.add(day(2024, 3, 4), ledger.KindExpense, "Rozrywka", "", "80.05")
	src.add(day(2024, 3, 9), ledger.KindSavings, "Wakacje", "", "500")
	src.add(day(2024, 3, 12), ledger.KindSavings, "Oszczędności gotówka", "", "-150.25")
	src.add(day(2024, 3, 18), ledger.KindLiabilityRepayment, "Bank", "", "700")
	src.add(day(2024, 4, 1), ledger.KindExpense, "Zakupy", "", "1000")

	agg := aggregate.New(src, aggregate.DefaultConfig())

	v, err := agg.Month(context.Background(), aggregate.MonthRequest{Year: 2024, Month: time.March})
	require.NoError(t, err)

	want := v.OpeningBalance.Add(v.Income).Sub(v.Expense).Sub(v.Savings).Sub(v.Liability)
	assert.True(t, want.Equal(v.ClosingBalance))

	assertDecimal(t, "1134.57", v.OpeningBalance)
	assertDecimal(t, "6600.10", v.Income)
	assertDecimal(t, "401.50", v.Expense)
	assertDecimal(t, "349.75", v.Savings)
	assertDecimal(t, "-150.25", v.CashSavings)
	assertDecimal(t, "700", v.Liability)
	assertDecimal(t, "6283.42", v.ClosingBalance)

	people := v.IncomeByPerson.Entries()
	require.Len(t, people, 2)
	assert.Equal(t, "Żona", people[0].Label)
	assert.Equal(t, "Mąż", people[1].Label)
}

func TestMonth_CategoryFilter(t *testing.T) {
	src := newSource()
	src.add(day(2024, 3, 3), ledger.KindExpense, "Zakupy", "Lidl", "10")
	src.add(day(2024, 3, 4), ledger.KindExpense, "Ciuchy", "Pepco", "20")
	src.add(day(2024, 2, 4), ledger.KindExpense, "Zakupy", "Dino", "30")

	agg := aggregate.New(src, aggregate.DefaultConfig())

	v, err := agg.Month(context.Background(), aggregate.MonthRequest{Year: 2024, Month: time.March, Category: "Zakupy", Search: "dino"})
	require.NoError(t, err)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "Lidl", v.Rows[0].Description)
	assertDecimal(t, "30", v.Expense)
}

func TestMonth_SearchSpansAllMonths(t *testing.T) {
	src := newSource()
	src.add(day(2024, 3, 3), ledger.KindExpense, "Opłaty", "Czynsz marzec", "1500")
	src.add(day(2023, 11, 3), ledger.KindExpense, "Opłaty", "czynsz listopad", "1450")
	src.add(day(2024, 3, 4), ledger.KindExpense, "Zakupy", "Lidl", "20")

	agg := aggregate.New(src, aggregate.DefaultConfig())

	v, err := agg.Month(context.Background(), aggregate.MonthRequest{Year: 2024, Month: time.March, Search: "CZYNSZ"})
	require.NoError(t, err)
	assert.Len(t, v.Rows, 2)
	assertDecimal(t, "1520", v.Expense)
}

func TestWeek_States(t *testing.T) {
	today := day(2024, 6, 20)

	t.Run("Disabled", func(t *testing.T) {
		src := newSource()
		agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

		w, err := agg.Week(context.Background(), aggregate.WeekRequest{})
		require.NoError(t, err)
		assert.Equal(t, aggregate.StateDisabled, w.State)
	})

	t.Run("Unconfigured", func(t *testing.T) {
		src := newSource()
		src.enabled = true
		agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

		w, err := agg.Week(context.Background(), aggregate.WeekRequest{Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, aggregate.StateUnconfigured, w.State)
		assert.Equal(t, day(2024, 7, 1), w.Monday)
		assert.Equal(t, day(2024, 7, 7), w.Sunday)
		assert.False(t, w.Current)
	})

	t.Run("ZeroLimitIsConfigured", func(t *testing.T) {
		src := newSource()
		src.enabled = true
		src.limit(day(2024, 6, 17), "0", nil)
		agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

		w, err := agg.Week(context.Background(), aggregate.WeekRequest{})
		require.NoError(t, err)
		assert.Equal(t, aggregate.StateConfigured, w.State)
		assert.Equal(t, 0, w.Percent)
		assert.True(t, w.Current)
	})
}

func TestWeek_OverLimitAndRollover(t *testing.T) {
	today := day(2024, 6, 20)

	src := newSource()
	src.enabled = true
	src.limit(day(2024, 6, 17), "500", []string{"Zakupy", "Rozrywka"})
	src.limit(day(2024, 6, 10), "500", []string{"Zakupy"})

	src.add(day(2024, 6, 17), ledger.KindExpense, "Zakupy", "", "300")
	src.add(day(2024, 6, 19), ledger.KindExpense, "Rozrywka", "", "260")
	src.add(day(2024, 6, 18), ledger.KindExpense, "Ciuchy", "", "1000")
	src.add(day(2024, 6, 12), ledger.KindExpense, "Zakupy", "", "300")

	agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

	w, err := agg.Week(context.Background(), aggregate.WeekRequest{})
	require.NoError(t, err)

	assert.Equal(t, aggregate.StateConfigured, w.State)
	assertDecimal(t, "560", w.Spent)
	assertDecimal(t, "-60", w.Remaining)
	assert.True(t, w.OverLimit)
	assert.Equal(t, -12, w.Percent)
	assert.Equal(t, 0, w.Progress)
	assert.Equal(t, "60.00", ledger.FormatAmount(w.Remaining.Abs()))

	require.Len(t, w.Breakdown, 2)
	assert.Equal(t, "Zakupy", w.Breakdown[0].Category)
	assert.Equal(t, 53, w.Breakdown[0].Percent)
	assert.Equal(t, 46, w.Breakdown[1].Percent)

	assert.True(t, w.PreviousConfigured)
	assertDecimal(t, "200", w.PreviousSaved)

	assertDecimal(t, "200", w.Rollover)
	assert.Equal(t, time.June, w.RolloverMonth)
	assert.Equal(t, "Czerwiec", w.RolloverMonthName)
}

func TestWeek_RolloverResetsAtMonthBoundary(t *testing.T) {
	today := day(2024, 7, 3)

	src := newSource()
	src.enabled = true
	src.limit(day(2024, 7, 1), "500", nil)
	src.limit(day(2024, 6, 24), "500", nil)
	src.add(day(2024, 6, 25), ledger.KindExpense, "Zakupy", "", "300")

	agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

	w, err := agg.Week(context.Background(), aggregate.WeekRequest{})
	require.NoError(t, err)

	assertDecimal(t, "200", w.PreviousSaved)
	assertDecimal(t, "0", w.Rollover)
	assert.Equal(t, time.July, w.RolloverMonth)
}

func TestWeek_RolloverCountsOnlyFinishedWeeks(t *testing.T) {
	today := day(2024, 6, 20)

	src := newSource()
	src.enabled = true
	src.limit(day(2024, 6, 3), "400", nil)
	src.limit(day(2024, 6, 10), "400", nil)
	src.limit(day(2024, 6, 17), "400", nil)
	src.limit(day(2024, 6, 24), "400", nil)
	src.add(day(2024, 6, 4), ledger.KindExpense, "Zakupy", "", "100")
	src.add(day(2024, 6, 11), ledger.KindExpense, "Zakupy", "", "500")

	agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

	// The week of 24.06 ends on 30.06, still in June; only weeks whose
	// Sunday has passed contribute.
	w, err := agg.Week(context.Background(), aggregate.WeekRequest{Offset: 1})
	require.NoError(t, err)

	assertDecimal(t, "300", w.Rollover)
	assertDecimal(t, "400", w.PreviousSaved)
	assert.True(t, w.PreviousConfigured)
}

func TestWeek_ExclusionsCompose(t *testing.T) {
	today := day(2024, 6, 20)

	src := newSource()
	src.enabled = true
	src.limit(day(2024, 6, 17), "500", []string{})
	src.add(day(2024, 6, 17), ledger.KindExpense, "Zakupy", "", "300")

	excluded := src.add(day(2024, 6, 18), ledger.KindExpense, "Zakupy", "", "100")
	excluded.ExcludeFromWeekly = true

	agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

	w, err := agg.Week(context.Background(), aggregate.WeekRequest{})
	require.NoError(t, err)
	assertDecimal(t, "0", w.Spent)
	assert.Equal(t, 100, w.Percent)

	src.limit(day(2024, 6, 17), "500", nil)

	w, err = agg.Week(context.Background(), aggregate.WeekRequest{})
	require.NoError(t, err)
	assertDecimal(t, "300", w.Spent)
	assert.Equal(t, 40, w.Percent)
	assert.Equal(t, 40, w.Progress)
}

func TestReservation(t *testing.T) {
	today := day(2024, 6, 20)

	src := newSource()
	agg := aggregate.New(src, aggregate.DefaultConfig(), clock(today))

	r, err := agg.Reservation(context.Background())
	require.NoError(t, err)
	assertDecimal(t, "0", r)

	src.limit(day(2024, 6, 17), "500", nil)
	src.add(day(2024, 6, 18), ledger.KindExpense, "Zakupy", "", "120")

	r, err = agg.Reservation(context.Background())
	require.NoError(t, err)
	assertDecimal(t, "380", r)
}

func TestDashboard(t *testing.T) {
	today := day(2024, 6, 20)

	newFixture := func(enabled bool) *memSource {
		src := newSource()
		src.enabled = enabled
		src.limit(day(2024, 6, 17), "500", nil)
		src.add(day(2024, 6, 1), ledger.KindIncome, "Mąż", "", "3000")
		src.add(day(2024, 6, 18), ledger.KindExpense, "Zakupy", "Lidl", "100")
		src.add(day(2024, 6, 5), ledger.KindExpense, "Zakupy", "Dino", "50")
		src.add(day(2024, 6, 19), ledger.KindExpense, "Ciuchy", "Pepco", "30")

		return src
	}

	type testCase struct {
		name        string
		enabled     bool
		req         aggregate.DashboardRequest
		wantWeek    bool
		wantDisplay string
		wantReal    string
		wantRows    int
	}

	tests := []testCase{
		{
			name:        "MonthViewOnly",
			enabled:     true,
			req:         aggregate.DashboardRequest{Year: 2024, Month: time.June},
			wantDisplay: "2820",
			wantReal:    "2820",
			wantRows:    4,
		},
		{
			name:        "WeekViewIgnoredWhenDisabled",
			enabled:     false,
			req:         aggregate.DashboardRequest{Year: 2024, Month: time.June, WeekView: true},
			wantDisplay: "2820",
			wantReal:    "2820",
			wantRows:    4,
		},
		{
			name:        "CurrentWeekReservesAllowance",
			enabled:     true,
			req:         aggregate.DashboardRequest{Year: 2024, Month: time.June, WeekView: true},
			wantWeek:    true,
			wantDisplay: "2450",
			wantReal:    "2820",
			wantRows:    4,
		},
		{
			name:        "PastWeekReservesNothing",
			enabled:     true,
			req:         aggregate.DashboardRequest{Year: 2024, Month: time.June, WeekView: true, WeekOffset: -1},
			wantWeek:    true,
			wantDisplay: "2820",
			wantReal:    "2820",
			wantRows:    4,
		},
		{
			name:        "WeekCategoryFilter",
			enabled:     true,
			req:         aggregate.DashboardRequest{Year: 2024, Month: time.June, WeekView: true, WeekCategory: "Zakupy"},
			wantWeek:    true,
			wantDisplay: "2450",
			wantReal:    "2820",
			wantRows:    1,
		},
		{
			name:        "MonthCategoryIgnoredInWeekView",
			enabled:     true,
			req:         aggregate.DashboardRequest{Year: 2024, Month: time.June, WeekView: true, Category: "Ciuchy"},
			wantWeek:    true,
			wantDisplay: "2450",
			wantReal:    "2820",
			wantRows:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := aggregate.New(newFixture(tt.enabled), aggregate.DefaultConfig(), clock(today))

			d, err := agg.Dashboard(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWeek, d.Week != nil)
			assertDecimal(t, tt.wantDisplay, d.DisplayBalance)
			assertDecimal(t, tt.wantReal, d.RealBalance)
			assert.Len(t, d.Rows, tt.wantRows)
		})
	}
}
