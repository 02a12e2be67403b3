package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "Monday", in: day(2024, 6, 10), want: day(2024, 6, 10)},
		{name: "Wednesday", in: day(2024, 6, 12), want: day(2024, 6, 10)},
		{name: "Sunday", in: time.Date(2024, 6, 16, 23, 59, 0, 0, time.UTC), want: day(2024, 6, 10)},
		{name: "AcrossMonth", in: day(2024, 3, 2), want: day(2024, 2, 26)},
		{name: "AcrossYear", in: day(2025, 1, 1), want: day(2024, 12, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.MondayOf(tt.in))
		})
	}
}

func TestWeekBounds(t *testing.T) {
	monday, sunday := ledger.WeekBounds(day(2024, 2, 29))

	assert.Equal(t, day(2024, 2, 26), monday)
	assert.Equal(t, day(2024, 3, 3), sunday)
}

func TestMonthBounds(t *testing.T) {
	first, last := ledger.MonthBounds(2024, time.February)

	assert.Equal(t, day(2024, 2, 1), first)
	assert.Equal(t, day(2024, 2, 29), last)

	_, last = ledger.MonthBounds(2023, time.December)
	assert.Equal(t, day(2023, 12, 31), last)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", ledger.MonthKey(day(2024, 3, 31)))
}
