package ledger

import "time"

// DateLayout is how dates are persisted and exchanged.
const DateLayout = time.DateOnly

// MonthLayout is the month key used by month locks.
const MonthLayout = "2006-01"

// Day strips the clock from t.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday of the ISO week containing t.
func MondayOf(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7

	return d.AddDate(0, 0, -offset)
}

// WeekBounds returns the Monday and Sunday of the week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	monday := MondayOf(t)
	return monday, monday.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
