package core

import "time"

// MonthStart truncates t to the first day of its calendar month, 00:00 UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves a month start n months forward (or back for negative n).
func AddMonths(month time.Time, n int) time.Time {
	m := MonthStart(month)
	return time.Date(m.Year(), m.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween returns the number of whole calendar months from a to b.
// It is negative when b is before a.
func MonthsBetween(a, b time.Time) int {
	a, b = MonthStart(a), MonthStart(b)
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// MonthRange returns every month start from start to end inclusive.
// The result is empty when end is before start.
func MonthRange(start, end time.Time) []time.Time {
	n := MonthsBetween(start, end)
	if n < 0 {
		return nil
	}
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, AddMonths(start, i))
	}
	return out
}
