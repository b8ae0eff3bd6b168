// Package calendar holds the pure month-grid arithmetic behind the calendar
// page: which days a month contains, how they align to weekday columns, and
// month-to-month navigation. Everything delegates to the time package.
package calendar

import "time"

// DayKey normalizes a date to the YYYY-MM-DD form scheduled posts carry.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthStart is midnight on the first day of ref's month, in ref's location.
func MonthStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// MonthEnd is midnight on the last day of ref's month.
func MonthEnd(ref time.Time) time.Time {
	// Day zero of the next month.
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location())
}

// Days returns every day of ref's month in order, first to last inclusive.
func Days(ref time.Time) []time.Time {
	start := MonthStart(ref)
	n := MonthEnd(ref).Day()
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// LeadingBlanks is the number of empty cells before the first day of ref's
// month in a week grid whose first column is Sunday.
func LeadingBlanks(ref time.Time) int {
	return int(MonthStart(ref).Weekday())
}

// AddMonths moves ref by delta calendar months, preserving the day-of-month
// where the target month has it and clamping to the month's last day where it
// does not (Jan 31 forward lands on Feb 28/29, not Mar 2). This keeps
// forward-then-back navigation an identity whenever the day exists in both
// months.
func AddMonths(ref time.Time, delta int) time.Time {
	first := time.Date(ref.Year(), ref.Month()+time.Month(delta), 1, 0, 0, 0, 0, ref.Location())
	day := ref.Day()
	if last := MonthEnd(first).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
}

func PrevMonth(ref time.Time) time.Time { return AddMonths(ref, -1) }

func NextMonth(ref time.Time) time.Time { return AddMonths(ref, 1) }
