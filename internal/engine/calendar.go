package engine

import "time"

// dayLayout is the canonical history key format: a local calendar day.
const dayLayout = "2006-01-02"

// DayKey formats t as a calendar day key ("YYYY-MM-DD").
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// midnight truncates t to the start of its calendar day, keeping the
// location so day arithmetic follows the caller's wall clock.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateRange returns every day key from start to end inclusive, ascending.
// Empty if start's day is after end's day.
func DateRange(start, end time.Time) []string {
	var days []string
	last := midnight(end)
	for d := midnight(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, DayKey(d))
	}
	return days
}

// DaysSince returns the number of whole calendar days between t and now.
// Rounding absorbs DST-shortened or -lengthened days.
func DaysSince(t, now time.Time) int {
	return int(midnight(now).Sub(midnight(t)).Hours()/24 + 0.5)
}

// StartOfWeek returns Monday of now's ISO week. Sunday counts as day 7
// of the prior week.
func StartOfWeek(now time.Time) time.Time {
	day := midnight(now)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, 1-wd)
}

// StartOfMonth returns the first day of now's calendar month.
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// StartOfQuarter returns the first day of now's quarter.
// Quarters are fixed at January, April, July, and October.
func StartOfQuarter(now time.Time) time.Time {
	q := (int(now.Month()) - 1) / 3
	return time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location())
}
