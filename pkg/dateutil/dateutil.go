// Package dateutil provides the calendar arithmetic used when advancing
// payment dates through an amortization schedule.
package dateutil

import "time"

// AddMonthClamped advances t by one calendar month, clamping the day of month
// to the length of the target month. Jan 31 advances to Feb 28 (29 in leap
// years); time.AddDate would normalize it to Mar 2/3 instead, silently
// drifting every subsequent payment date.
func AddMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	month++
	if month > time.December {
		month = time.January
		year++
	}
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddDays advances t by n days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
