// Package timemath provides calendar arithmetic for date-granularity values.
// All helpers normalize their inputs to midnight UTC so that comparisons
// between dates coming from different sources behave consistently.
package timemath

import "time"

// AverageDaysPerMonth is the mean Gregorian month length. It is used for
// "months remaining" horizon estimates and introduces up to ~1 day of
// drift per use.
const AverageDaysPerMonth = 30.44

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// AddMonths returns t shifted by n calendar months, clamping the day of
// month to the last day of the target month when the source day does not
// exist there (Jan 31 + 1 month yields the last day of February). The
// clamp governs recurring due-date drift: a rule anchored on the 31st must
// not slide into the following month.
func AddMonths(t time.Time, n int) time.Time {
	t = DateOnly(t)
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AddYears returns t shifted by n years, clamping Feb 29 to Feb 28 in
// non-leap target years.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, n*12)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), daysIn(t.Year(), t.Month()), 0, 0, 0, 0, time.UTC)
}

// MonthsBetween returns the number of whole calendar months from a to b.
// It counts month boundaries and then corrects for the day of month, so
// Jan 15 -> Feb 14 is 0 and Jan 15 -> Feb 15 is 1. Negative when b < a.
func MonthsBetween(a, b time.Time) int {
	a, b = DateOnly(a), DateOnly(b)
	if b.Before(a) {
		return -MonthsBetween(b, a)
	}
	months := int(b.Month()-a.Month()) + (b.Year()-a.Year())*12
	if b.Day() < a.Day() && !isMonthEnd(b) {
		months--
	}
	return months
}

// DaysBetween returns the number of days from a to b, negative when b
// precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isMonthEnd(t time.Time) bool {
	return t.Day() == daysIn(t.Year(), t.Month())
}
