package timemath_test

import (
	"testing"
	"time"

	"github.com/nkhandel/personal_finance_app/internal/utils/timemath"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClampsToShorterMonth(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{"Jan 31 + 1 month clamps to Feb 28", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"Jan 31 + 1 month clamps to Feb 29 in leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"Mar 31 + 1 month clamps to Apr 30", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"mid-month day is preserved", date(2024, time.January, 15), 1, date(2024, time.February, 15)},
		{"year rollover", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"negative months", date(2024, time.March, 31), -1, date(2024, time.February, 29)},
		{"zero months", date(2024, time.May, 10), 0, date(2024, time.May, 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, timemath.AddMonths(tc.start, tc.months))
		})
	}
}

func TestAddYearsClampsLeapDay(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), timemath.AddYears(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2028, time.February, 29), timemath.AddYears(date(2024, time.February, 29), 4))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 1), timemath.AddDays(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2023, time.December, 31), timemath.AddDays(date(2024, time.January, 7), -7))
}

func TestMonthBounds(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 1), timemath.MonthStart(date(2024, time.February, 17)))
	assert.Equal(t, date(2024, time.February, 29), timemath.MonthEnd(date(2024, time.February, 17)))
	assert.Equal(t, date(2023, time.February, 28), timemath.MonthEnd(date(2023, time.February, 1)))
}

func TestMonthsBetween(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     time.Time
		expected int
	}{
		{"same day", date(2024, time.January, 15), date(2024, time.January, 15), 0},
		{"one day short of a month", date(2024, time.January, 15), date(2024, time.February, 14), 0},
		{"exactly one month", date(2024, time.January, 15), date(2024, time.February, 15), 1},
		{"month end counts as whole month", date(2024, time.January, 31), date(2024, time.February, 29), 1},
		{"across years", date(2023, time.June, 1), date(2025, time.June, 1), 24},
		{"reversed is negative", date(2024, time.March, 1), date(2024, time.January, 1), -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, timemath.MonthsBetween(tc.a, tc.b))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 29, timemath.DaysBetween(date(2024, time.February, 1), date(2024, time.March, 1)))
	assert.Equal(t, -1, timemath.DaysBetween(date(2024, time.March, 1), date(2024, time.February, 29)))
	assert.Equal(t, 0, timemath.DaysBetween(date(2024, time.March, 1), date(2024, time.March, 1)))
}
