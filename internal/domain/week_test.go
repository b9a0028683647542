package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestISOWeekOf_YearBoundary verifies that late-December days belonging to
// week 1 of the following ISO year keep the following year's week-year.
func TestISOWeekOf_YearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday and the start of 2025-W01.
	w := ISOWeekOf(date(2024, time.December, 30))
	assert.Equal(t, ISOWeek{Year: 2025, Week: 1}, w)
	assert.Equal(t, "2025-W01", w.String())

	// 2023-01-01 is a Sunday and still belongs to 2022-W52.
	w = ISOWeekOf(date(2023, time.January, 1))
	assert.Equal(t, ISOWeek{Year: 2022, Week: 52}, w)
}

func TestISOWeek_Next(t *testing.T) {
	w := ISOWeek{Year: 2025, Week: 36}
	assert.Equal(t, ISOWeek{Year: 2025, Week: 37}, w.Next())

	// Crossing into the next ISO year: 2024 has 52 weeks.
	w = ISOWeek{Year: 2024, Week: 52}
	assert.Equal(t, ISOWeek{Year: 2025, Week: 1}, w.Next())

	// 2020 has 53 weeks.
	w = ISOWeek{Year: 2020, Week: 53}
	assert.Equal(t, ISOWeek{Year: 2021, Week: 1}, w.Next())
}

func TestISOWeek_Start(t *testing.T) {
	// 2025-W36 starts on Monday 2025-09-01.
	assert.Equal(t, date(2025, time.September, 1), ISOWeek{Year: 2025, Week: 36}.Start())

	// 2025-W01 starts in the previous calendar year.
	assert.Equal(t, date(2024, time.December, 30), ISOWeek{Year: 2025, Week: 1}.Start())
}

func TestWeekStart(t *testing.T) {
	monday := date(2025, time.September, 1)

	// Every day of the week maps back to its Monday, Sunday included.
	for i := 0; i < 7; i++ {
		assert.Equal(t, monday, WeekStart(monday.AddDate(0, 0, i)), "day offset %d", i)
	}

	// Time-of-day and zone are stripped.
	noon := time.Date(2025, time.September, 3, 12, 30, 0, 0, time.FixedZone("MSK", 3*3600))
	assert.Equal(t, monday, WeekStart(noon))
}

// TestOfferedDates verifies the booking window is the full current ISO week
// plus the following week, regardless of which weekday today is.
func TestOfferedDates(t *testing.T) {
	// Thursday mid-week: the window still starts on the preceding Monday.
	today := date(2025, time.September, 4)
	dates := OfferedDates(today)

	require.Len(t, dates, 14)
	assert.Equal(t, date(2025, time.September, 1), dates[0])
	assert.Equal(t, date(2025, time.September, 14), dates[13])

	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i], "dates must be consecutive")
	}
}

func TestOfferedDates_AcrossYearBoundary(t *testing.T) {
	// Today inside 2024-W52; the window covers 2025-W01 as well.
	today := date(2024, time.December, 27)
	dates := OfferedDates(today)

	require.Len(t, dates, 14)
	assert.Equal(t, date(2024, time.December, 23), dates[0])
	assert.Equal(t, date(2025, time.January, 5), dates[13])
}

func TestIsOfferedDate(t *testing.T) {
	today := date(2025, time.September, 4) // Thursday, 2025-W36

	// Days already past within the current week are still offered.
	assert.True(t, IsOfferedDate(date(2025, time.September, 1), today))
	assert.True(t, IsOfferedDate(today, today))
	assert.True(t, IsOfferedDate(date(2025, time.September, 14), today))

	// One day either side of the window.
	assert.False(t, IsOfferedDate(date(2025, time.August, 31), today))
	assert.False(t, IsOfferedDate(date(2025, time.September, 15), today))
}
