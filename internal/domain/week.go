package domain

import (
	"fmt"
	"time"
)

// ISOWeek identifies a calendar week by its ISO 8601 week-year and number.
// Both components matter: the last days of December can belong to week 1 of
// the following year.
type ISOWeek struct {
	Year int
	Week int
}

// ISOWeekOf returns the ISO week containing t.
func ISOWeekOf(t time.Time) ISOWeek {
	year, week := t.ISOWeek()
	return ISOWeek{Year: year, Week: week}
}

func (w ISOWeek) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// Next returns the ISO week following w.
func (w ISOWeek) Next() ISOWeek {
	// Jump from the middle of the week to avoid year-boundary edge cases.
	return ISOWeekOf(w.Start().AddDate(0, 0, 10))
}

// Start returns the Monday of w at midnight UTC.
func (w ISOWeek) Start() time.Time {
	// January 4th is always inside ISO week 1 of its year.
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1 := WeekStart(jan4)
	return week1.AddDate(0, 0, (w.Week-1)*7)
}

// WeekStart returns the Monday of the ISO week containing t, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	t = NormalizeDate(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // ISO weekday: Monday=1 .. Sunday=7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// OfferedDates returns the 14 days currently open for booking: the full ISO
// week containing today plus the full week after it, Monday through Sunday.
func OfferedDates(today time.Time) []time.Time {
	start := WeekStart(today)
	dates := make([]time.Time, 0, OfferedDays)
	for i := 0; i < OfferedDays; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// IsOfferedDate reports whether date falls inside the current two-week
// booking window relative to today.
func IsOfferedDate(date, today time.Time) bool {
	start := WeekStart(today)
	end := start.AddDate(0, 0, OfferedDays)
	date = NormalizeDate(date)
	return !date.Before(start) && date.Before(end)
}
