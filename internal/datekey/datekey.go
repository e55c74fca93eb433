// Package datekey maps calendar dates to the canonical bucket keys used to
// group points: one key per day, ISO week, and month.
package datekey

import (
	"fmt"
	"time"
)

// DayKey returns the day bucket key for t in local calendar time (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey returns the ISO-8601 week bucket key for t (YYYY-Www).
// The year is the ISO week-based year, which differs from the calendar year
// around January 1st: 2024-12-31 falls in 2025-W01.
func WeekKey(t time.Time) string {
	year, week := isoWeek(t)
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey returns the month bucket key for t in local calendar time (YYYY-MM).
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Yesterday returns the calendar day before t.
func Yesterday(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	// Day 0 of the next month is the last day of this month
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// isoWeek computes the ISO-8601 week-based year and week number by normalizing
// to UTC midnight, shifting to the Thursday of the same week, and counting
// weeks from that Thursday's year start.
func isoWeek(t time.Time) (year, week int) {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// ISO weekday: Monday=1 .. Sunday=7
	isoDow := int(d.Weekday())
	if isoDow == 0 {
		isoDow = 7
	}

	// Thursday of the current week decides the week-based year
	thursday := d.AddDate(0, 0, 4-isoDow)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	week = int(thursday.Sub(yearStart).Hours()/24)/7 + 1
	return thursday.Year(), week
}
