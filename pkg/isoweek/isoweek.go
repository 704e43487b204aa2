// Package isoweek converts between (year, week) pairs and the Monday date
// that identifies the week. Week numbering follows the "first day" rule:
// week 1 opens at the Monday-aligned boundary nearest to January 1st, so
// the Monday of week 1 may fall in the last days of the previous year.
//
// Both the availability-fetch path and the booking path must use this
// package for week arithmetic. Mixing it with any other week-numbering
// rule makes the booking handler resolve a different Monday than the one
// the grid was computed for.
package isoweek

import "time"

// DaysPerWeek is the step between consecutive week keys.
const DaysPerWeek = 7

// firstMonday returns the Monday that opens week 1 of the given year.
func firstMonday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, int(time.Monday)-int(jan1.Weekday()))
}

// MondayOf returns the Monday date (UTC, midnight) of the given week of
// the given year. Week 53 is accepted whenever the year has one; callers
// are expected to range-check week against [1, 53] before calling.
func MondayOf(year, week int) time.Time {
	return firstMonday(year).AddDate(0, 0, (week-1)*DaysPerWeek)
}

// WeekOf returns the (year, week) pair identifying the week that contains
// the given instant. The year is the instant's own calendar year except
// for the first days of January that still belong to the previous year's
// numbering; either attribution of a cross-year week resolves to the same
// Monday through MondayOf, so the two code paths can never disagree.
func WeekOf(t time.Time) (year, week int) {
	monday := MondayOfDate(t)

	year = t.UTC().Year()
	week = weeksBetween(firstMonday(year), monday) + 1
	if week < 1 {
		year--
		week = weeksBetween(firstMonday(year), monday) + 1
	}
	return year, week
}

// MondayOfDate returns the Monday (UTC, midnight) of the week containing
// the given instant.
func MondayOfDate(t time.Time) time.Time {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -mondayIndex(day.Weekday()))
}

// mondayIndex maps a weekday to its offset from Monday (Monday=0 ... Sunday=6).
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func weeksBetween(from, to time.Time) int {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		// Integer division truncates towards zero; force floor behaviour
		// so a Monday before the boundary counts as a negative week.
		return (days - (DaysPerWeek - 1)) / DaysPerWeek
	}
	return days / DaysPerWeek
}
