package tithi

import (
	"time"
)

// dayIndex maps month index and day of month to the table entry, built once
var dayIndex = buildIndex()

func buildIndex() [12]map[int][]Observance {
	var idx [12]map[int][]Observance
	for m, month := range calendar2026 {
		idx[m] = make(map[int][]Observance, len(month.Events))
		for _, e := range month.Events {
			idx[m][e.Day] = e.Observances
		}
	}
	return idx
}

func validMonth(monthIndex int) bool {
	return monthIndex >= 0 && monthIndex < len(calendar2026)
}

// ObservancesOn returns the observances recorded for the given 0-based month
// and day of month in 2026. It returns an empty slice when nothing is recorded
// or the month is outside the table.
func ObservancesOn(monthIndex, day int) []Observance {
	if !validMonth(monthIndex) {
		return []Observance{}
	}
	obs := dayIndex[monthIndex][day]
	out := make([]Observance, len(obs))
	copy(out, obs)
	return out
}

// ObservancesForDate returns the observances for t's calendar date, or an empty
// slice when t is not in the table's year.
func ObservancesForDate(t time.Time) []Observance {
	if t.Year() != Year {
		return []Observance{}
	}
	return ObservancesOn(int(t.Month())-1, t.Day())
}

// HasObservance reports whether the date carries o
func HasObservance(monthIndex, day int, o Observance) bool {
	if !validMonth(monthIndex) {
		return false
	}
	for _, got := range dayIndex[monthIndex][day] {
		if got == o {
			return true
		}
	}
	return false
}

// DatesWith returns the days of the month that carry o, in ascending order
func DatesWith(monthIndex int, o Observance) []int {
	if !validMonth(monthIndex) {
		return nil
	}
	var days []int
	for _, e := range calendar2026[monthIndex].Events {
		for _, got := range e.Observances {
			if got == o {
				days = append(days, e.Day)
				break
			}
		}
	}
	return days
}

// Month returns a copy of the table's data for a 0-based month index
func Month(monthIndex int) (MonthData, bool) {
	if !validMonth(monthIndex) {
		return MonthData{}, false
	}
	src := calendar2026[monthIndex]
	events := make([]Entry, len(src.Events))
	for i, e := range src.Events {
		obs := make([]Observance, len(e.Observances))
		copy(obs, e.Observances)
		events[i] = Entry{Day: e.Day, Observances: obs}
	}
	return MonthData{Name: src.Name, Events: events}, true
}

// MonthName returns the English month name for a 0-based index, or "" when out of range
func MonthName(monthIndex int) string {
	if !validMonth(monthIndex) {
		return ""
	}
	return calendar2026[monthIndex].Name
}

// ClampMonth limits a 0-based month index to the table's coverage
func ClampMonth(monthIndex int) int {
	if monthIndex < 0 {
		return 0
	}
	if monthIndex >= len(calendar2026) {
		return len(calendar2026) - 1
	}
	return monthIndex
}

// DaysInMonth returns the number of days of a 0-based month in year
func DaysInMonth(monthIndex, year int) int {
	// Day 0 of the following month is the last day of this one
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday of the first day of a 0-based month in year
func FirstWeekdayOfMonth(monthIndex, year int) time.Weekday {
	return time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
