package viewhelpers

import (
	"fmt"
	"time"

	"github.com/belphemur/choghadiya/internal/tithi"
)

// CalendarDay represents a single day cell in the Tithi month grid.
type CalendarDay struct {
	Date           time.Time
	DayOfMonth     int
	IsCurrentMonth bool // Padding cells from neighbouring months are rendered blank
	IsToday        bool
	IsSelected     bool
	Highlighted    bool // Carries the active filter observance
	Observances    []tithi.Observance
}

// HasObservances reports whether the cell has anything to show
func (d CalendarDay) HasObservances() bool {
	return len(d.Observances) > 0
}

// GridOptions controls the decorations of a month grid
type GridOptions struct {
	Today       time.Time
	Filter      tithi.Observance // Empty means no filter
	SelectedDay int              // 0 means no selection
}

// CalculateCalendarRange determines the start and end dates for a calendar view
// that displays full weeks (Sunday to Saturday) containing the month of refDate.
func CalculateCalendarRange(refDate time.Time) (startDate time.Time, endDate time.Time) {
	year, month, _ := refDate.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, refDate.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	// Weekday already counts from Sunday = 0
	startDate = firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	endDate = lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	endDate = time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 999999999, endDate.Location())
	return startDate, endDate
}

// StructureMonthForTemplate lays out a month of the observance table into
// Sunday-first weeks. Observances are only attached to days of the month itself.
func StructureMonthForTemplate(monthIndex int, opts GridOptions) (monthName string, weeks [][]CalendarDay) {
	monthIndex = tithi.ClampMonth(monthIndex)
	ref := time.Date(tithi.Year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	startDate, endDate := CalculateCalendarRange(ref)
	monthName = fmt.Sprintf("%s %d", tithi.MonthName(monthIndex), tithi.Year)

	todayY, todayM, todayD := opts.Today.Date()

	var currentWeek []CalendarDay
	for currentDate := startDate; !currentDate.After(endDate); currentDate = currentDate.AddDate(0, 0, 1) {
		day := CalendarDay{
			Date:           currentDate,
			DayOfMonth:     currentDate.Day(),
			IsCurrentMonth: currentDate.Month() == ref.Month(),
		}

		if day.IsCurrentMonth {
			day.Observances = tithi.ObservancesOn(monthIndex, day.DayOfMonth)
			day.IsToday = !opts.Today.IsZero() &&
				currentDate.Year() == todayY && currentDate.Month() == todayM && day.DayOfMonth == todayD
			day.IsSelected = opts.SelectedDay == day.DayOfMonth
			if opts.Filter != "" {
				day.Highlighted = tithi.HasObservance(monthIndex, day.DayOfMonth, opts.Filter)
			}
		}

		currentWeek = append(currentWeek, day)
		if currentDate.Weekday() == time.Saturday {
			weeks = append(weeks, currentWeek)
			currentWeek = []CalendarDay{}
		}
	}

	return monthName, weeks
}

// WeekdayHeaders returns the short column headers for a Sunday-first grid
func WeekdayHeaders() []string {
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}
