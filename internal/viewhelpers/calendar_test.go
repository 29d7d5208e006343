package viewhelpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belphemur/choghadiya/internal/tithi"
)

func TestCalculateCalendarRange(t *testing.T) {
	testCases := []struct {
		name          string
		refDate       time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "January 2026 starts on Thursday",
			refDate:       time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, time.January, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "February 2026 fills exactly four weeks",
			refDate:       time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, time.February, 28, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "March 2026 spills into April",
			refDate:       time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, time.April, 4, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "September 2026 starts on Tuesday",
			refDate:       time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, time.October, 3, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := CalculateCalendarRange(tc.refDate)
			assert.Equal(t, tc.expectedStart, start)
			assert.Equal(t, tc.expectedEnd, end)
			assert.Equal(t, time.Sunday, start.Weekday())
			assert.Equal(t, time.Saturday, end.Weekday())
		})
	}
}

func TestStructureMonthForTemplate_Layout(t *testing.T) {
	testCases := []struct {
		name          string
		monthIndex    int
		expectedName  string
		expectedWeeks int
		leadingBlanks int
	}{
		{"January", 0, "January 2026", 5, 4},
		{"February", 1, "February 2026", 4, 0},
		{"March", 2, "March 2026", 5, 0},
		{"August", 7, "August 2026", 6, 6},
		{"December", 11, "December 2026", 5, 2},
		{"negative index clamps to January", -3, "January 2026", 5, 4},
		{"index past December clamps", 20, "December 2026", 5, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, weeks := StructureMonthForTemplate(tc.monthIndex, GridOptions{})
			assert.Equal(t, tc.expectedName, name)
			require.Len(t, weeks, tc.expectedWeeks)

			for _, week := range weeks {
				require.Len(t, week, 7)
				assert.Equal(t, time.Sunday, week[0].Date.Weekday())
				assert.Equal(t, time.Saturday, week[6].Date.Weekday())
			}

			blanks := 0
			for _, d := range weeks[0] {
				if d.IsCurrentMonth {
					break
				}
				blanks++
			}
			assert.Equal(t, tc.leadingBlanks, blanks)
		})
	}
}

func TestStructureMonthForTemplate_Observances(t *testing.T) {
	_, weeks := StructureMonthForTemplate(2, GridOptions{})

	byDay := make(map[int]CalendarDay)
	for _, week := range weeks {
		for _, d := range week {
			if d.IsCurrentMonth {
				byDay[d.DayOfMonth] = d
			} else {
				assert.Empty(t, d.Observances, "padding cells carry no observances")
			}
		}
	}

	require.Len(t, byDay, 31)
	assert.Equal(t, []tithi.Observance{tithi.Aatham, tithi.Oliji}, byDay[26].Observances)
	assert.True(t, byDay[26].HasObservances())
	assert.False(t, byDay[1].HasObservances())
}

func TestStructureMonthForTemplate_Decorations(t *testing.T) {
	opts := GridOptions{
		Today:       time.Date(2026, time.March, 12, 9, 30, 0, 0, time.UTC),
		Filter:      tithi.Aatham,
		SelectedDay: 26,
	}
	_, weeks := StructureMonthForTemplate(2, opts)

	var today, selected []int
	var highlighted []int
	for _, week := range weeks {
		for _, d := range week {
			if d.IsToday {
				today = append(today, d.DayOfMonth)
			}
			if d.IsSelected {
				selected = append(selected, d.DayOfMonth)
			}
			if d.Highlighted {
				highlighted = append(highlighted, d.DayOfMonth)
			}
		}
	}

	assert.Equal(t, []int{12}, today)
	assert.Equal(t, []int{26}, selected)
	assert.Equal(t, tithi.DatesWith(2, tithi.Aatham), highlighted)
}

func TestStructureMonthForTemplate_TodayOutsideMonth(t *testing.T) {
	opts := GridOptions{Today: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)}
	_, weeks := StructureMonthForTemplate(2, opts)

	for _, week := range weeks {
		for _, d := range week {
			assert.False(t, d.IsToday, "April 2 is a padding cell in March and must not be marked")
		}
	}
}

func TestWeekdayHeaders(t *testing.T) {
	headers := WeekdayHeaders()
	require.Len(t, headers, 7)
	assert.Equal(t, "Sun", headers[0])
	assert.Equal(t, "Sat", headers[6])
}
