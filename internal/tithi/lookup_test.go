package tithi

import (
	"testing"
	"time"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservancesOn(t *testing.T) {
	testCases := []struct {
		name       string
		monthIndex int
		day        int
		expected   []Observance
	}{
		{"March 26 carries two observances", 2, 26, []Observance{Aatham, Oliji}},
		{"January 3 Poonam", 0, 3, []Observance{Poonam}},
		{"April 1 Choudas and Oliji", 3, 1, []Observance{Choudas, Oliji}},
		{"September 10 Choudas during Paryusan", 8, 10, []Observance{Choudas, Paryusan}},
		{"October 25 Poonam during Oliji", 9, 25, []Observance{Poonam, Oliji}},
		{"December 31 Aatham", 11, 31, []Observance{Aatham}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ObservancesOn(tc.monthIndex, tc.day))
		})
	}
}

func TestObservancesOn_Empty(t *testing.T) {
	testCases := []struct {
		name       string
		monthIndex int
		day        int
	}{
		{"March 1 has no entry", 2, 1},
		{"day zero", 0, 0},
		{"day past month end", 1, 30},
		{"negative month", -1, 3},
		{"month past December", 12, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obs := ObservancesOn(tc.monthIndex, tc.day)
			assert.NotNil(t, obs)
			assert.Empty(t, obs)
		})
	}
}

func TestObservancesOn_ReturnsCopy(t *testing.T) {
	obs := ObservancesOn(2, 26)
	require.Len(t, obs, 2)
	obs[0] = Poonam

	assert.Equal(t, []Observance{Aatham, Oliji}, ObservancesOn(2, 26))
}

func TestObservancesForDate(t *testing.T) {
	assert.Equal(t, []Observance{Aatham, Oliji}, ObservancesForDate(time.Date(2026, time.March, 26, 15, 0, 0, 0, time.Local)))
	assert.Empty(t, ObservancesForDate(time.Date(2025, time.March, 26, 0, 0, 0, 0, time.UTC)), "other years are not covered")
	assert.Empty(t, ObservancesForDate(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTable_Invariants(t *testing.T) {
	total := 0
	for m := 0; m < 12; m++ {
		month, ok := Month(m)
		require.True(t, ok)
		assert.Equal(t, time.Month(m+1).String(), month.Name)

		seen := make(map[int]bool)
		lastDay := 0
		for _, e := range month.Events {
			assert.False(t, seen[e.Day], "%s %d appears twice", month.Name, e.Day)
			seen[e.Day] = true
			assert.Greater(t, e.Day, lastDay, "%s entries should be in ascending order", month.Name)
			lastDay = e.Day
			assert.LessOrEqual(t, e.Day, DaysInMonth(m, Year))
			assert.NotEmpty(t, e.Observances)
			for _, o := range e.Observances {
				assert.True(t, o.IsValid(), "unknown observance %q", o)
			}
			total++
		}
	}
	assert.Equal(t, 108, total)
}

func TestMonth(t *testing.T) {
	month, ok := Month(8)
	require.True(t, ok)
	assert.Equal(t, "September", month.Name)
	month.Events[0].Observances[0] = Oliji

	again, _ := Month(8)
	assert.Equal(t, Pancham, again.Events[0].Observances[0], "Month must hand out a copy")

	_, ok = Month(12)
	assert.False(t, ok)
}

func TestDatesWith(t *testing.T) {
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, DatesWith(8, Paryusan))
	assert.Equal(t, []int{2, 18}, DatesWith(2, Choudas))
	assert.Equal(t, []int{12, 26}, DatesWith(2, Aatham))
	assert.Nil(t, DatesWith(0, Paryusan))
	assert.Nil(t, DatesWith(-1, Pancham))
}

func TestHasObservance(t *testing.T) {
	assert.True(t, HasObservance(2, 26, Oliji))
	assert.True(t, HasObservance(2, 26, Aatham))
	assert.False(t, HasObservance(2, 26, Poonam))
	assert.False(t, HasObservance(2, 1, Poonam))
	assert.False(t, HasObservance(14, 26, Oliji))
}

func TestMonthNameAndClamp(t *testing.T) {
	assert.Equal(t, "January", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
	assert.Equal(t, "", MonthName(12))

	assert.Equal(t, 0, ClampMonth(-4))
	assert.Equal(t, 5, ClampMonth(5))
	assert.Equal(t, 11, ClampMonth(40))
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		name       string
		monthIndex int
		year       int
		expected   int
	}{
		{"January 2026", 0, 2026, 31},
		{"February 2026", 1, 2026, 28},
		{"February 2024 leap year", 1, 2024, 29},
		{"February 2100 not leap", 1, 2100, 28},
		{"February 2000 leap", 1, 2000, 29},
		{"April 2026", 3, 2026, 30},
		{"December 2026", 11, 2026, 31},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DaysInMonth(tc.monthIndex, tc.year))
		})
	}
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	assert.Equal(t, time.Thursday, FirstWeekdayOfMonth(0, 2026))
	assert.Equal(t, time.Sunday, FirstWeekdayOfMonth(1, 2026))
	assert.Equal(t, time.Sunday, FirstWeekdayOfMonth(2, 2026))
	assert.Equal(t, time.Tuesday, FirstWeekdayOfMonth(8, 2026))
	assert.Equal(t, time.Tuesday, FirstWeekdayOfMonth(11, 2026))
}

func TestObservanceMeta(t *testing.T) {
	for _, o := range AllObservances() {
		meta := o.Meta()
		assert.NotEmpty(t, meta.Description, "%s should have a description", o)
		assert.NotEmpty(t, meta.Color)
	}
	assert.Equal(t, "Full Moon - Highly auspicious", Poonam.Meta().Description)
	assert.Equal(t, "pink", Oliji.Meta().Color)
	assert.Equal(t, ObservanceMeta{Color: "stone"}, Observance("Navkarsi").Meta())
	assert.False(t, Observance("Navkarsi").IsValid())
}

func TestParseObservance(t *testing.T) {
	o, err := ParseObservance("poonam")
	require.NoError(t, err)
	assert.Equal(t, Poonam, o)

	o, err = ParseObservance(" PARYUSAN ")
	require.NoError(t, err)
	assert.Equal(t, Paryusan, o)

	_, err = ParseObservance("Diwali")
	assert.Error(t, err)
}

func TestFilterObservances(t *testing.T) {
	assert.Equal(t, []Observance{Pancham, Aatham, Choudas, Poonam}, FilterObservances())
}

func TestBestAndAvoidPeriods(t *testing.T) {
	assert.Equal(t, []choghadiya.PeriodType{choghadiya.Amrit, choghadiya.Shubh}, BestPeriodsFor(Poonam))
	assert.Empty(t, BestPeriodsFor(Choudas))
	assert.Empty(t, BestPeriodsFor(Oliji))
	assert.Equal(t, []choghadiya.PeriodType{choghadiya.Kaal, choghadiya.Rog}, AvoidPeriodsFor(Pancham))
	assert.Equal(t, []choghadiya.PeriodType{choghadiya.Kaal, choghadiya.Rog}, AvoidPeriodsFor(Oliji))
}
