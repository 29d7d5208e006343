package choghadiya

import (
	"fmt"
	"time"
)

// Pattern is an ordered run of period types, one per slot
type Pattern []PeriodType

// SlotsPerPeriod is the length of every published day and night pattern
const SlotsPerPeriod = 8

// Published day sequences, indexed by time.Weekday.
var dayPatterns = [7][SlotsPerPeriod]PeriodType{
	time.Sunday:    {Udveg, Chanchal, Labh, Amrit, Kaal, Shubh, Rog, Udveg},
	time.Monday:    {Amrit, Kaal, Shubh, Rog, Udveg, Chanchal, Labh, Amrit},
	time.Tuesday:   {Rog, Udveg, Chanchal, Labh, Amrit, Kaal, Shubh, Rog},
	time.Wednesday: {Labh, Amrit, Kaal, Shubh, Rog, Udveg, Chanchal, Labh},
	time.Thursday:  {Shubh, Rog, Udveg, Chanchal, Labh, Amrit, Kaal, Shubh},
	time.Friday:    {Chanchal, Labh, Amrit, Kaal, Shubh, Rog, Udveg, Chanchal},
	time.Saturday:  {Kaal, Shubh, Rog, Udveg, Chanchal, Labh, Amrit, Kaal},
}

// Published night sequences, indexed by time.Weekday. These are stored rather
// than derived from the day table.
var nightPatterns = [7][SlotsPerPeriod]PeriodType{
	time.Sunday:    {Shubh, Amrit, Chanchal, Rog, Kaal, Labh, Udveg, Shubh},
	time.Monday:    {Chanchal, Rog, Kaal, Labh, Udveg, Shubh, Amrit, Chanchal},
	time.Tuesday:   {Kaal, Labh, Udveg, Shubh, Amrit, Chanchal, Rog, Kaal},
	time.Wednesday: {Udveg, Shubh, Amrit, Chanchal, Rog, Kaal, Labh, Udveg},
	time.Thursday:  {Amrit, Chanchal, Rog, Kaal, Labh, Udveg, Shubh, Amrit},
	time.Friday:    {Rog, Kaal, Labh, Udveg, Shubh, Amrit, Chanchal, Rog},
	time.Saturday:  {Labh, Udveg, Shubh, Amrit, Chanchal, Rog, Kaal, Labh},
}

func checkWeekday(w time.Weekday) {
	if w < time.Sunday || w > time.Saturday {
		panic(fmt.Sprintf("choghadiya: invalid weekday %d", int(w)))
	}
}

// DayPattern returns a copy of the sunrise-to-sunset sequence for w
func DayPattern(w time.Weekday) Pattern {
	checkWeekday(w)
	p := dayPatterns[w]
	return Pattern(p[:])
}

// NightPattern returns a copy of the sunset-to-sunrise sequence for w
func NightPattern(w time.Weekday) Pattern {
	checkWeekday(w)
	p := nightPatterns[w]
	return Pattern(p[:])
}

// PatternFor returns the day or night pattern depending on night
func PatternFor(w time.Weekday, night bool) Pattern {
	if night {
		return NightPattern(w)
	}
	return DayPattern(w)
}

// WeekdayLabels carries the two display names of a weekday
type WeekdayLabels struct {
	English    string `json:"english"`
	Devanagari string `json:"devanagari"`
}

var weekdayLabels = [7]WeekdayLabels{
	time.Sunday:    {English: "Sunday", Devanagari: "रवि"},
	time.Monday:    {English: "Monday", Devanagari: "सोम"},
	time.Tuesday:   {English: "Tuesday", Devanagari: "मंगल"},
	time.Wednesday: {English: "Wednesday", Devanagari: "बुध"},
	time.Thursday:  {English: "Thursday", Devanagari: "गुरु"},
	time.Friday:    {English: "Friday", Devanagari: "शुक्र"},
	time.Saturday:  {English: "Saturday", Devanagari: "शनि"},
}

// WeekdayLabel returns the English and Devanagari names of w
func WeekdayLabel(w time.Weekday) WeekdayLabels {
	checkWeekday(w)
	return weekdayLabels[w]
}

// WeekOrder lists the weekdays Monday first, as the weekly overview shows them
func WeekOrder() []time.Weekday {
	return []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
		time.Sunday,
	}
}
